package config

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/Gthulhu/scx-loader/domain"
	"github.com/Gthulhu/scx-loader/pkg/util"
)

// DefaultSearchPaths are checked in order by InitConfig; the first existing one wins.
var DefaultSearchPaths = []string{
	"/etc/scx_loader/config.toml",
	"/etc/scx_loader.toml",
}

// InitConfig loads the first config file found in DefaultSearchPaths and
// falls back to DefaultConfig when none exists.
func InitConfig() (Config, error) {
	return InitConfigFrom(DefaultSearchPaths...)
}

// InitConfigFrom is InitConfig with explicit search paths. Only a missing
// file is recovered from; read, empty and parse errors are returned.
func InitConfigFrom(paths ...string) (Config, error) {
	configPath, err := FindConfigPath(paths...)
	if err != nil {
		return DefaultConfig(), nil
	}
	return ParseConfigFile(configPath)
}

// FindConfigPath returns the first of paths that exists.
func FindConfigPath(paths ...string) (string, error) {
	for _, path := range paths {
		if util.PathExists(path) {
			return path, nil
		}
	}
	return "", errors.WithStack(domain.ErrConfigNotFound)
}

// ParseConfigFile reads and parses the config file at path.
func ParseConfigFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := ParseConfigContent(content)
	if err != nil {
		return Config{}, errors.WithMessagef(err, "load config %s", path)
	}
	return cfg, nil
}

// ParseConfigContent parses a TOML config document. Empty content is
// rejected rather than treated as an empty configuration.
func ParseConfigContent(content []byte) (Config, error) {
	var cfg Config
	if len(content) == 0 {
		return cfg, errors.WithStack(domain.ErrEmptyConfig)
	}
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}

// Marshal encodes cfg in the config document format. Unset fields are
// omitted and explicitly empty flag lists are kept as [].
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, "encode config")
	}
	return buf.Bytes(), nil
}
