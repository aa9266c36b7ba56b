package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "SCX_LOADER"

// CommandLineOptions contains all command line options
type CommandLineOptions struct {
	ConfigPath string
	LogLevel   string
}

// bindOptions registers the persistent flags on cmd and binds them into v,
// so every option can also be set as SCX_LOADER_<NAME>.
func bindOptions(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.PersistentFlags()
	flags.String("config", "", "Path to config file (skips discovery in /etc)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, name := range []string{"config", "log-level"} {
		if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// ParseCommandLineOptions reads the bound options back out of v
func ParseCommandLineOptions(v *viper.Viper) CommandLineOptions {
	return CommandLineOptions{
		ConfigPath: v.GetString("config"),
		LogLevel:   v.GetString("log-level"),
	}
}
