package app

import (
	"context"

	"github.com/Gthulhu/scx-loader/config"
	"github.com/Gthulhu/scx-loader/pkg/logger"
	"github.com/Gthulhu/scx-loader/service"
	"go.uber.org/fx"
)

// Options selects where the configuration comes from.
type Options struct {
	// ConfigPath loads this file explicitly. When empty the default search
	// paths are used and a missing file falls back to the built-in config.
	ConfigPath string
}

// LoadConfig loads the configuration described by opts.
func LoadConfig(ctx context.Context, opts Options) (config.Config, error) {
	if opts.ConfigPath != "" {
		logger.Logger(ctx).Debug().Str("path", opts.ConfigPath).Msg("loading config file")
		return config.ParseConfigFile(opts.ConfigPath)
	}
	path, err := config.FindConfigPath(config.DefaultSearchPaths...)
	if err != nil {
		logger.Logger(ctx).Info().Msg("no config file found, using built-in defaults")
		return config.DefaultConfig(), nil
	}
	logger.Logger(ctx).Debug().Str("path", path).Msg("loading config file")
	return config.ParseConfigFile(path)
}

// ConfigModule creates an Fx module that provides config.Config
func ConfigModule(ctx context.Context, opts Options) (fx.Option, error) {
	cfg, err := LoadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		fx.Provide(func() config.Config {
			return cfg
		}),
	), nil
}

// ServiceModule creates an Fx module that provides the service layer, return *service.Service
func ServiceModule(ctx context.Context, opts Options) (fx.Option, error) {
	configModule, err := ConfigModule(ctx, opts)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		configModule,
		fx.Provide(func(params service.Params) *service.Service {
			return service.NewService(ctx, params)
		}),
	), nil
}

// NewService builds the service graph without starting an application
// lifecycle; the loader core has no background work to run.
func NewService(ctx context.Context, opts Options) (*service.Service, error) {
	svcModule, err := ServiceModule(ctx, opts)
	if err != nil {
		return nil, err
	}

	var svc *service.Service
	app := fx.New(
		svcModule,
		fx.NopLogger,
		fx.Populate(&svc),
	)
	if err := app.Err(); err != nil {
		return nil, err
	}
	return svc, nil
}
