package service

import (
	"context"

	"github.com/Gthulhu/scx-loader/config"
	"github.com/Gthulhu/scx-loader/pkg/logger"
	"go.uber.org/fx"
)

// Params holds the parameters for creating a new Service
type Params struct {
	fx.In
	Config config.Config
}

// NewService creates a new Service instance around an already loaded config.
func NewService(ctx context.Context, params Params) *Service {
	svc := &Service{
		config: params.Config,
	}
	for _, name := range params.Config.UnknownScheds() {
		logger.Logger(ctx).Warn().Str("scheduler", name).Msg("ignoring config for unknown scheduler")
	}
	return svc
}

// Service answers flag queries for the loader daemon. The config it holds is
// never modified after construction, so a Service may be shared freely.
type Service struct {
	config config.Config
}

// Config returns the loaded configuration.
func (svc *Service) Config() config.Config {
	return svc.config
}
