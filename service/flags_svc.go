package service

import (
	"context"

	"github.com/Gthulhu/scx-loader/config"
	"github.com/Gthulhu/scx-loader/domain"
	"github.com/Gthulhu/scx-loader/pkg/logger"
)

// FlagsForMode returns the command line flags for starting sched in mode
func (svc *Service) FlagsForMode(ctx context.Context, sched domain.SupportedSched, mode domain.SchedMode) []string {
	flags, fromConfig := config.FlagsFromConfig(svc.config, sched, mode)
	source := "builtin"
	if fromConfig {
		source = "config"
	}
	logger.Logger(ctx).Debug().
		Str("scheduler", sched.String()).
		Str("mode", mode.String()).
		Str("source", source).
		Strs("flags", flags).
		Msg("resolved scheduler flags")
	return flags
}

// StartupSelection returns the scheduler and mode to start when the daemon
// comes up. ok is false when no default scheduler is configured. The mode
// falls back to Auto.
func (svc *Service) StartupSelection() (sched domain.SupportedSched, mode domain.SchedMode, ok bool) {
	mode = domain.Auto
	if svc.config.DefaultMode != nil {
		mode = *svc.config.DefaultMode
	}
	if svc.config.DefaultSched == nil {
		return sched, mode, false
	}
	return *svc.config.DefaultSched, mode, true
}

// SupportedSchedulers lists the canonical names of every known scheduler
func (svc *Service) SupportedSchedulers() []string {
	names := make([]string, 0, len(domain.AllSchedulers()))
	for _, sched := range domain.AllSchedulers() {
		names = append(names, sched.String())
	}
	return names
}
