package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Gthulhu/scx-loader/app"
	"github.com/Gthulhu/scx-loader/config"
	"github.com/Gthulhu/scx-loader/domain"
	"github.com/Gthulhu/scx-loader/pkg/logger"
)

func main() {
	ctx := logger.WithLogger(context.Background(), logger.InitLogger())
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:          "scx-loader-config",
		Short:        "Inspect the scx_loader scheduler configuration",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.SetLevel(ParseCommandLineOptions(v).LogLevel)
		},
	}
	if err := bindOptions(root, v); err != nil {
		panic(err)
	}

	root.AddCommand(
		newResolveCmd(v),
		newDefaultConfigCmd(),
		newCheckCmd(v),
		newSchedulersCmd(v),
	)
	return root
}

func newResolveCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <scheduler> <mode>",
		Short: "Print the flags a scheduler is started with in the given mode",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, err := domain.ParseSupportedSched(args[0])
			if err != nil {
				return err
			}
			mode, err := domain.ParseSchedMode(args[1])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			svc, err := app.NewService(ctx, app.Options{ConfigPath: ParseCommandLineOptions(v).ConfigPath})
			if err != nil {
				return err
			}
			for _, flag := range svc.FlagsForMode(ctx, sched, mode) {
				fmt.Fprintln(cmd.OutOrStdout(), flag)
			}
			return nil
		},
	}
}

func newDefaultConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default-config",
		Short: "Print the built-in configuration as a config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.Marshal(config.DefaultConfig())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}
}

func newCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check [path]",
		Short: "Validate a config file, or the one found in the default locations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ParseCommandLineOptions(v).ConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				found, err := config.FindConfigPath(config.DefaultSearchPaths...)
				if err != nil {
					return errors.WithMessagef(err, "searched %s", strings.Join(config.DefaultSearchPaths, ", "))
				}
				path = found
			}
			cfg, err := config.ParseConfigFile(path)
			if err != nil {
				return err
			}
			for _, name := range cfg.UnknownScheds() {
				logger.Logger(cmd.Context()).Warn().Str("scheduler", name).Msg("unknown scheduler in config")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			return nil
		},
	}
}

func newSchedulersCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "schedulers",
		Short: "List supported schedulers and the configured startup selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, err := app.NewService(ctx, app.Options{ConfigPath: ParseCommandLineOptions(v).ConfigPath})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range svc.SupportedSchedulers() {
				fmt.Fprintln(out, name)
			}
			if sched, mode, ok := svc.StartupSelection(); ok {
				fmt.Fprintf(out, "default: %s (%s)\n", sched, mode)
			} else {
				fmt.Fprintf(out, "default: none (%s)\n", mode)
			}
			return nil
		},
	}
}
