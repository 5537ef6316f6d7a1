package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phanxgames/pedal"
	"github.com/phanxgames/pedal/internal/config"
	"github.com/phanxgames/pedal/internal/observability"
)

// app is the state shared by subcommands after the root pre-run.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *zap.Logger

	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "pedalcanvas",
		Short:         "Select, drag and rotate the knobs of a pedal layout",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
	flags.StringP("layout", "l", "", "pedal layout file (default is the built-in demo layout)")
	flags.Float64P("resolution", "r", float64(pedal.DefaultResolution), "device pixels per logical unit")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("layout", flags.Lookup("layout"))
	_ = a.v.BindPFlag("canvas.resolution", flags.Lookup("resolution"))
	_ = a.v.BindPFlag("logger.level", flags.Lookup("log-level"))

	root.AddCommand(newRunCmd(a), newReplayCmd(a), newLayoutCmd(a))
	return root
}

// init loads configuration and builds the logger. Logs go to the command's
// error stream so stdout stays clean for command output.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := observability.NewLogger(cfg.Logger, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// layout loads the configured layout, or the demo layout when none is set.
func (a *app) layout() (*pedal.Layout, error) {
	if a.cfg.Layout == "" {
		return config.DefaultLayout(), nil
	}
	l, err := config.LoadLayout(a.cfg.Layout)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("layout loaded", zap.String("path", a.cfg.Layout), zap.Int("knobs", len(l.Knobs)))
	return l, nil
}

func (a *app) resolution() pedal.Resolution {
	return pedal.Resolution(a.cfg.Canvas.Resolution)
}

// fail logs err and returns it so cobra exits non-zero.
func (a *app) fail(msg string, err error) error {
	a.logger.Error(msg, zap.Error(err))
	return fmt.Errorf("%s: %w", msg, err)
}
