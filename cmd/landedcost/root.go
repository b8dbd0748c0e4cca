package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/landedcost/internal/calculator"
	"github.com/rshade/landedcost/internal/config"
	"github.com/rshade/landedcost/internal/dutytable"
)

// app is the state shared by every subcommand, built in PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger zerolog.Logger
	engine *calculator.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "landedcost",
		Short:         "Estimate vehicle import duties and landed cost for NA, ZA, BW and ZM",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")

	root.AddCommand(
		newCalcCmd(a),
		newRequirementsCmd(a),
		newTableCmd(a),
		newServeCmd(a),
	)
	return root
}

// setup loads configuration, builds the logger and the engine.
func (a *app) setup(cmd *cobra.Command) error {
	bootstrap := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()

	cfg, err := config.Load(a.configPath, bootstrap)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = strings.ToLower(a.logLevel)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(cfg.Level()).
		With().Timestamp().Str("service", "landedcost").Logger()
	dutytable.SetLogger(a.logger)

	opts := []calculator.Option{
		calculator.WithRates(cfg.Rates),
		calculator.WithLogger(a.logger),
	}
	if cfg.DutyTablePath != "" {
		table, err := dutytable.LoadFile(cfg.DutyTablePath)
		if err != nil {
			return err
		}
		opts = append(opts, calculator.WithDutyTable(table))
	}

	engine, err := calculator.NewEngine(opts...)
	if err != nil {
		return fmt.Errorf("failed to build calculator: %w", err)
	}
	a.engine = engine
	return nil
}
