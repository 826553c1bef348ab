package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"sparkcalc/app"
	"sparkcalc/hal"
	"sparkcalc/internal/config"
	"sparkcalc/internal/logger"
)

type rootOptions struct {
	configPath string
	logLevel   string

	headless bool
	hz       int
	ticks    uint64
	script   string
	fast     bool

	cfg *config.Config
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "sparkcalc",
		Short:        "Single-screen calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				cfg.Logging.Level = opts.logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			opts.cfg = cfg
			logger.SetupLogger(&cfg.Logging, "")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "sparkcalc.toml", "config file (missing file uses defaults)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.Flags().BoolVar(&opts.headless, "headless", false, "run without a window")
	root.Flags().IntVar(&opts.hz, "hz", 60, "frame rate in headless mode")
	root.Flags().Uint64Var(&opts.ticks, "ticks", 0, "stop after N frames in headless mode (0 = run forever)")
	root.Flags().StringVar(&opts.script, "script", "", `keys typed in headless mode, one per frame (\n Enter, \b Backspace, \e Escape)`)
	root.Flags().BoolVar(&opts.fast, "fast", false, "run headless frames back to back instead of in real time")

	root.AddCommand(evalCmd(opts), pressCmd(opts), versionCmd())
	return root
}

func run(ctx context.Context, opts *rootOptions) error {
	cfg := opts.cfg
	log := logger.GetLogger()
	host := hal.HostConfig{Width: cfg.Display.Width, Height: cfg.Display.Height, Log: log}
	newApp := func(h hal.HAL) func() error {
		return app.New(h, app.Config{Engine: cfg.EngineOptions(), Log: log})
	}

	if !opts.headless {
		return hal.RunWindow(hal.WindowConfig{Host: host, Scale: cfg.Display.Scale, TPS: cfg.Display.TPS}, newApp)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	err := hal.RunHeadless(ctx, hal.HeadlessConfig{
		Host:     host,
		Hz:       opts.hz,
		Ticks:    opts.ticks,
		Script:   unescapeScript(opts.script),
		Realtime: !opts.fast,
	}, newApp)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

var scriptEscapes = strings.NewReplacer(`\n`, "\n", `\b`, "\b", `\e`, "\x1b", `\\`, `\`)

func unescapeScript(s string) string {
	return scriptEscapes.Replace(s)
}
