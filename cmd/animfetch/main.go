package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/san-kum/animfetch/internal/config"
	"github.com/san-kum/animfetch/internal/fetch"
	"github.com/san-kum/animfetch/internal/providers"
	"github.com/san-kum/animfetch/internal/starfield"
)

var (
	provider     string
	fps          float64
	width        int
	height       int
	refresh      float64
	fetchCommand string
	backend      string
	seed         int64
	logLevel     string
	configFile   string
	preset       string
	benchTime    float64
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "animfetch",
		Short:         "system information next to a terminal animation",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runFetch,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&provider, "provider", config.DefaultProvider, fmt.Sprintf("animation provider %v", providers.Kinds()))
	pf.Float64Var(&fps, "fps", config.DefaultFPS, "frames per second, capped at 1000")
	pf.IntVar(&width, "width", config.DefaultWidth, "animation width in columns")
	pf.IntVar(&height, "height", config.AutoHeight, "animation height in rows (-1 follows the text block)")
	pf.Float64Var(&refresh, "refresh", config.DefaultRefresh, "seconds between text refreshes")
	pf.StringVar(&fetchCommand, "fetch-command", fetch.DefaultCommand, `command producing the text block ("builtin" for the internal source)`)
	pf.StringVar(&backend, "backend", string(starfield.BackendAuto), fmt.Sprintf("star field backend %v", starfield.Backends()))
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.StringVar(&logLevel, "log-level", "info", "log level: warn, info, debug, trace")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")

	runCmd := &cobra.Command{
		Use:   "run [provider]",
		Short: "run one animation on its own, without the text block",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStandalone,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [provider]",
		Short: "run the animation and text block in an interactive view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list animation providers",
		Args:  cobra.NoArgs,
		RunE:  listProviders,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [provider]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [provider]",
		Short: "run a provider headless and report throughput",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchProvider,
	}
	benchCmd.Flags().Float64Var(&benchTime, "time", 10.0, "simulated seconds")

	rootCmd.AddCommand(runCmd, tuiCmd, listCmd, presetsCmd, benchCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order. A positional provider argument wins over all.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	name := provider
	if len(args) > 0 {
		name = args[0]
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(name, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		cfg = p
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if len(args) > 0 || flags.Changed("provider") {
		cfg.Provider = name
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("refresh") {
		cfg.Refresh = refresh
	}
	if flags.Changed("fetch-command") {
		cfg.FetchCommand = fetchCommand
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	cfg.Clamp()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
