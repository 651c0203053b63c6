package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/animfetch/internal/config"
	"github.com/san-kum/animfetch/internal/display"
	"github.com/san-kum/animfetch/internal/fetch"
	"github.com/san-kum/animfetch/internal/logging"
	"github.com/san-kum/animfetch/internal/pacing"
	"github.com/san-kum/animfetch/internal/providers"
	"github.com/san-kum/animfetch/internal/viz"
)

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	logger := logging.NewLogger(cfg.LogLevel, os.Stderr)
	text, src := fetch.Prime(cmd.Context(), fetch.New(cfg.FetchCommand, logger))
	return animate(cmd.Context(), cfg, logger, src, cfg.ResolveHeight(len(text)))
}

func runStandalone(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	logger := logging.NewLogger(cfg.LogLevel, os.Stderr)
	return animate(cmd.Context(), cfg, logger, fetch.Static(nil), standaloneHeight(cfg))
}

func standaloneHeight(cfg *config.Config) int {
	if cfg.AutoHeight() {
		return providers.DefaultOptions().Height
	}
	return cfg.Height
}

func animate(ctx context.Context, cfg *config.Config, logger *slog.Logger, src fetch.Source, h int) error {
	tty := display.IsTerminal(os.Stdout)
	if !tty {
		logger.Debug("stdout is not a terminal, screen clearing disabled")
	}

	p, err := providers.New(cfg.Kind(), cfg.ProviderOptions(h, tty))
	if err != nil {
		return err
	}

	sink := display.NewTerminal(os.Stdout, tty)
	loop, err := pacing.New(p, src, sink, pacing.Config{
		FPS:     cfg.FPS,
		Refresh: cfg.RefreshInterval(),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	if err := sink.Start(); err != nil {
		return err
	}
	defer sink.Stop()

	err = loop.Run(ctx)
	logger.Debug("loop stopped", "renders", loop.Stats().Renders, "refreshes", loop.Stats().Refreshes)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	logger := logging.NewLogger(cfg.LogLevel, os.Stderr)
	ctx := cmd.Context()
	text, src := fetch.Prime(ctx, fetch.New(cfg.FetchCommand, logger))

	p, err := providers.New(cfg.Kind(), cfg.ProviderOptions(cfg.ResolveHeight(len(text)), true))
	if err != nil {
		return err
	}

	err = viz.Run(ctx, viz.NewModel(ctx, p, src, cfg.FPS, cfg.RefreshInterval()))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
