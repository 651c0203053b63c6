package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/animfetch/internal/config"
	"github.com/san-kum/animfetch/internal/display"
	"github.com/san-kum/animfetch/internal/metrics"
	"github.com/san-kum/animfetch/internal/providers"
)

const benchSeed = 42

func listProviders(cmd *cobra.Command, args []string) error {
	infos, err := providers.List(listOptions(display.IsTerminal(os.Stdout)))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\n", info.Kind, info.Description)
	}
	return w.Flush()
}

// listOptions describes providers as they would run on this output.
func listOptions(tty bool) providers.Options {
	opts := providers.DefaultOptions()
	opts.TTY = tty
	return opts
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := make([]string, 0, len(providers.Kinds()))
	if len(args) > 0 {
		k, err := providers.Parse(args[0])
		if err != nil {
			return err
		}
		names = append(names, string(k))
	} else {
		for _, k := range providers.Kinds() {
			names = append(names, string(k))
		}
	}

	for _, name := range names {
		presets := config.ListPresets(name)
		if len(presets) == 0 {
			fmt.Printf("no presets for provider: %s\n", name)
			continue
		}
		fmt.Printf("presets for %s:\n", name)
		for _, p := range presets {
			fmt.Printf("  %s\n", p)
		}
	}
	return nil
}

func benchProvider(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("seed") && cfg.Seed == 0 {
		cfg.Seed = benchSeed
	}

	p, err := providers.New(cfg.Kind(), cfg.ProviderOptions(standaloneHeight(cfg), false))
	if err != nil {
		return err
	}

	series := metrics.NewSeries()
	runner := metrics.NewRunner(metrics.NewPopulation(), metrics.NewPeak(), series)
	res, err := runner.Run(p, cfg.FPS, benchTime)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %s\n\n", p.Describe())
	if samples := series.Values(); len(samples) > 1 {
		fmt.Println(asciigraph.Plot(samples, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("population")))
		fmt.Println()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPS\tSIMULATED\tTIME\tSTEPS/SEC\tMEAN\tPEAK")
	fmt.Fprintf(w, "%d\t%.1fs\t%v\t%.0f\t%.1f\t%.0f\n",
		res.Steps, res.Simulated, res.Wall, res.StepsPerSecond(),
		res.Values["mean_population"], res.Values["peak_population"])
	return w.Flush()
}
