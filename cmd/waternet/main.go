// Command waternet reports the connectivity of the water network in one or
// more single-band classification rasters.
//
//	waternet [flags] [name=]path ...
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/waternet/gridgraph"
	"github.com/katalvlaran/waternet/history"
	"github.com/katalvlaran/waternet/internal/batch"
	"github.com/katalvlaran/waternet/internal/config"
	"github.com/katalvlaran/waternet/internal/logging"
	"github.com/katalvlaran/waternet/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process globals; it returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("waternet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a TOML config file")
	format := fs.String("format", config.FormatText, "output format: text, json or table")
	water := fs.Float64("water", 0, "raster value that marks a water cell")
	labelConn := fs.Int("label-conn", 8, "region labelling connectivity: 4 or 8")
	workers := fs.Int("workers", 0, "rasters analysed in parallel (default: number of CPUs)")
	labelsDir := fs.String("labels-dir", "", "write each label grid as <name>.labels.png into this directory")
	historyPath := fs.String("history", "", "SQLite file that records every run")
	listHistory := fs.Bool("list-history", false, "print the latest stored run per name and exit")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "console", "log format: console or json")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: waternet [flags] [name=]path ...\n\n")
		fmt.Fprintf(stderr, "Builds the 4-connected graph of water cells in each raster and prints its connectivity metrics.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "waternet: %v\n", err)
		return 1
	}
	// Flags override the file and environment only when given explicitly.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "water":
			cfg.WaterValue = *water
		case "label-conn":
			cfg.LabelConnectivity = *labelConn
		case "workers":
			cfg.Workers = *workers
		case "labels-dir":
			cfg.LabelsDir = *labelsDir
		case "history":
			cfg.HistoryPath = *historyPath
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "waternet: invalid config: %v\n", err)
		return 1
	}

	logger, err := logging.New(stderr, cfg.LogLevel, logging.Format(cfg.LogFormat))
	if err != nil {
		fmt.Fprintf(stderr, "waternet: %v\n", err)
		return 1
	}
	log := logging.Component(logger, "cli")

	if *listHistory {
		if err := printHistory(ctx, cfg, stdout); err != nil {
			log.Error().Err(err).Msg("list history")
			return 1
		}
		return 0
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	inputs := make([]batch.Input, 0, fs.NArg())
	for _, arg := range fs.Args() {
		inputs = append(inputs, batch.ParseInput(arg))
	}

	conn, err := gridgraph.ParseConnectivity(cfg.LabelConnectivity)
	if err != nil {
		log.Error().Err(err).Msg("label connectivity")
		return 1
	}
	runner := &batch.Runner{
		Options:   gridgraph.Options{WaterValue: cfg.WaterValue, LabelConn: conn},
		Workers:   cfg.Workers,
		LabelsDir: cfg.LabelsDir,
		Log:       logger,
	}
	results, err := runner.Run(ctx, inputs)
	if err != nil {
		log.Error().Err(err).Msg("analysis failed")
		return 1
	}

	entries := make([]report.Entry, len(results))
	for i, r := range results {
		entries[i] = r.Entry()
	}
	if err := report.Write(stdout, cfg.Format, entries); err != nil {
		log.Error().Err(err).Msg("write report")
		return 1
	}

	if cfg.HistoryPath != "" {
		if err := record(ctx, cfg, results); err != nil {
			log.Error().Err(err).Msg("record history")
			return 1
		}
		log.Info().Str("path", cfg.HistoryPath).Int("runs", len(results)).Msg("history recorded")
	}
	return 0
}

func record(ctx context.Context, cfg *config.Config, results []batch.Result) error {
	store, err := history.Open(ctx, cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, r := range results {
		if _, err := store.Record(ctx, history.Run{
			Name:              r.Input.Name,
			Source:            r.Input.Path,
			WaterValue:        cfg.WaterValue,
			LabelConnectivity: cfg.LabelConnectivity,
			Metrics:           r.Metrics,
		}); err != nil {
			return err
		}
	}
	return nil
}

func printHistory(ctx context.Context, cfg *config.Config, w io.Writer) error {
	if cfg.HistoryPath == "" {
		return fmt.Errorf("-list-history needs -history or history_path")
	}
	store, err := history.Open(ctx, cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Latest(ctx)
	if err != nil {
		return err
	}
	entries := make([]report.Entry, len(runs))
	for i, r := range runs {
		entries[i] = report.Entry{Name: r.Name, Source: r.Source, Metrics: r.Metrics}
	}
	return report.Write(w, cfg.Format, entries)
}
