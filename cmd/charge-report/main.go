package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"chargecli/internal/analysis"
	"chargecli/internal/chargedata"
	"chargecli/internal/config"
	apperrors "chargecli/internal/errors"
	"chargecli/internal/files"
	"chargecli/internal/infrastructure"
	"chargecli/internal/report"
	"chargecli/internal/validation"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	dir := flag.String("dir", "", "directory to scan for measurement files (defaults to the configured data directory)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}

	logger := infrastructure.MustInitializeLogger(cfg.Logging)
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.EnsureTraceID(context.Background())
	log := infrastructure.WithComponent(logger, "batch")

	paths, err := resolveInputs(log, cfg, *dir, flag.Args())
	if err != nil {
		infrastructure.WithError(log, err).ErrorContext(ctx, "No measurement files to process")
		return err
	}

	log.InfoContext(ctx, "Starting batch report",
		slog.Int("files", len(paths)),
		slog.Int("min_samples", cfg.Analysis.MinSamples))

	renderer := report.NewConsoleRenderer(os.Stdout, cfg.Analysis.Precision)
	loader := chargedata.NewLoader(logger)
	analyzer := analysis.NewAnalyzer(logger, analysis.AnalyzerConfig{
		MinSamples: cfg.Analysis.MinSamples,
	})

	results, insufficient, err := processFiles(ctx, log, loader, analyzer, renderer, paths)
	if err != nil {
		return err
	}

	renderer.RenderBatchSummary(results, insufficient)

	log.InfoContext(ctx, "Batch report complete",
		slog.Int("analyzed", len(results)),
		slog.Int("insufficient", insufficient))

	return nil
}

// processFiles loads and analyzes each path in order, returning the
// per-file results and the number of files skipped for having too few
// samples. An unreadable file aborts the whole batch; files after it
// are not attempted.
func processFiles(ctx context.Context, log *slog.Logger, loader *chargedata.Loader, analyzer *analysis.Analyzer, renderer *report.ConsoleRenderer, paths []string) ([]*analysis.Result, int, error) {
	var results []*analysis.Result
	insufficient := 0

	for _, path := range paths {
		dataset, err := loader.Load(ctx, path)
		if err != nil {
			infrastructure.WithError(log, err).ErrorContext(ctx, "Aborting batch on unreadable file",
				slog.String("file", path))
			renderer.RenderFatal(path)
			return nil, 0, err
		}

		result, err := analyzer.Analyze(ctx, dataset)
		if err != nil {
			if apperrors.IsType(err, apperrors.ErrTypeInsufficientData) {
				renderer.RenderInsufficientData(dataset.Source, dataset.Count())
				insufficient++
				continue
			}
			infrastructure.WithError(log, err).ErrorContext(ctx, "Analysis failed",
				slog.String("file", path))
			return nil, 0, err
		}

		renderer.RenderResult(result)
		results = append(results, result)
	}

	return results, insufficient, nil
}

// resolveInputs returns the measurement file paths for this run.
// Explicit paths on the command line win over directory discovery.
func resolveInputs(logger *slog.Logger, cfg *config.Config, dir string, args []string) ([]string, error) {
	validator := validation.NewFileValidator(logger)

	if len(args) > 0 {
		for _, path := range args {
			if err := validator.ValidateInputFile(path); err != nil {
				return nil, err
			}
		}
		return args, nil
	}

	if dir == "" {
		dir = cfg.Input.DataDir
	}
	if err := validator.ValidateInputDirectory(dir); err != nil {
		return nil, err
	}

	discovery := files.NewDiscovery(".", cfg.Input.Extensions)
	infos, err := discovery.FindMeasurementFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, apperrors.NewConfigError(
			fmt.Sprintf("no measurement files found in %s", dir), nil)
	}

	return files.Paths(infos), nil
}
