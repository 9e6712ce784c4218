package main

import (
	"context"
	"log/slog"
	"os"

	"chargecli/internal/analysis"
	"chargecli/internal/chargedata"
	"chargecli/internal/config"
	apperrors "chargecli/internal/errors"
	"chargecli/internal/infrastructure"
	"chargecli/internal/prompt"
	"chargecli/internal/report"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.EnsureTraceID(context.Background())
	logger.InfoContext(ctx, "Starting charge analyzer",
		slog.String("log_level", cfg.Logging.Level),
		slog.Int("min_samples", cfg.Analysis.MinSamples))

	prompter := prompt.NewPrompter(os.Stdin, os.Stdout)
	renderer := report.NewConsoleRenderer(os.Stdout, cfg.Analysis.Precision)

	renderer.Welcome()

	filesToLoad, err := prompter.CollectFilenames()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to collect filenames",
			slog.String("error", err.Error()))
		return err
	}

	// One loader and one analyzer serve every file; each load builds a
	// fresh dataset.
	loader := chargedata.NewLoader(logger)
	analyzer := analysis.NewAnalyzer(logger, analysis.AnalyzerConfig{
		MinSamples: cfg.Analysis.MinSamples,
	})

	if err := processFiles(ctx, logger, loader, analyzer, renderer, filesToLoad); err != nil {
		return err
	}

	if err := prompter.WaitForAck(); err != nil {
		logger.WarnContext(ctx, "Failed to read final acknowledgment",
			slog.String("error", err.Error()))
	}

	return nil
}

// processFiles loads and analyzes each file in order, rendering a
// result or an insufficient-data notice per file. An unreadable file
// aborts the whole run; files after it are not attempted.
func processFiles(ctx context.Context, logger *slog.Logger, loader *chargedata.Loader, analyzer *analysis.Analyzer, renderer *report.ConsoleRenderer, filesToLoad []string) error {
	for _, file := range filesToLoad {
		dataset, err := loader.Load(ctx, file)
		if err != nil {
			logger.ErrorContext(ctx, "Aborting run on unreadable file",
				slog.String("file", file),
				slog.String("error", err.Error()))
			renderer.RenderFatal(file)
			return err
		}

		result, err := analyzer.Analyze(ctx, dataset)
		if err != nil {
			if apperrors.IsType(err, apperrors.ErrTypeInsufficientData) {
				renderer.RenderInsufficientData(dataset.Source, dataset.Count())
				continue
			}
			logger.ErrorContext(ctx, "Analysis failed",
				slog.String("file", file),
				slog.String("error", err.Error()))
			return err
		}

		renderer.RenderResult(result)
	}

	return nil
}
