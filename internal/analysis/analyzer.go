package analysis

import (
	"context"
	"log/slog"

	"chargecli/internal/chargedata"
	apperrors "chargecli/internal/errors"
)

// Result holds the computed statistics for one measurement file.
type Result struct {
	Source   string  // path the measurements were read from
	Count    int     // accepted readings the statistics cover
	Rejected int     // corrupt lines dropped during the load
	Mean     float64 // arithmetic mean
	StdDev   float64 // sample standard deviation (n-1 divisor)
	StdErr   float64 // standard error of the mean, as mean / sqrt(n)
}

// Analyzer computes descriptive statistics over loaded datasets.
type Analyzer struct {
	logger     *slog.Logger
	minSamples int
}

// AnalyzerConfig holds configuration options for the Analyzer.
type AnalyzerConfig struct {
	MinSamples int // smallest dataset the analyzer accepts
}

// NewAnalyzer creates an analyzer with the given configuration.
// A nil logger falls back to slog.Default(). MinSamples below 2 is
// raised to 2 so the sample standard deviation is always defined.
func NewAnalyzer(logger *slog.Logger, config AnalyzerConfig) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if config.MinSamples < 2 {
		config.MinSamples = 2
	}

	return &Analyzer{
		logger:     logger.With(slog.String("component", "analyzer")),
		minSamples: config.MinSamples,
	}
}

// Analyze computes mean, sample standard deviation, and standard error
// of the mean for the dataset. Datasets below the configured minimum
// size are rejected with an insufficient-data error instead of letting
// NaN propagate through the formulas.
func (a *Analyzer) Analyze(ctx context.Context, dataset *chargedata.Dataset) (*Result, error) {
	source := ""
	count := 0
	if dataset != nil {
		source = dataset.Source
		count = dataset.Count()
	}

	if count < a.minSamples {
		a.logger.WarnContext(ctx, "not enough data points for statistics",
			slog.String("source", source),
			slog.Int("count", count),
			slog.Int("required", a.minSamples))
		return nil, apperrors.NewInsufficientDataError(source, count)
	}

	mean := Mean(dataset.Values)
	stdDev := StandardDeviation(dataset.Values, mean)
	stdErr := StandardErrorOfMean(mean, count)

	result := &Result{
		Source:   source,
		Count:    count,
		Rejected: dataset.Rejected,
		Mean:     mean,
		StdDev:   stdDev,
		StdErr:   stdErr,
	}

	a.logger.InfoContext(ctx, "statistics computed",
		slog.String("source", source),
		slog.Int("count", result.Count),
		slog.Float64("mean", result.Mean),
		slog.Float64("std_dev", result.StdDev),
		slog.Float64("std_err", result.StdErr))

	return result, nil
}
