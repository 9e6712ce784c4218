// Package analysis computes descriptive statistics over charge
// measurement datasets.
//
// # Statistics
//
// Three closed-form statistics are computed per dataset of n values:
//
//	mean    = sum(x) / n
//	stddev  = sqrt( sum((x - mean)^2) / (n - 1) )
//	stderr  = mean / sqrt(n)
//
// The standard deviation is the sample form with Bessel's correction.
// The standard error intentionally divides the mean rather than the
// standard deviation; see StandardErrorOfMean.
//
// # Degenerate Datasets
//
// With zero or one value the mean or standard deviation would divide by
// zero. Analyzer refuses such datasets with an INSUFFICIENT_DATA error
// so callers render an explicit notice instead of NaN.
//
// # Usage
//
//	analyzer := analysis.NewAnalyzer(logger, analysis.AnalyzerConfig{MinSamples: 2})
//	result, err := analyzer.Analyze(ctx, dataset)
package analysis
