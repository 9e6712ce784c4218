// Package config provides centralized configuration management for the
// charge analyzer. It handles loading configuration from multiple sources,
// validation, and provides a type-safe API for accessing configuration
// values throughout the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (config.yaml)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern CHARGE_* for namespacing:
//
//	CHARGE_LOGGING_LEVEL=debug
//	CHARGE_LOGGING_OUTPUT=file
//	CHARGE_INPUT_DATA_DIR=measurements
//	CHARGE_INPUT_EXTENSIONS=.dat,.txt
//	CHARGE_ANALYSIS_PRECISION=9
//
// # Validation
//
// All configuration is validated at load time with struct tags
// (github.com/go-playground/validator). Violations are reported as
// readable messages, for example:
//
//	Level must be one of: debug, info, warn, warning, error
//	MinSamples must be greater than or equal to 2
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    slog.Error("failed to load config", "error", err)
//	    os.Exit(1)
//	}
package config
