package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "chargecli/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Input    InputConfig    `yaml:"input" envconfig:"INPUT"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"required,oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"required,oneof=json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"required,oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output stdout"`
}

// InputConfig contains measurement input configuration
type InputConfig struct {
	DataDir    string   `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	Extensions []string `yaml:"extensions" envconfig:"EXTENSIONS" validate:"min=1,dive,startswith=."`
}

// AnalysisConfig contains statistics configuration
type AnalysisConfig struct {
	MinSamples int `yaml:"min_samples" envconfig:"MIN_SAMPLES" validate:"gte=2"`
	Precision  int `yaml:"precision" envconfig:"PRECISION" validate:"gte=1,lte=17"`
}

// Load loads configuration from defaults, an optional YAML file, and
// environment variables. Later sources win: defaults < file < env.
func Load() (*Config, error) {
	cfg := Default()

	configFile := getConfigFilePath()
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("CHARGE", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays configuration from a YAML file onto cfg.
// Keys absent from the file keep their current values. A file that does
// not parse is reported as a parsing error.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return apperrors.NewParsingError(fmt.Sprintf("config file %s is not valid YAML", filePath), err)
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

var structValidator = validator.New()

// validate validates the configuration using struct tags
func (c *Config) validate() error {
	err := structValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		messages := make([]string, 0, len(fieldErrors))
		for _, fieldErr := range fieldErrors {
			messages = append(messages, formatValidationError(fieldErr))
		}
		return errors.New(strings.Join(messages, "; "))
	}

	return err
}

// formatValidationError formats validation error messages
func formatValidationError(err validator.FieldError) string {
	field := err.Field()
	tag := err.Tag()
	param := err.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_unless":
		return fmt.Sprintf("%s is required for this output mode", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Replace(param, " ", ", ", -1))
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "startswith":
		return fmt.Sprintf("%s must start with %q", field, param)
	default:
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stdout",
			FilePath: "logs/charge.log",
		},
		Input: InputConfig{
			DataDir:    "data",
			Extensions: []string{".dat", ".txt"},
		},
		Analysis: AnalysisConfig{
			MinSamples: 2,
			Precision:  6,
		},
	}
}
