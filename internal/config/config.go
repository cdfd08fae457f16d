package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/napolitain/industrialist-calc/internal/calculator"
	"github.com/napolitain/industrialist-calc/internal/models"
)

// EnvPrefix prefixes every environment override, e.g. INDUSTRIALIST_OUTPUT_FORMAT
const EnvPrefix = "INDUSTRIALIST"

// Config is the CLI configuration
type Config struct {
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Output   OutputConfig   `mapstructure:"output"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DefaultsConfig is the selection used when a flag is not given
type DefaultsConfig struct {
	DrillHead string `mapstructure:"drill_head" validate:"required"`
	Acid      string `mapstructure:"acid" validate:"required"`
	Oil       string `mapstructure:"oil" validate:"required"`
	Depth     int    `mapstructure:"depth" validate:"gt=0"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	// Output format: table, text, json, yaml
	Format string `mapstructure:"format" validate:"required,oneof=table text json yaml"`

	// Colourise terminal output
	Color bool `mapstructure:"color"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// Debug reports whether debug logging is enabled
func (l LoggingConfig) Debug() bool {
	return l.Level == "debug"
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (industrialist.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("industrialist")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "industrialist"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	def := calculator.DefaultSelection()
	return &Config{
		Defaults: DefaultsConfig{
			DrillHead: string(def.DrillHead),
			Acid:      string(def.Acid),
			Oil:       string(def.Oil),
			Depth:     int(def.Depth),
		},
		Output:  OutputConfig{Format: "table", Color: true},
		Logging: LoggingConfig{Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("defaults.drill_head", def.Defaults.DrillHead)
	v.SetDefault("defaults.acid", def.Defaults.Acid)
	v.SetDefault("defaults.oil", def.Defaults.Oil)
	v.SetDefault("defaults.depth", def.Defaults.Depth)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("output.color", def.Output.Color)
	v.SetDefault("logging.level", def.Logging.Level)
}

// Selection resolves the configured defaults against tables
func (d DefaultsConfig) Selection(tables *models.Tables) (calculator.Selection, error) {
	var errs []error

	drillHead, err := tables.ParseDrillHeadID(d.DrillHead)
	errs = append(errs, err)
	acid, err := tables.ParseAcidID(d.Acid)
	errs = append(errs, err)
	oil, err := tables.ParseOilID(d.Oil)
	errs = append(errs, err)
	depth, err := tables.ParseDepthID(fmt.Sprint(d.Depth))
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return calculator.Selection{}, fmt.Errorf("invalid default selection: %w", err)
	}
	return calculator.Selection{DrillHead: drillHead, Acid: acid, Oil: oil, Depth: depth}, nil
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into readable messages
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Namespace(),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}
