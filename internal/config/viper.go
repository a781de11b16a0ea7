package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Output formats understood by the report renderer
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// SupportedOutputFormats lists every valid output.format value
var SupportedOutputFormats = []string{FormatText, FormatJSON, FormatYAML}

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Display struct {
		CurrencySymbol string `mapstructure:"currency_symbol" yaml:"currency_symbol"`
	} `mapstructure:"display" yaml:"display"`

	Output struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"output" yaml:"output"`

	Report struct {
		TopN int `mapstructure:"top_n" yaml:"top_n"`
	} `mapstructure:"report" yaml:"report"`

	Search struct {
		CaseInsensitive bool `mapstructure:"case_insensitive" yaml:"case_insensitive"`
	} `mapstructure:"search" yaml:"search"`

	Import struct {
		File         string `mapstructure:"file" yaml:"file"`
		CSVDelimiter string `mapstructure:"csv_delimiter" yaml:"csv_delimiter"`
	} `mapstructure:"import" yaml:"import"`
}

// InitializeConfig loads configuration from the standard locations
func InitializeConfig() (*Config, error) {
	return InitializeConfigFromFile("")
}

// InitializeConfigFromFile loads configuration hierarchically: defaults, then
// configFile (or config.yaml found in $HOME/.ledger, .ledger or the current
// directory when configFile is empty), then LEDGER_* environment variables.
func InitializeConfigFromFile(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.ledger")
		v.AddConfigPath(".ledger")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix("LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Config file is optional unless explicitly requested
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the configuration produced by defaults alone
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("display.currency_symbol", "₹")

	v.SetDefault("output.format", FormatText)

	v.SetDefault("report.top_n", 5)

	v.SetDefault("search.case_insensitive", false)

	v.SetDefault("import.file", "")
	v.SetDefault("import.csv_delimiter", ",")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if !IsValidOutputFormat(config.Output.Format) {
		return fmt.Errorf("invalid output format: %s (must be one of %v)", config.Output.Format, SupportedOutputFormats)
	}

	if config.Report.TopN < 1 {
		return fmt.Errorf("report.top_n must be at least 1, got: %d", config.Report.TopN)
	}

	if utf8.RuneCountInString(config.Import.CSVDelimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.Import.CSVDelimiter)
	}

	return nil
}

// IsValidOutputFormat reports whether format is one of SupportedOutputFormats
func IsValidOutputFormat(format string) bool {
	for _, f := range SupportedOutputFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Delimiter returns the configured CSV delimiter as a rune
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.Import.CSVDelimiter)
	return r
}
