package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEnvVars = []string{
	"LEDGER_LOG_LEVEL",
	"LEDGER_LOG_FORMAT",
	"LEDGER_DISPLAY_CURRENCY_SYMBOL",
	"LEDGER_OUTPUT_FORMAT",
	"LEDGER_REPORT_TOP_N",
	"LEDGER_SEARCH_CASE_INSENSITIVE",
	"LEDGER_IMPORT_FILE",
	"LEDGER_IMPORT_CSV_DELIMITER",
}

// isolate clears LEDGER_* variables and runs the test from an empty
// directory so no stray config.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range testEnvVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestInitializeConfig_Defaults(t *testing.T) {
	isolate(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "₹", config.Display.CurrencySymbol)
	assert.Equal(t, FormatText, config.Output.Format)
	assert.Equal(t, 5, config.Report.TopN)
	assert.False(t, config.Search.CaseInsensitive)
	assert.Equal(t, "", config.Import.File)
	assert.Equal(t, ',', config.Delimiter())
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)

	for key, value := range map[string]string{
		"LEDGER_LOG_LEVEL":               "debug",
		"LEDGER_LOG_FORMAT":              "json",
		"LEDGER_DISPLAY_CURRENCY_SYMBOL": "CHF ",
		"LEDGER_OUTPUT_FORMAT":           "yaml",
		"LEDGER_REPORT_TOP_N":            "3",
		"LEDGER_SEARCH_CASE_INSENSITIVE": "true",
		"LEDGER_IMPORT_CSV_DELIMITER":    ";",
	} {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "CHF ", config.Display.CurrencySymbol)
	assert.Equal(t, FormatYAML, config.Output.Format)
	assert.Equal(t, 3, config.Report.TopN)
	assert.True(t, config.Search.CaseInsensitive)
	assert.Equal(t, ';', config.Delimiter())
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	dir := isolate(t)

	content := `log:
  level: warn
display:
  currency_symbol: "$"
report:
  top_n: 10
import:
  file: seed.yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "$", config.Display.CurrencySymbol)
	assert.Equal(t, 10, config.Report.TopN)
	assert.Equal(t, "seed.yaml", config.Import.File)
	assert.Equal(t, "text", config.Log.Format, "unset keys keep defaults")
}

func TestInitializeConfig_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("report:\n  top_n: 10\n"), 0600))
	t.Setenv("LEDGER_REPORT_TOP_N", "2")

	config, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, config.Report.TopN)
}

func TestInitializeConfigFromFile_Missing(t *testing.T) {
	dir := isolate(t)

	_, err := InitializeConfigFromFile(filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestInitializeConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		message string
	}{
		{"bad log level", "LEDGER_LOG_LEVEL", "loud", "invalid log level"},
		{"bad log format", "LEDGER_LOG_FORMAT", "xml", "invalid log format"},
		{"bad output format", "LEDGER_OUTPUT_FORMAT", "html", "invalid output format"},
		{"zero top n", "LEDGER_REPORT_TOP_N", "0", "report.top_n must be at least 1"},
		{"long delimiter", "LEDGER_IMPORT_CSV_DELIMITER", ";;", "CSV delimiter must be a single character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)

			_, err := InitializeConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 5, config.Report.TopN)
	assert.Equal(t, "₹", config.Display.CurrencySymbol)
	assert.NoError(t, validateConfig(config))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("LEDGER_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("LEDGER_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("LEDGER_TEST_UNSET_VALUE", "fallback"))
}
