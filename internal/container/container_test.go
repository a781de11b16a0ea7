package container

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/expense-ledger/internal/config"
	"fjacquet/expense-ledger/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer(t *testing.T) {
	badFormat := config.DefaultConfig()
	badFormat.Output.Format = "xml"

	jsonOutput := config.DefaultConfig()
	jsonOutput.Output.Format = config.FormatJSON
	jsonOutput.Log.Level = "debug"
	jsonOutput.Log.Format = "json"

	tests := []struct {
		name        string
		config      *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      nil,
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "defaults",
			config: config.DefaultConfig(),
		},
		{
			name:   "json output with json logs",
			config: jsonOutput,
		},
		{
			name:        "unsupported output format",
			config:      badFormat,
			expectError: true,
			errorMsg:    "unsupported format: xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, err := NewContainer(tt.config)

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, container)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, container.GetLogger())
			assert.Same(t, tt.config, container.GetConfig())
			assert.NotNil(t, container.GetLedger())
			assert.NotNil(t, container.GetImporter())
			assert.Equal(t, tt.config.Output.Format, container.GetRenderer().Format())
			assert.NoError(t, container.Close())
		})
	}
}

func TestNewContainerWithLogger_NilLogger(t *testing.T) {
	_, err := NewContainerWithLogger(config.DefaultConfig(), nil)
	assert.EqualError(t, err, "logger cannot be nil")
}

func TestContainer_LoadSeed(t *testing.T) {
	mock := logging.NewMockLogger()
	cfg := config.DefaultConfig()
	cfg.Import.CSVDelimiter = ";"

	container, err := NewContainerWithLogger(cfg, mock)
	require.NoError(t, err)

	n, err := container.LoadSeed("")
	require.NoError(t, err)
	assert.Zero(t, n)

	seed := filepath.Join(t.TempDir(), "seed.csv")
	content := "Date;Category;Amount;Description;Type\n" +
		"1/11/2025;Food;250.50;Lunch;Expense\n" +
		"15/11/2025;Salary;20000;November salary;Income\n"
	require.NoError(t, os.WriteFile(seed, []byte(content), 0600))

	n, err = container.LoadSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, container.GetLedger().TransactionCount())
	assert.Equal(t, []string{"Food", "Salary"}, container.GetLedger().Categories())
	assert.True(t, mock.HasEntry("INFO", "Imported transactions"))
}

func TestContainer_SharesOneLedger(t *testing.T) {
	container, err := NewContainerWithLogger(config.DefaultConfig(), logging.NewDiscardLogger())
	require.NoError(t, err)

	assert.Same(t, container.GetLedger(), container.GetLedger())
}
