package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs so the
// test cannot pick up a real config file.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "data", cfg.Data.Directory)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "categories.yaml", cfg.Categories.File)
}

func TestLoadFromConfigFile(t *testing.T) {
	isolate(t)

	content := `log:
  level: debug
  format: json
data:
  directory: /tmp/budget-data
csv:
  delimiter: ";"
`
	require.NoError(t, os.WriteFile("config.yaml", []byte(content), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/budget-data", cfg.Data.Directory)
	assert.Equal(t, ";", cfg.CSV.Delimiter)
	// Unset keys keep their defaults.
	assert.Equal(t, "categories.yaml", cfg.Categories.File)
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("BUDGET_LOG_LEVEL", "debug")
	t.Setenv("BUDGET_DATA_DIRECTORY", "elsewhere")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "elsewhere", cfg.Data.Directory)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad log level", map[string]string{"BUDGET_LOG_LEVEL": "verbose"}},
		{"bad log format", map[string]string{"BUDGET_LOG_FORMAT": "xml"}},
		{"multi character delimiter", map[string]string{"BUDGET_CSV_DELIMITER": ",,"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDatabasePath(t *testing.T) {
	var cfg Config
	cfg.Data.Directory = "data"
	assert.Equal(t, filepath.Join("data", "budget.db"), cfg.DatabasePath())
}

func TestDelimiter(t *testing.T) {
	var cfg Config
	assert.Equal(t, ',', cfg.Delimiter())

	cfg.CSV.Delimiter = ";"
	assert.Equal(t, ';', cfg.Delimiter())
}
