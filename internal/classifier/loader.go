package classifier

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/budget-planner/internal/models"

	"gopkg.in/yaml.v3"
)

// findTablesFile looks for the keyword tables file in standard locations:
// the path itself, ./config/, and ~/.budget-planner/.
func findTablesFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".budget-planner", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadTables loads keyword tables from the given YAML file. A missing file is
// not an error: the built-in tables are returned so the classifier always has
// a working taxonomy. An empty filename defaults to "categories.yaml".
func LoadTables(filename string) (models.KeywordTables, error) {
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := findTablesFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultTables(), nil
		}
		return models.KeywordTables{}, fmt.Errorf("error resolving keyword tables file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return models.KeywordTables{}, fmt.Errorf("error reading keyword tables file: %w", err)
	}

	var tables models.KeywordTables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return models.KeywordTables{}, fmt.Errorf("error parsing keyword tables file: %w", err)
	}

	// A file that defines only one side keeps the built-in table for the other.
	defaults := DefaultTables()
	if len(tables.Expense) == 0 {
		tables.Expense = defaults.Expense
	}
	if len(tables.Income) == 0 {
		tables.Income = defaults.Income
	}

	return tables, nil
}
