package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/budget-planner/internal/logging"
	"fjacquet/budget-planner/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:          "tx-1",
			Type:        models.TypeExpense,
			Category:    models.CategoryFood,
			Amount:      decimal.NewFromFloat(12.5),
			Description: "Lunch at the deli",
			Date:        "2025-11-05",
		},
		{
			ID:          "tx-2",
			Type:        models.TypeIncome,
			Category:    models.CategorySalary,
			Amount:      decimal.NewFromInt(5000),
			Description: "November paycheck",
			Date:        "2025-11-01",
		},
	}
}

func TestWrite(t *testing.T) {
	w := NewWriter(',', &logging.MockLogger{})

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, sampleTransactions()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Type,Category,Amount,Description", lines[0])
	assert.Equal(t, "2025-11-05,expense,Food,12.50,Lunch at the deli", lines[1])
	assert.Equal(t, "2025-11-01,income,Salary,5000.00,November paycheck", lines[2])
}

func TestWriteQuotesDelimiterInDescription(t *testing.T) {
	w := NewWriter(',', &logging.MockLogger{})

	transactions := []models.Transaction{{
		Type:        models.TypeExpense,
		Category:    models.CategoryShopping,
		Amount:      decimal.NewFromInt(30),
		Description: `Socks, shirts and "stuff"`,
		Date:        "2025-11-10",
	}}

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, transactions))
	assert.Contains(t, buf.String(), `"Socks, shirts and ""stuff"""`)
}

func TestWriteCustomDelimiter(t *testing.T) {
	w := NewWriter(';', &logging.MockLogger{})

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, sampleTransactions()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "Date;Type;Category;Amount;Description", lines[0])
}

func TestWriteEmptySlice(t *testing.T) {
	w := NewWriter(0, &logging.MockLogger{})

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, nil))
	assert.Equal(t, "Date,Type,Category,Amount,Description", strings.TrimSpace(buf.String()))
}

func TestWriteFile(t *testing.T) {
	w := NewWriter(',', &logging.MockLogger{})

	csvFile := filepath.Join(t.TempDir(), "reports", "november.csv")
	require.NoError(t, w.WriteFile(csvFile, sampleTransactions()))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Lunch at the deli")
}
