package store

import (
	"context"
	"encoding/json"
	"testing"

	"fjacquet/budget-planner/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	source := newTestStore(t)
	ctx := context.Background()

	tx := sampleTransaction("tx-1")
	budget := sampleBudget("b-1")
	require.NoError(t, source.AddTransaction(ctx, tx))
	require.NoError(t, source.AddBudget(ctx, budget))

	data, err := source.ExportJSON(ctx)
	require.NoError(t, err)

	// The document carries the interchange field names.
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "transactions")
	assert.Contains(t, doc, "budgets")
	assert.Contains(t, doc, "exportDate")

	target := newTestStore(t)
	require.NoError(t, target.ImportJSON(ctx, data))

	got, err := target.GetTransaction(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, tx.Description, got.Description)
	assert.True(t, got.Amount.Equal(tx.Amount))
	assert.Equal(t, tx.Tags, got.Tags)

	gotBudget, err := target.GetBudget(ctx, "b-1")
	require.NoError(t, err)
	assert.True(t, gotBudget.MonthlyLimit.Equal(budget.MonthlyLimit))
	assert.Equal(t, budget.Month, gotBudget.Month)
}

func TestImportUpsertsById(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	existing := sampleTransaction("tx-1")
	untouched := sampleTransaction("tx-keep")
	require.NoError(t, s.AddTransaction(ctx, existing))
	require.NoError(t, s.AddTransaction(ctx, untouched))

	replacement := existing
	replacement.Description = "Replaced on import"
	replacement.Amount = decimal.NewFromInt(99)

	incoming := sampleTransaction("tx-new")

	require.NoError(t, s.Import(ctx, Backup{
		Transactions: []models.Transaction{replacement, incoming},
		Budgets: []models.Budget{
			sampleBudget("b-1"),
		},
	}))

	got, err := s.GetTransaction(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, "Replaced on import", got.Description)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(99)))

	// New record inserted, unrelated record left alone.
	_, err = s.GetTransaction(ctx, "tx-new")
	require.NoError(t, err)
	kept, err := s.GetTransaction(ctx, "tx-keep")
	require.NoError(t, err)
	assert.Equal(t, untouched.Description, kept.Description)

	_, err = s.GetBudget(ctx, "b-1")
	require.NoError(t, err)
}

func TestImportJSONRejectsMalformedDocument(t *testing.T) {
	s := newTestStore(t)
	err := s.ImportJSON(context.Background(), []byte(`{"transactions": "nope"`))
	assert.Error(t, err)
}

func TestExportEmptyStore(t *testing.T) {
	s := newTestStore(t)
	backup, err := s.Export(context.Background())
	require.NoError(t, err)
	assert.Empty(t, backup.Transactions)
	assert.Empty(t, backup.Budgets)
	assert.NotEmpty(t, backup.ExportDate)
}
