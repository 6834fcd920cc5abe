package store

import (
	"context"
	"path/filepath"
	"testing"

	"fjacquet/budget-planner/internal/logging"
	"fjacquet/budget-planner/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "budget.db"), &logging.MockLogger{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleTransaction(id string) models.Transaction {
	return models.Transaction{
		ID:          id,
		Type:        models.TypeExpense,
		Category:    models.CategoryFood,
		Amount:      decimal.NewFromFloat(12.50),
		Description: "Lunch at the deli",
		Date:        "2025-11-05",
		Tags:        []string{"work", "lunch"},
		CreatedAt:   "2025-11-05T12:00:00Z",
		UpdatedAt:   "2025-11-05T12:00:00Z",
	}
}

func sampleBudget(id string) models.Budget {
	return models.Budget{
		ID:           id,
		Category:     models.CategoryFood,
		MonthlyLimit: decimal.NewFromInt(600),
		Month:        "2025-11",
		CreatedAt:    "2025-11-01T00:00:00Z",
		UpdatedAt:    "2025-11-01T00:00:00Z",
	}
}

func TestTransactionCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	original := sampleTransaction("tx-1")
	require.NoError(t, s.AddTransaction(ctx, original))

	t.Run("get round trips all fields", func(t *testing.T) {
		got, err := s.GetTransaction(ctx, "tx-1")
		require.NoError(t, err)
		assert.Equal(t, original.ID, got.ID)
		assert.Equal(t, original.Type, got.Type)
		assert.Equal(t, original.Category, got.Category)
		assert.True(t, got.Amount.Equal(original.Amount))
		assert.Equal(t, original.Description, got.Description)
		assert.Equal(t, original.Date, got.Date)
		assert.Equal(t, original.Tags, got.Tags)
		assert.Equal(t, original.CreatedAt, got.CreatedAt)
		assert.Equal(t, original.UpdatedAt, got.UpdatedAt)
	})

	t.Run("update", func(t *testing.T) {
		updated := original
		updated.Amount = decimal.NewFromInt(20)
		updated.Description = "Team lunch"
		updated.Tags = nil
		require.NoError(t, s.UpdateTransaction(ctx, updated))

		got, err := s.GetTransaction(ctx, "tx-1")
		require.NoError(t, err)
		assert.True(t, got.Amount.Equal(decimal.NewFromInt(20)))
		assert.Equal(t, "Team lunch", got.Description)
		assert.Empty(t, got.Tags)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.DeleteTransaction(ctx, "tx-1"))
		_, err := s.GetTransaction(ctx, "tx-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing ids", func(t *testing.T) {
		_, err := s.GetTransaction(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.UpdateTransaction(ctx, sampleTransaction("nope")), ErrNotFound)
		assert.ErrorIs(t, s.DeleteTransaction(ctx, "nope"), ErrNotFound)
	})
}

func TestTransactionQueries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	dates := map[string]string{
		"tx-a": "2025-10-28",
		"tx-b": "2025-11-03",
		"tx-c": "2025-11-20",
		"tx-d": "2025-12-01",
	}
	for id, date := range dates {
		tx := sampleTransaction(id)
		tx.Date = date
		require.NoError(t, s.AddTransaction(ctx, tx))
	}

	t.Run("list ordered by date", func(t *testing.T) {
		all, err := s.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)
		for i := 1; i < len(all); i++ {
			assert.LessOrEqual(t, all[i-1].Date, all[i].Date)
		}
	})

	t.Run("by month", func(t *testing.T) {
		nov, err := s.TransactionsByMonth(ctx, "2025-11")
		require.NoError(t, err)
		require.Len(t, nov, 2)
		assert.Equal(t, "tx-b", nov[0].ID)
		assert.Equal(t, "tx-c", nov[1].ID)
	})

	t.Run("by month no matches", func(t *testing.T) {
		none, err := s.TransactionsByMonth(ctx, "2024-01")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("by date range inclusive", func(t *testing.T) {
		got, err := s.TransactionsByDateRange(ctx, "2025-11-03", "2025-12-01")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "tx-b", got[0].ID)
		assert.Equal(t, "tx-d", got[2].ID)
	})
}

func TestBudgetCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	original := sampleBudget("b-1")
	require.NoError(t, s.AddBudget(ctx, original))

	t.Run("get", func(t *testing.T) {
		got, err := s.GetBudget(ctx, "b-1")
		require.NoError(t, err)
		assert.Equal(t, original.Category, got.Category)
		assert.True(t, got.MonthlyLimit.Equal(original.MonthlyLimit))
		assert.Equal(t, original.Month, got.Month)
	})

	t.Run("update", func(t *testing.T) {
		updated := original
		updated.MonthlyLimit = decimal.NewFromInt(750)
		require.NoError(t, s.UpdateBudget(ctx, updated))

		got, err := s.GetBudget(ctx, "b-1")
		require.NoError(t, err)
		assert.True(t, got.MonthlyLimit.Equal(decimal.NewFromInt(750)))
	})

	t.Run("by month exact match only", func(t *testing.T) {
		oct := sampleBudget("b-2")
		oct.Month = "2025-10"
		require.NoError(t, s.AddBudget(ctx, oct))

		nov, err := s.BudgetsByMonth(ctx, "2025-11")
		require.NoError(t, err)
		require.Len(t, nov, 1)
		assert.Equal(t, "b-1", nov[0].ID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.DeleteBudget(ctx, "b-1"))
		_, err := s.GetBudget(ctx, "b-1")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.DeleteBudget(ctx, "b-1"), ErrNotFound)
	})
}

func TestClearAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddTransaction(ctx, sampleTransaction("tx-1")))
	require.NoError(t, s.AddBudget(ctx, sampleBudget("b-1")))

	require.NoError(t, s.ClearAll(ctx))

	transactions, err := s.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, transactions)

	budgets, err := s.ListBudgets(ctx)
	require.NoError(t, err)
	assert.Empty(t, budgets)

	// Clearing an empty store is fine.
	require.NoError(t, s.ClearAll(ctx))
}

func TestTransactionWithoutTags(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tx := sampleTransaction("tx-1")
	tx.Tags = nil
	require.NoError(t, s.AddTransaction(ctx, tx))

	got, err := s.GetTransaction(ctx, "tx-1")
	require.NoError(t, err)
	assert.Nil(t, got.Tags)
}
