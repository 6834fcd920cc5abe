// Package seed loads a small demonstration dataset into the store.
package seed

import (
	"context"
	"fmt"

	"fjacquet/budget-planner/internal/dateutils"
	"fjacquet/budget-planner/internal/logging"
	"fjacquet/budget-planner/internal/models"
	"fjacquet/budget-planner/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type sampleTransaction struct {
	txType      models.TransactionType
	category    string
	amount      int64
	description string
	date        string
}

var sampleTransactions = []sampleTransaction{
	// Income
	{models.TypeIncome, models.CategorySalary, 5000, "Monthly salary", "2025-11-01"},
	{models.TypeIncome, models.CategoryFreelance, 1200, "Website project", "2025-11-15"},

	// Expenses
	{models.TypeExpense, models.CategoryHousing, 1500, "Monthly rent", "2025-11-01"},
	{models.TypeExpense, models.CategoryUtilities, 150, "Electric bill", "2025-11-05"},
	{models.TypeExpense, models.CategoryFood, 350, "Groceries", "2025-11-07"},
	{models.TypeExpense, models.CategoryTransportation, 80, "Gas", "2025-11-10"},
	{models.TypeExpense, models.CategoryEntertainment, 120, "Movie night and dinner", "2025-11-12"},
	{models.TypeExpense, models.CategoryShopping, 200, "Clothes", "2025-11-14"},
	{models.TypeExpense, models.CategoryFood, 180, "Restaurants", "2025-11-18"},
	{models.TypeExpense, models.CategoryHealthcare, 75, "Pharmacy", "2025-11-20"},

	// Previous month
	{models.TypeIncome, models.CategorySalary, 5000, "Monthly salary", "2025-10-01"},
	{models.TypeExpense, models.CategoryHousing, 1500, "Monthly rent", "2025-10-01"},
	{models.TypeExpense, models.CategoryFood, 450, "Groceries and dining", "2025-10-15"},
	{models.TypeExpense, models.CategoryTransportation, 100, "Gas and maintenance", "2025-10-18"},
}

type sampleBudget struct {
	category string
	limit    int64
}

// Budgets are created for the current month so the report commands have
// something to compare against.
var sampleBudgets = []sampleBudget{
	{models.CategoryHousing, 1500},
	{models.CategoryFood, 600},
	{models.CategoryTransportation, 200},
	{models.CategoryUtilities, 200},
	{models.CategoryEntertainment, 150},
	{models.CategoryShopping, 300},
	{models.CategoryHealthcare, 150},
}

// Load clears the store and inserts the sample dataset.
func Load(ctx context.Context, s *store.Store, logger logging.Logger) error {
	logger.Info("Clearing existing data")
	if err := s.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}

	now := dateutils.NowISO()

	logger.WithField(logging.FieldCount, len(sampleTransactions)).Info("Adding sample transactions")
	for _, st := range sampleTransactions {
		t := models.Transaction{
			ID:          uuid.NewString(),
			Type:        st.txType,
			Category:    st.category,
			Amount:      decimal.NewFromInt(st.amount),
			Description: st.description,
			Date:        st.date,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.AddTransaction(ctx, t); err != nil {
			return fmt.Errorf("add sample transaction: %w", err)
		}
	}

	month := dateutils.CurrentMonth()
	logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(sampleBudgets)},
		logging.Field{Key: logging.FieldMonth, Value: month},
	).Info("Adding sample budgets")
	for _, sb := range sampleBudgets {
		b := models.Budget{
			ID:           uuid.NewString(),
			Category:     sb.category,
			MonthlyLimit: decimal.NewFromInt(sb.limit),
			Month:        month,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.AddBudget(ctx, b); err != nil {
			return fmt.Errorf("add sample budget: %w", err)
		}
	}

	return nil
}
