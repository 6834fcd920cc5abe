// Package store persists transactions and budgets in an embedded SQLite
// database. It is the single persistence collaborator for the application:
// the computation packages (classifier, summary) never touch it and only
// consume the plain collections it returns.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/budget-planner/internal/logging"
	"fjacquet/budget-planner/internal/models"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a get/update/delete targets an id that does
// not exist.
var ErrNotFound = errors.New("record not found")

// Store wraps the SQLite database.
type Store struct {
	db     *sql.DB
	logger logging.Logger
}

// New opens (creating if necessary) the database at dbPath and runs pending
// migrations.
func New(dbPath string, logger logging.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	logger.WithField(logging.FieldFile, dbPath).Debug("Opened budget database")

	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

//------------------------------------------------------------------------------
// TRANSACTIONS
//------------------------------------------------------------------------------

const transactionColumns = "id, type, category, amount, description, date, tags, created_at, updated_at"

// AddTransaction inserts a new transaction.
func (s *Store) AddTransaction(ctx context.Context, t models.Transaction) error {
	tags, err := encodeTags(t.Tags)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO transactions (`+transactionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, string(t.Type), t.Category, t.Amount.String(), t.Description, t.Date, tags, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldTransactionID, Value: t.ID},
		logging.Field{Key: logging.FieldCategory, Value: t.Category},
	).Debug("Transaction saved")
	return nil
}

// UpdateTransaction replaces an existing transaction by id.
func (s *Store) UpdateTransaction(ctx context.Context, t models.Transaction) error {
	tags, err := encodeTags(t.Tags)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE transactions
		 SET type = ?, category = ?, amount = ?, description = ?, date = ?, tags = ?, created_at = ?, updated_at = ?
		 WHERE id = ?`,
		string(t.Type), t.Category, t.Amount.String(), t.Description, t.Date, tags, t.CreatedAt, t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return requireRow(res)
}

// DeleteTransaction removes a transaction by id.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return requireRow(res)
}

// GetTransaction fetches a single transaction by id.
func (s *Store) GetTransaction(ctx context.Context, id string) (models.Transaction, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Transaction{}, ErrNotFound
	}
	return t, err
}

// ListTransactions returns every transaction, ordered by date then id for
// deterministic output.
func (s *Store) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.queryTransactions(ctx,
		`SELECT `+transactionColumns+` FROM transactions ORDER BY date, id`)
}

// TransactionsByMonth returns transactions whose date falls in the YYYY-MM
// month, using the same textual prefix rule the aggregator applies.
func (s *Store) TransactionsByMonth(ctx context.Context, month string) ([]models.Transaction, error) {
	return s.queryTransactions(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE date LIKE ? || '%' ORDER BY date, id`, month)
}

// TransactionsByDateRange returns transactions with startDate <= date <= endDate.
func (s *Store) TransactionsByDateRange(ctx context.Context, startDate, endDate string) ([]models.Transaction, error) {
	return s.queryTransactions(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE date >= ? AND date <= ? ORDER BY date, id`,
		startDate, endDate)
}

func (s *Store) queryTransactions(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return transactions, nil
}

//------------------------------------------------------------------------------
// BUDGETS
//------------------------------------------------------------------------------

const budgetColumns = "id, category, monthly_limit, month, created_at, updated_at"

// AddBudget inserts a new budget.
func (s *Store) AddBudget(ctx context.Context, b models.Budget) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO budgets (`+budgetColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.Category, b.MonthlyLimit.String(), b.Month, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert budget: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldBudgetID, Value: b.ID},
		logging.Field{Key: logging.FieldCategory, Value: b.Category},
		logging.Field{Key: logging.FieldMonth, Value: b.Month},
	).Debug("Budget saved")
	return nil
}

// UpdateBudget replaces an existing budget by id.
func (s *Store) UpdateBudget(ctx context.Context, b models.Budget) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE budgets
		 SET category = ?, monthly_limit = ?, month = ?, created_at = ?, updated_at = ?
		 WHERE id = ?`,
		b.Category, b.MonthlyLimit.String(), b.Month, b.CreatedAt, b.UpdatedAt, b.ID)
	if err != nil {
		return fmt.Errorf("update budget: %w", err)
	}
	return requireRow(res)
}

// DeleteBudget removes a budget by id.
func (s *Store) DeleteBudget(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return requireRow(res)
}

// GetBudget fetches a single budget by id.
func (s *Store) GetBudget(ctx context.Context, id string) (models.Budget, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE id = ?`, id)
	b, err := scanBudget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Budget{}, ErrNotFound
	}
	return b, err
}

// ListBudgets returns every budget, ordered by month then category.
func (s *Store) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	return s.queryBudgets(ctx,
		`SELECT `+budgetColumns+` FROM budgets ORDER BY month, category, id`)
}

// BudgetsByMonth returns budgets whose month equals the given YYYY-MM exactly.
func (s *Store) BudgetsByMonth(ctx context.Context, month string) ([]models.Budget, error) {
	return s.queryBudgets(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE month = ? ORDER BY category, id`, month)
}

func (s *Store) queryBudgets(ctx context.Context, query string, args ...any) ([]models.Budget, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []models.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budgets: %w", err)
	}
	return budgets, nil
}

// ClearAll removes every transaction and budget.
func (s *Store) ClearAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM budgets`); err != nil {
		return fmt.Errorf("clear budgets: %w", err)
	}
	s.logger.Info("Cleared all data")
	return nil
}

//------------------------------------------------------------------------------
// ROW HELPERS
//------------------------------------------------------------------------------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var (
		t         models.Transaction
		txType    string
		amountStr string
		tags      sql.NullString
	)
	err := row.Scan(&t.ID, &txType, &t.Category, &amountStr, &t.Description, &t.Date, &tags, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return models.Transaction{}, err
	}
	t.Type = models.TransactionType(txType)

	t.Amount, err = decimal.NewFromString(amountStr)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("decode amount %q: %w", amountStr, err)
	}

	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &t.Tags); err != nil {
			return models.Transaction{}, fmt.Errorf("decode tags: %w", err)
		}
	}
	return t, nil
}

func scanBudget(row rowScanner) (models.Budget, error) {
	var (
		b        models.Budget
		limitStr string
	)
	err := row.Scan(&b.ID, &b.Category, &limitStr, &b.Month, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.Budget{}, err
	}

	b.MonthlyLimit, err = decimal.NewFromString(limitStr)
	if err != nil {
		return models.Budget{}, fmt.Errorf("decode monthly limit %q: %w", limitStr, err)
	}
	return b, nil
}

func encodeTags(tags []string) (sql.NullString, error) {
	if len(tags) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode tags: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
