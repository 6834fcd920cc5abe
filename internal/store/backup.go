package store

import (
	"context"
	"encoding/json"
	"fmt"

	"fjacquet/budget-planner/internal/dateutils"
	"fjacquet/budget-planner/internal/logging"
	"fjacquet/budget-planner/internal/models"
)

// Backup is the bulk export document. Its JSON shape is the interchange
// contract: importing a document produced by Export reproduces an equivalent
// collection, same ids and field values.
type Backup struct {
	Transactions []models.Transaction `json:"transactions"`
	Budgets      []models.Budget      `json:"budgets"`
	ExportDate   string               `json:"exportDate"`
}

// Export collects every transaction and budget into a Backup document.
func (s *Store) Export(ctx context.Context) (Backup, error) {
	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return Backup{}, fmt.Errorf("export transactions: %w", err)
	}
	budgets, err := s.ListBudgets(ctx)
	if err != nil {
		return Backup{}, fmt.Errorf("export budgets: %w", err)
	}
	return Backup{
		Transactions: transactions,
		Budgets:      budgets,
		ExportDate:   dateutils.NowISO(),
	}, nil
}

// ExportJSON renders the Backup document as indented JSON.
func (s *Store) ExportJSON(ctx context.Context) ([]byte, error) {
	backup, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup: %w", err)
	}
	return data, nil
}

// Import upserts the document's transactions and budgets, keyed by id.
// Existing records with matching ids are replaced; everything else is
// inserted. Records already in the store but absent from the document are
// left alone.
func (s *Store) Import(ctx context.Context, backup Backup) error {
	for _, t := range backup.Transactions {
		if err := s.upsertTransaction(ctx, t); err != nil {
			return err
		}
	}
	for _, b := range backup.Budgets {
		if err := s.upsertBudget(ctx, b); err != nil {
			return err
		}
	}

	s.logger.WithFields(
		logging.Field{Key: "transactions", Value: len(backup.Transactions)},
		logging.Field{Key: "budgets", Value: len(backup.Budgets)},
	).Info("Imported backup document")
	return nil
}

// ImportJSON parses and imports a Backup document.
func (s *Store) ImportJSON(ctx context.Context, data []byte) error {
	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("parse backup document: %w", err)
	}
	return s.Import(ctx, backup)
}

func (s *Store) upsertTransaction(ctx context.Context, t models.Transaction) error {
	tags, err := encodeTags(t.Tags)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO transactions (`+transactionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   type = excluded.type, category = excluded.category, amount = excluded.amount,
		   description = excluded.description, date = excluded.date, tags = excluded.tags,
		   created_at = excluded.created_at, updated_at = excluded.updated_at`,
		t.ID, string(t.Type), t.Category, t.Amount.String(), t.Description, t.Date, tags, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert transaction %s: %w", t.ID, err)
	}
	return nil
}

func (s *Store) upsertBudget(ctx context.Context, b models.Budget) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO budgets (`+budgetColumns+`) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   category = excluded.category, monthly_limit = excluded.monthly_limit,
		   month = excluded.month, created_at = excluded.created_at, updated_at = excluded.updated_at`,
		b.ID, b.Category, b.MonthlyLimit.String(), b.Month, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert budget %s: %w", b.ID, err)
	}
	return nil
}
