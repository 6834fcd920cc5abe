// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	// TypeIncome marks a transaction that adds money.
	TypeIncome TransactionType = "income"
	// TypeExpense marks a transaction that spends money.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the two known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single financial event. Amount is always
// non-negative; the sign is implied by Type. Date is an ISO 8601 calendar
// date (YYYY-MM-DD), which is also the partition key for monthly bucketing.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Tags        []string        `json:"tags,omitempty"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// AddTag appends a tag, suppressing duplicates while preserving insertion order.
func (t *Transaction) AddTag(tag string) {
	for _, existing := range t.Tags {
		if existing == tag {
			return
		}
	}
	t.Tags = append(t.Tags, tag)
}

// Budget is a spending cap for one category in one month (YYYY-MM).
// At most one budget per (category, month) pair is assumed; when duplicates
// exist the aggregation layer keeps the last one it encounters.
type Budget struct {
	ID           string          `json:"id"`
	Category     string          `json:"category"`
	MonthlyLimit decimal.Decimal `json:"monthlyLimit"`
	Month        string          `json:"month"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
}

// MonthlySummary is the derived income/expense rollup for one month.
// It is computed on demand and never persisted.
type MonthlySummary struct {
	Month         string          `json:"month"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetAmount     decimal.Decimal `json:"netAmount"`
}

// CategorySummary is the derived spend-vs-budget rollup for one expense
// category in one month. Computed on demand, never persisted.
type CategorySummary struct {
	Category         string          `json:"category"`
	TotalSpent       decimal.Decimal `json:"totalSpent"`
	BudgetLimit      decimal.Decimal `json:"budgetLimit"`
	TransactionCount int             `json:"transactionCount"`
}
