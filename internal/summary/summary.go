// Package summary computes time-bucketed and category-bucketed financial
// rollups from raw transaction and budget collections. Every function is a
// pure transformation over its inputs: nothing is cached, persisted, or
// mutated, so parallel invocation is trivially safe.
//
// Monthly bucketing is a textual prefix match of the YYYY-MM month string
// against ISO YYYY-MM-DD dates. The zero-padded format makes lexicographic
// prefixing equivalent to calendar bucketing.
package summary

import (
	"sort"
	"strings"
	"time"

	"fjacquet/budget-planner/internal/dateutils"
	"fjacquet/budget-planner/internal/models"

	"github.com/shopspring/decimal"
)

// SortKey selects the field Sort orders by.
type SortKey string

// SortOrder selects ascending or descending order.
type SortOrder string

const (
	SortByDate     SortKey = "date"
	SortByAmount   SortKey = "amount"
	SortByCategory SortKey = "category"

	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Monthly computes the income/expense/net rollup for one YYYY-MM month.
// Transactions outside the month are ignored; no matches yields a zero-valued
// summary with the month echoed back.
func Monthly(transactions []models.Transaction, month string) models.MonthlySummary {
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero

	for _, t := range transactions {
		if !strings.HasPrefix(t.Date, month) {
			continue
		}
		switch t.Type {
		case models.TypeIncome:
			totalIncome = totalIncome.Add(t.Amount)
		case models.TypeExpense:
			totalExpenses = totalExpenses.Add(t.Amount)
		}
	}

	return models.MonthlySummary{
		Month:         month,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetAmount:     totalIncome.Sub(totalExpenses),
	}
}

// Categories computes per-category spend-vs-budget summaries for one month.
// Expense transactions are bucketed by the month prefix; budgets match on
// exact month equality. The result covers the union of spent and budgeted
// categories: a budgeted category with no spend appears with TotalSpent 0,
// and a spent category with no budget appears with BudgetLimit 0. Duplicate
// budgets for the same category keep the last one in input order. Output
// order is first-seen: transaction categories first, then budget-only ones.
func Categories(transactions []models.Transaction, budgets []models.Budget, month string) []models.CategorySummary {
	type spend struct {
		total decimal.Decimal
		count int
	}

	spent := make(map[string]spend)
	var order []string

	for _, t := range transactions {
		if t.Type != models.TypeExpense || !strings.HasPrefix(t.Date, month) {
			continue
		}
		s, seen := spent[t.Category]
		if !seen {
			s.total = decimal.Zero
			order = append(order, t.Category)
		}
		s.total = s.total.Add(t.Amount)
		s.count++
		spent[t.Category] = s
	}

	// Last budget wins when a category appears twice for the same month.
	limits := make(map[string]decimal.Decimal)
	for _, b := range budgets {
		if b.Month != month {
			continue
		}
		if _, seen := limits[b.Category]; !seen {
			if _, hasSpend := spent[b.Category]; !hasSpend {
				order = append(order, b.Category)
			}
		}
		limits[b.Category] = b.MonthlyLimit
	}

	summaries := make([]models.CategorySummary, 0, len(order))
	for _, category := range order {
		s := spent[category]
		limit, ok := limits[category]
		if !ok {
			limit = decimal.Zero
		}
		if s.count == 0 {
			s.total = decimal.Zero
		}
		summaries = append(summaries, models.CategorySummary{
			Category:         category,
			TotalSpent:       s.total,
			BudgetLimit:      limit,
			TransactionCount: s.count,
		})
	}
	return summaries
}

// PastMonths returns count YYYY-MM strings: the current calendar month and
// its count-1 predecessors, most recent first. Year boundaries roll over
// correctly. A non-positive count yields an empty slice.
func PastMonths(count int) []string {
	return pastMonthsFrom(time.Now(), count)
}

func pastMonthsFrom(now time.Time, count int) []string {
	if count <= 0 {
		return nil
	}
	months := make([]string, 0, count)
	for i := 0; i < count; i++ {
		// time.Date normalizes out-of-range months, so January minus one
		// lands on the previous December.
		m := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		months = append(months, m.Format(dateutils.MonthLayoutISO))
	}
	return months
}

// Sort returns a new slice sorted by the chosen key. Date and category
// compare lexicographically (ISO dates sort chronologically that way),
// amount compares numerically. Order defaults to descending; the sort is
// stable, so equal keys keep their input order. An unknown key leaves the
// input order intact.
func Sort(transactions []models.Transaction, key SortKey, order SortOrder) []models.Transaction {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)

	asc := order == OrderAsc

	sort.SliceStable(sorted, func(i, j int) bool {
		var cmp int
		switch key {
		case SortByDate:
			cmp = strings.Compare(sorted[i].Date, sorted[j].Date)
		case SortByAmount:
			cmp = sorted[i].Amount.Cmp(sorted[j].Amount)
		case SortByCategory:
			cmp = strings.Compare(sorted[i].Category, sorted[j].Category)
		}
		if asc {
			return cmp < 0
		}
		return cmp > 0
	})
	return sorted
}
