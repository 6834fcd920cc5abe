// Package classifier suggests taxonomy categories for free-text transaction
// descriptions by keyword matching against static, type-specific tables.
//
// Two operations exist and they intentionally disagree on ambiguous input:
// SuggestCategory is pure substring matching in priority order, while
// RankCategories additionally rewards whole-word matches. A short keyword
// embedded in a longer token ("gas" inside "Vegas") satisfies the former but
// earns only the lower substring score in the latter.
package classifier

import (
	"regexp"
	"sort"
	"strings"

	"fjacquet/budget-planner/internal/logging"
	"fjacquet/budget-planner/internal/models"
)

// CategoryScore is one ranked candidate from RankCategories.
type CategoryScore struct {
	Category string
	Score    int
}

// Classifier holds the immutable keyword tables and the per-keyword
// whole-word patterns, compiled once at construction. It is safe for
// concurrent use; no method mutates state.
type Classifier struct {
	expense []models.CategoryConfig
	income  []models.CategoryConfig
	wordRe  map[string]*regexp.Regexp
	logger  logging.Logger
}

// New creates a Classifier over the built-in keyword tables.
func New(logger logging.Logger) *Classifier {
	return NewWithTables(DefaultTables(), logger)
}

// NewWithTables creates a Classifier over the given tables, preserving their
// declaration order. Keywords are matched case-insensitively regardless of
// how the tables spell them.
func NewWithTables(tables models.KeywordTables, logger logging.Logger) *Classifier {
	c := &Classifier{
		expense: tables.Expense,
		income:  tables.Income,
		wordRe:  make(map[string]*regexp.Regexp),
		logger:  logger,
	}
	for _, table := range [][]models.CategoryConfig{c.expense, c.income} {
		for _, cat := range table {
			for _, kw := range cat.Keywords {
				kw = strings.ToLower(kw)
				if _, ok := c.wordRe[kw]; ok {
					continue
				}
				c.wordRe[kw] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
			}
		}
	}
	return c
}

// table returns the keyword table for the given transaction type.
func (c *Classifier) table(txType models.TransactionType) []models.CategoryConfig {
	if txType == models.TypeIncome {
		return c.income
	}
	return c.expense
}

// SuggestCategory returns the first category whose keyword list contains a
// case-insensitive substring of the description, scanning categories and
// keywords in table order. The boolean is false when the description is
// empty or whitespace-only, or when nothing matches.
func (c *Classifier) SuggestCategory(description string, txType models.TransactionType) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(description))
	if normalized == "" {
		return "", false
	}

	for _, cat := range c.table(txType) {
		for _, keyword := range cat.Keywords {
			if strings.Contains(normalized, strings.ToLower(keyword)) {
				c.logger.WithFields(
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: cat.Name},
				).Debug("Description matched keyword")
				return cat.Name, true
			}
		}
	}

	return "", false
}

// RankCategories scores every category against the description and returns
// the non-zero candidates sorted by score descending (ties keep table order).
// Each keyword found as a case-insensitive substring of the trimmed,
// lowercased description scores 1; if the same keyword also matches as a
// whole word against the original description it scores 2 instead.
func (c *Classifier) RankCategories(description string, txType models.TransactionType) []CategoryScore {
	normalized := strings.ToLower(strings.TrimSpace(description))
	if normalized == "" {
		return nil
	}

	var ranked []CategoryScore
	for _, cat := range c.table(txType) {
		score := 0
		for _, keyword := range cat.Keywords {
			kw := strings.ToLower(keyword)
			if !strings.Contains(normalized, kw) {
				continue
			}
			if re, ok := c.wordRe[kw]; ok && re.MatchString(description) {
				score += 2
			} else {
				score++
			}
		}
		if score > 0 {
			ranked = append(ranked, CategoryScore{Category: cat.Name, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
