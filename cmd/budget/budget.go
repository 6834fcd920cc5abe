// Package budget handles budget limit commands: set, list, delete.
package budget

import (
	"fmt"
	"os"
	"text/tabwriter"

	"fjacquet/budget-planner/cmd/root"
	"fjacquet/budget-planner/internal/dateutils"
	"fjacquet/budget-planner/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	setCategory string
	setLimit    string
	setMonth    string

	listMonth string
)

// Cmd represents the budget command group.
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage per-category monthly budget limits",
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a category's monthly limit",
	Long: `Set a spending cap for one category in one month. An existing budget for
the same category and month is replaced rather than duplicated.`,
	RunE: setFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List budgets, optionally for one month",
	RunE:  listFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a budget by id",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteFunc,
}

func init() {
	setCmd.Flags().StringVarP(&setCategory, "category", "c", "", "Expense category")
	setCmd.Flags().StringVarP(&setLimit, "limit", "l", "", "Monthly limit (non-negative)")
	setCmd.Flags().StringVarP(&setMonth, "month", "m", "", "Month as YYYY-MM (default current)")
	_ = setCmd.MarkFlagRequired("category")
	_ = setCmd.MarkFlagRequired("limit")

	listCmd.Flags().StringVarP(&listMonth, "month", "m", "", "Only budgets for this YYYY-MM month")

	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(deleteCmd)
}

func setFunc(cmd *cobra.Command, args []string) error {
	limit, err := decimal.NewFromString(setLimit)
	if err != nil {
		return fmt.Errorf("invalid limit %q: %w", setLimit, err)
	}
	if limit.IsNegative() {
		return fmt.Errorf("limit must be non-negative, got %s", limit)
	}

	month := setMonth
	if month == "" {
		month = dateutils.CurrentMonth()
	}
	if !dateutils.ValidMonth(month) {
		return fmt.Errorf("invalid month %q (want YYYY-MM)", month)
	}

	s, err := root.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	ctx := cmd.Context()
	now := dateutils.NowISO()

	// Replace an existing budget for the same (category, month) so the pair
	// stays unique; the aggregation layer assumes at most one.
	existing, err := s.BudgetsByMonth(ctx, month)
	if err != nil {
		return err
	}
	for _, b := range existing {
		if b.Category == setCategory {
			b.MonthlyLimit = limit
			b.UpdatedAt = now
			if err := s.UpdateBudget(ctx, b); err != nil {
				return err
			}
			fmt.Printf("Updated %s budget for %s to %s\n", b.Category, b.Month, limit.StringFixed(2))
			return nil
		}
	}

	b := models.Budget{
		ID:           uuid.NewString(),
		Category:     setCategory,
		MonthlyLimit: limit,
		Month:        month,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.AddBudget(ctx, b); err != nil {
		return err
	}
	fmt.Printf("Set %s budget for %s to %s, id %s\n", b.Category, b.Month, limit.StringFixed(2), b.ID)
	return nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	s, err := root.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	var budgets []models.Budget
	if listMonth != "" {
		if !dateutils.ValidMonth(listMonth) {
			return fmt.Errorf("invalid month %q (want YYYY-MM)", listMonth)
		}
		budgets, err = s.BudgetsByMonth(cmd.Context(), listMonth)
	} else {
		budgets, err = s.ListBudgets(cmd.Context())
	}
	if err != nil {
		return err
	}

	if len(budgets) == 0 {
		fmt.Println("No budgets")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tCATEGORY\tLIMIT\tID")
	for _, b := range budgets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.Month, b.Category, b.MonthlyLimit.StringFixed(2), b.ID)
	}
	return w.Flush()
}

func deleteFunc(cmd *cobra.Command, args []string) error {
	s, err := root.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.DeleteBudget(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted budget %s\n", args[0])
	return nil
}
