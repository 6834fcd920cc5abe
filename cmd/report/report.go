// Package report handles budget progress and trend reports.
package report

import (
	"fmt"
	"os"
	"text/tabwriter"

	"fjacquet/budget-planner/cmd/root"
	"fjacquet/budget-planner/internal/dateutils"
	"fjacquet/budget-planner/internal/summary"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	month  string
	months int
)

// Cmd represents the report command group.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Budget progress and monthly trend reports",
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Per-category spend versus budget for a month",
	Long: `Show spend against budget for every category that either has expenses or
a budget in the month. Budgeted categories with no spend appear with zero
spent; spent categories with no budget appear with a zero limit.`,
	RunE: categoriesFunc,
}

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Monthly summaries for the most recent months",
	RunE:  trendFunc,
}

func init() {
	categoriesCmd.Flags().StringVarP(&month, "month", "m", "", "Month as YYYY-MM (default current)")
	trendCmd.Flags().IntVarP(&months, "months", "n", 6, "How many months back, including the current one")

	Cmd.AddCommand(categoriesCmd)
	Cmd.AddCommand(trendCmd)
}

func categoriesFunc(cmd *cobra.Command, args []string) error {
	m := month
	if m == "" {
		m = dateutils.CurrentMonth()
	}
	if !dateutils.ValidMonth(m) {
		return fmt.Errorf("invalid month %q (want YYYY-MM)", m)
	}

	s, err := root.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	ctx := cmd.Context()
	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return err
	}
	budgets, err := s.ListBudgets(ctx)
	if err != nil {
		return err
	}

	summaries := summary.Categories(transactions, budgets, m)
	if len(summaries) == 0 {
		fmt.Printf("No expenses or budgets for %s\n", m)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tSPENT\tLIMIT\tREMAINING\tCOUNT")
	for _, cs := range summaries {
		remaining := "-"
		if !cs.BudgetLimit.IsZero() {
			remaining = cs.BudgetLimit.Sub(cs.TotalSpent).StringFixed(2)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			cs.Category, cs.TotalSpent.StringFixed(2), cs.BudgetLimit.StringFixed(2), remaining, cs.TransactionCount)
	}
	return w.Flush()
}

func trendFunc(cmd *cobra.Command, args []string) error {
	if months <= 0 {
		return fmt.Errorf("--months must be positive, got %d", months)
	}

	s, err := root.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	transactions, err := s.ListTransactions(cmd.Context())
	if err != nil {
		return err
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSES\tNET")
	for _, m := range summary.PastMonths(months) {
		ms := summary.Monthly(transactions, m)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			ms.Month, ms.TotalIncome.StringFixed(2), ms.TotalExpenses.StringFixed(2), ms.NetAmount.StringFixed(2))
		totalIncome = totalIncome.Add(ms.TotalIncome)
		totalExpenses = totalExpenses.Add(ms.TotalExpenses)
	}
	fmt.Fprintf(w, "TOTAL\t%s\t%s\t%s\n",
		totalIncome.StringFixed(2), totalExpenses.StringFixed(2), totalIncome.Sub(totalExpenses).StringFixed(2))
	return w.Flush()
}
