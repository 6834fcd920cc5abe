// Package summarycmd handles the monthly summary command.
package summarycmd

import (
	"fmt"

	"fjacquet/budget-planner/cmd/root"
	"fjacquet/budget-planner/internal/dateutils"
	"fjacquet/budget-planner/internal/summary"

	"github.com/spf13/cobra"
)

var month string

// Cmd represents the summary command.
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show income, expenses, and net for a month",
	RunE:  summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&month, "month", "m", "", "Month as YYYY-MM (default current)")
}

func summaryFunc(cmd *cobra.Command, args []string) error {
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

	transactions, err := s.ListTransactions(cmd.Context())
	if err != nil {
		return err
	}

	ms := summary.Monthly(transactions, m)
	fmt.Printf("Month:    %s\n", ms.Month)
	fmt.Printf("Income:   %s\n", ms.TotalIncome.StringFixed(2))
	fmt.Printf("Expenses: %s\n", ms.TotalExpenses.StringFixed(2))
	fmt.Printf("Net:      %s\n", ms.NetAmount.StringFixed(2))
	return nil
}
