// Package tx handles transaction commands: add, list, delete.
package tx

import (
	"fmt"
	"os"
	"text/tabwriter"

	"fjacquet/budget-planner/cmd/root"
	"fjacquet/budget-planner/internal/dateutils"
	"fjacquet/budget-planner/internal/export"
	"fjacquet/budget-planner/internal/logging"
	"fjacquet/budget-planner/internal/models"
	"fjacquet/budget-planner/internal/summary"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	addType        string
	addCategory    string
	addAmount      string
	addDescription string
	addDate        string
	addTags        []string

	listSortBy string
	listOrder  string
	listMonth  string
	listOutput string
)

// Cmd represents the tx command group.
var Cmd = &cobra.Command{
	Use:   "tx",
	Short: "Record and inspect transactions",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction",
	Long: `Add an income or expense transaction. When --category is omitted the
classifier suggests one from the description; unmatched descriptions fall
back to the Other category.`,
	RunE: addFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, sorted and optionally filtered by month",
	RunE:  listFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a transaction by id",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteFunc,
}

func init() {
	addCmd.Flags().StringVarP(&addType, "type", "t", "expense", "Transaction type (income or expense)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category (suggested from description when omitted)")
	addCmd.Flags().StringVarP(&addAmount, "amount", "a", "", "Amount (non-negative)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Free-text description")
	addCmd.Flags().StringVar(&addDate, "date", "", "Date as YYYY-MM-DD (default today)")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil, "Tag (repeatable; duplicates are dropped)")
	_ = addCmd.MarkFlagRequired("amount")

	listCmd.Flags().StringVar(&listSortBy, "sort-by", "date", "Sort key: date, amount, or category")
	listCmd.Flags().StringVar(&listOrder, "order", "desc", "Sort order: asc or desc")
	listCmd.Flags().StringVarP(&listMonth, "month", "m", "", "Only transactions in this YYYY-MM month")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "", "Write CSV to this file instead of printing")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(deleteCmd)
}

func addFunc(cmd *cobra.Command, args []string) error {
	txType := models.TransactionType(addType)
	if !txType.Valid() {
		return fmt.Errorf("unknown transaction type %q (want income or expense)", addType)
	}

	amount, err := decimal.NewFromString(addAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", addAmount, err)
	}
	if amount.IsNegative() || amount.IsZero() {
		return fmt.Errorf("amount must be positive, got %s", amount)
	}

	date := addDate
	if date == "" {
		date = dateutils.NowISO()[:len(dateutils.DateLayoutISO)]
	}
	if !dateutils.ValidDate(date) {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
	}

	category := addCategory
	if category == "" {
		c, err := root.NewClassifier()
		if err != nil {
			return err
		}
		suggested, ok := c.SuggestCategory(addDescription, txType)
		if !ok {
			suggested = models.CategoryOther
		}
		category = suggested
		root.Log.WithField(logging.FieldCategory, category).Info("Category suggested from description")
	}

	now := dateutils.NowISO()
	t := models.Transaction{
		ID:          uuid.NewString(),
		Type:        txType,
		Category:    category,
		Amount:      amount,
		Description: addDescription,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, tag := range addTags {
		t.AddTag(tag)
	}

	s, err := root.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.AddTransaction(cmd.Context(), t); err != nil {
		return err
	}

	fmt.Printf("Added %s %s %s (%s) on %s, id %s\n", t.Type, t.Amount.StringFixed(2), t.Category, t.Description, t.Date, t.ID)
	return nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	key := summary.SortKey(listSortBy)
	switch key {
	case summary.SortByDate, summary.SortByAmount, summary.SortByCategory:
	default:
		return fmt.Errorf("unknown sort key %q (want date, amount, or category)", listSortBy)
	}
	order := summary.SortOrder(listOrder)
	switch order {
	case summary.OrderAsc, summary.OrderDesc:
	default:
		return fmt.Errorf("unknown sort order %q (want asc or desc)", listOrder)
	}

	s, err := root.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	var transactions []models.Transaction
	if listMonth != "" {
		if !dateutils.ValidMonth(listMonth) {
			return fmt.Errorf("invalid month %q (want YYYY-MM)", listMonth)
		}
		transactions, err = s.TransactionsByMonth(cmd.Context(), listMonth)
	} else {
		transactions, err = s.ListTransactions(cmd.Context())
	}
	if err != nil {
		return err
	}

	sorted := summary.Sort(transactions, key, order)

	if listOutput != "" {
		writer := export.NewWriter(root.Cfg.Delimiter(), root.Log)
		return writer.WriteFile(listOutput, sorted)
	}

	if len(sorted) == 0 {
		fmt.Println("No transactions")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTYPE\tCATEGORY\tAMOUNT\tDESCRIPTION\tID")
	for _, t := range sorted {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.Date, t.Type, t.Category, t.Amount.StringFixed(2), t.Description, t.ID)
	}
	return w.Flush()
}

func deleteFunc(cmd *cobra.Command, args []string) error {
	s, err := root.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.DeleteTransaction(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted transaction %s\n", args[0])
	return nil
}
