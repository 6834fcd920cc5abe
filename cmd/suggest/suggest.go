// Package suggest handles the category suggestion command.
package suggest

import (
	"fmt"

	"fjacquet/budget-planner/cmd/root"
	"fjacquet/budget-planner/internal/models"

	"github.com/spf13/cobra"
)

var (
	description string
	txType      string
	ranked      bool
)

// Cmd represents the suggest command.
var Cmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a category for a transaction description",
	Long: `Suggest a taxonomy category for a free-text transaction description by
keyword matching. By default the single highest-priority match is printed;
with --ranked every candidate category is listed with its match score.`,
	RunE: suggestFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to classify")
	Cmd.Flags().StringVarP(&txType, "type", "t", "expense", "Transaction type (income or expense)")
	Cmd.Flags().BoolVarP(&ranked, "ranked", "r", false, "Show all candidate categories with scores")
	_ = Cmd.MarkFlagRequired("description")
}

func suggestFunc(cmd *cobra.Command, args []string) error {
	t := models.TransactionType(txType)
	if !t.Valid() {
		return fmt.Errorf("unknown transaction type %q (want income or expense)", txType)
	}

	c, err := root.NewClassifier()
	if err != nil {
		return err
	}

	if ranked {
		candidates := c.RankCategories(description, t)
		if len(candidates) == 0 {
			fmt.Println("No category suggestions")
			return nil
		}
		for _, cs := range candidates {
			fmt.Printf("%-16s %d\n", cs.Category, cs.Score)
		}
		return nil
	}

	category, ok := c.SuggestCategory(description, t)
	if !ok {
		fmt.Println("No category suggestion")
		return nil
	}
	fmt.Println(category)
	return nil
}
