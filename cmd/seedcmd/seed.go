// Package seedcmd handles the sample data command.
package seedcmd

import (
	"fmt"

	"fjacquet/budget-planner/cmd/root"
	"fjacquet/budget-planner/internal/seed"

	"github.com/spf13/cobra"
)

var yes bool

// Cmd represents the seed command.
var Cmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all data with a sample dataset",
	RunE:  seedFunc,
}

func init() {
	Cmd.Flags().BoolVar(&yes, "yes", false, "Confirm replacing existing data")
}

func seedFunc(cmd *cobra.Command, args []string) error {
	if !yes {
		return fmt.Errorf("seeding clears existing data; re-run with --yes")
	}

	s, err := root.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := seed.Load(cmd.Context(), s, root.Log); err != nil {
		return err
	}
	fmt.Println("Sample data loaded")
	return nil
}
