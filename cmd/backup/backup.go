// Package backup handles bulk export, import, and clear commands.
package backup

import (
	"fmt"
	"os"

	"fjacquet/budget-planner/cmd/root"

	"github.com/spf13/cobra"
)

var (
	exportOutput string
	importInput  string
	clearYes     bool
)

// Cmd represents the backup command group.
var Cmd = &cobra.Command{
	Use:   "backup",
	Short: "Export, import, or clear all stored data",
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all transactions and budgets as a JSON document",
	RunE:  exportFunc,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a JSON document, upserting records by id",
	RunE:  importFunc,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every transaction and budget",
	RunE:  clearFunc,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	importCmd.Flags().StringVarP(&importInput, "input", "i", "", "Input file")
	_ = importCmd.MarkFlagRequired("input")
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm deletion")

	Cmd.AddCommand(exportCmd)
	Cmd.AddCommand(importCmd)
	Cmd.AddCommand(clearCmd)
}

func exportFunc(cmd *cobra.Command, args []string) error {
	s, err := root.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	data, err := s.ExportJSON(cmd.Context())
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	fmt.Printf("Exported to %s\n", exportOutput)
	return nil
}

func importFunc(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(importInput)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	s, err := root.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.ImportJSON(cmd.Context(), data); err != nil {
		return err
	}
	fmt.Printf("Imported %s\n", importInput)
	return nil
}

func clearFunc(cmd *cobra.Command, args []string) error {
	if !clearYes {
		return fmt.Errorf("refusing to clear without --yes")
	}

	s, err := root.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.ClearAll(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("All data cleared")
	return nil
}
