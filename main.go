package main

import (
	"fmt"
	"os"

	"fjacquet/budget-planner/cmd/backup"
	"fjacquet/budget-planner/cmd/budget"
	"fjacquet/budget-planner/cmd/report"
	"fjacquet/budget-planner/cmd/root"
	"fjacquet/budget-planner/cmd/seedcmd"
	"fjacquet/budget-planner/cmd/suggest"
	"fjacquet/budget-planner/cmd/summarycmd"
	"fjacquet/budget-planner/cmd/tx"

	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables silently before any configuration is read;
	// a missing .env file is the normal case.
	_ = godotenv.Load()

	root.Cmd.AddCommand(suggest.Cmd)
	root.Cmd.AddCommand(tx.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(summarycmd.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(backup.Cmd)
	root.Cmd.AddCommand(seedcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
