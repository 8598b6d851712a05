package main

import (
	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var rulesJSON bool

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the ATS scoring rules",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if rulesJSON {
			return writeJSON(cmd.OutOrStdout(), ats.Rules())
		}
		observability.NewPrinter(cmd.OutOrStdout()).PrintRules(ats.Rules())
		return nil
	},
}

func init() {
	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false, "Print rules as JSON")
	rootCmd.AddCommand(rulesCmd)
}
