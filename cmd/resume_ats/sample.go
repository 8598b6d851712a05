package main

import (
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/spf13/cobra"
)

var sampleEmpty bool

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the sample resume document as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if sampleEmpty {
			return writeJSON(cmd.OutOrStdout(), resume.Initial())
		}
		return writeJSON(cmd.OutOrStdout(), resume.Sample())
	},
}

func init() {
	sampleCmd.Flags().BoolVar(&sampleEmpty, "empty", false, "Print the empty starting document instead")
	rootCmd.AddCommand(sampleCmd)
}
