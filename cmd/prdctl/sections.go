package main

import (
	"github.com/spf13/cobra"

	"prd-coach-api/internal/domain/entity"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Print the built-in PRD sections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printStructured(cmd, map[string]any{"sections": entity.DefaultSections()})
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}
