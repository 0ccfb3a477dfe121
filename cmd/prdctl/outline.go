package main

import (
	"github.com/spf13/cobra"

	"prd-coach-api/internal/application/outline"
	"prd-coach-api/internal/infrastructure/llm"
)

var outlineCmd = &cobra.Command{
	Use:   "outline [file]",
	Short: "Parse a custom outline into PRD sections",
	Long: `Outline reads a free-form PRD outline (from a file or stdin) and asks the
model to restructure it into section descriptors. An empty result means
either the outline was blank or the reply could not be parsed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		client, err := llm.NewClient(&cfg.LLM)
		if err != nil {
			return err
		}

		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		text, err := readInput(cmd, path)
		if err != nil {
			return err
		}

		sections := outline.NewParser(client, cfg.LLM.OutlineMaxTokens).Parse(cmd.Context(), text)
		return printStructured(cmd, map[string]any{"sections": sections})
	},
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}
