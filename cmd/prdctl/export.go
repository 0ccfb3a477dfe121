package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prd-coach-api/internal/application/export"
	"prd-coach-api/internal/domain/entity"
)

var exportCmd = &cobra.Command{
	Use:   "export <draft.yaml>",
	Short: "Render a YAML draft file to Markdown or HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		d, err := export.ReadDraft(f)
		if err != nil {
			return err
		}
		doc, err := export.NewRenderer().Render(d.Idea, d.Sections, d.Drafts)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "markdown", "md":
			_, err = fmt.Fprint(cmd.OutOrStdout(), doc.Markdown)
		case "html":
			_, err = fmt.Fprint(cmd.OutOrStdout(), doc.HTML)
		default:
			return fmt.Errorf("unsupported format %q", format)
		}
		if err != nil {
			return err
		}

		p := doc.Progress
		fmt.Fprintf(cmd.ErrOrStderr(), "%d/%d sections complete (%d%%)\n", p.Completed, p.Total, p.Percent)
		return nil
	},
}

var initDraftCmd = &cobra.Command{
	Use:   "init-draft",
	Short: "Print an empty YAML draft file for the built-in sections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		idea, _ := cmd.Flags().GetString("idea")
		drafts := entity.ProgressState{}
		for _, s := range entity.DefaultSections() {
			drafts[s.ID] = ""
		}
		return export.WriteDraft(cmd.OutOrStdout(), &export.Draft{
			Idea:   entity.IdeaContext{ProductIdea: idea},
			Drafts: drafts,
		})
	},
}

func init() {
	exportCmd.Flags().String("format", "markdown", "output format (markdown, html)")
	initDraftCmd.Flags().String("idea", "My product idea", "product idea to put in the draft")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(initDraftCmd)
}
