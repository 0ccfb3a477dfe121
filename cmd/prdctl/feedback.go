package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prd-coach-api/internal/application/export"
	"prd-coach-api/internal/application/feedback"
	"prd-coach-api/internal/domain/entity"
	"prd-coach-api/internal/infrastructure/llm"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback [file]",
	Short: "Get AI feedback on a PRD section draft",
	Long: `Feedback sends one section draft to the model and prints the feedback.

The draft comes from a file or stdin. Alternatively --draft points at a
YAML draft file and --section picks the section id inside it; the idea
context is then taken from the draft file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := feedbackRequest(cmd, args)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		client, err := llm.NewClient(&cfg.LLM)
		if err != nil {
			return err
		}

		text, err := feedback.NewRelay(client, cfg.LLM.FeedbackTemperature).Generate(cmd.Context(), req)
		if err != nil {
			return err
		}

		if points, _ := cmd.Flags().GetBool("points"); points {
			return printStructured(cmd, map[string]any{"points": feedback.Points(text)})
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	},
}

func feedbackRequest(cmd *cobra.Command, args []string) (feedback.Request, error) {
	section, _ := cmd.Flags().GetString("section")
	draftPath, _ := cmd.Flags().GetString("draft")

	if draftPath != "" {
		f, err := os.Open(draftPath)
		if err != nil {
			return feedback.Request{}, err
		}
		defer f.Close()

		d, err := export.ReadDraft(f)
		if err != nil {
			return feedback.Request{}, err
		}
		sections := d.Sections
		if len(sections) == 0 {
			sections = entity.DefaultSections()
		}
		for _, s := range sections {
			if s.ID == section {
				return feedback.Request{Section: s.Title, Content: d.Drafts.Draft(s.ID), Idea: d.Idea}, nil
			}
		}
		return feedback.Request{}, fmt.Errorf("section %q not found in %s", section, draftPath)
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	content, err := readInput(cmd, path)
	if err != nil {
		return feedback.Request{}, err
	}

	idea := entity.IdeaContext{}
	idea.ProductIdea, _ = cmd.Flags().GetString("idea")
	idea.Persona, _ = cmd.Flags().GetString("persona")
	idea.Company, _ = cmd.Flags().GetString("company")
	idea.JobDescription, _ = cmd.Flags().GetString("role")
	purpose, _ := cmd.Flags().GetString("purpose")
	idea.Purpose = entity.Purpose(purpose)
	if purpose != "" && !idea.Purpose.Valid() {
		return feedback.Request{}, fmt.Errorf("unknown purpose %q (want recruiting or deliverable)", purpose)
	}

	return feedback.Request{Section: section, Content: content, Idea: idea}, nil
}

func init() {
	feedbackCmd.Flags().String("section", "Problem Statement", "section title, or section id when --draft is set")
	feedbackCmd.Flags().String("draft", "", "YAML draft file to take the section and idea context from")
	feedbackCmd.Flags().String("idea", "", "product idea")
	feedbackCmd.Flags().String("persona", "", "target persona")
	feedbackCmd.Flags().String("company", "", "company")
	feedbackCmd.Flags().String("role", "", "role / job description")
	feedbackCmd.Flags().String("purpose", "", "recruiting or deliverable")
	feedbackCmd.Flags().Bool("points", false, "print feedback split into quoted points")

	rootCmd.AddCommand(feedbackCmd)
}
