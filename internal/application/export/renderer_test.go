package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prd-coach-api/internal/domain/entity"
)

func TestRenderDefaultSectionsInOrder(t *testing.T) {
	idea := entity.IdeaContext{ProductIdea: "Study partner matching", Persona: "College students", Purpose: entity.PurposeDeliverable}
	progress := entity.ProgressState{
		"problem": "Students struggle to find **study partners**.",
		"goals":   "   ",
	}

	doc, err := NewRenderer().Render(idea, nil, progress)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc.Markdown, "# Study partner matching\n"))
	assert.Contains(t, doc.Markdown, "**Target Persona:** College students")

	last := -1
	for _, s := range entity.DefaultSections() {
		idx := strings.Index(doc.Markdown, "## "+s.Title)
		require.GreaterOrEqual(t, idx, 0, "missing heading %q", s.Title)
		assert.Greater(t, idx, last, "heading %q out of order", s.Title)
		last = idx
	}

	assert.Contains(t, doc.Markdown, "Students struggle to find **study partners**.")
	assert.Contains(t, doc.HTML, "<strong>study partners</strong>")
	assert.Contains(t, doc.HTML, "<h1>Study partner matching</h1>")

	assert.Equal(t, 1, doc.Progress.Completed)
	assert.Equal(t, 5, doc.Progress.Total)
	assert.Equal(t, 20, doc.Progress.Percent)
	assert.Contains(t, doc.Progress.Missing, "goals")
}

func TestRenderCustomSections(t *testing.T) {
	sections := []entity.SectionDescriptor{
		{ID: "overview", Title: "Overview", Description: "What is it"},
		{ID: "risks", Title: "Risks", Description: "What could go wrong"},
	}
	doc, err := NewRenderer().Render(entity.IdeaContext{ProductIdea: "X"}, sections, entity.ProgressState{"risks": "Churn"})
	require.NoError(t, err)

	assert.Contains(t, doc.Markdown, "## Overview\n\n_Not yet written: What is it_")
	assert.Contains(t, doc.Markdown, "## Risks\n\nChurn")
	assert.Equal(t, []string{"overview"}, doc.Progress.Missing)
	assert.Equal(t, 50, doc.Progress.Percent)
}

func TestRenderEscapesRawHTML(t *testing.T) {
	sections := []entity.SectionDescriptor{{ID: "a", Title: "A"}}
	doc, err := NewRenderer().Render(entity.IdeaContext{ProductIdea: "X"}, sections, entity.ProgressState{"a": "<script>alert(1)</script>"})
	require.NoError(t, err)
	assert.NotContains(t, doc.HTML, "<script>")
}

func TestMarkdownRawContextAndUntitled(t *testing.T) {
	sections := []entity.SectionDescriptor{{ID: "a", Title: "A"}}

	md := Markdown(entity.IdeaContext{Raw: "Inventory sync\nfor Shopify sellers"}, sections, nil)
	assert.True(t, strings.HasPrefix(md, "# Inventory sync\n\n## A"))

	md = Markdown(entity.IdeaContext{}, sections, nil)
	assert.True(t, strings.HasPrefix(md, "# Untitled Product\n"))
}
