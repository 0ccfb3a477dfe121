package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prd-coach-api/internal/domain/entity"
	apperrors "prd-coach-api/pkg/errors"
)

const draftYAML = `
idea:
  productIdea: Inventory sync for Shopify sellers
  persona: Small merchants
  purpose: deliverable
sections:
  - title: Problem
  - id: scope
    title: Scope
drafts:
  problem: Sellers oversell across channels.
`

func TestReadDraft(t *testing.T) {
	d, err := ReadDraft(strings.NewReader(draftYAML))
	require.NoError(t, err)

	assert.Equal(t, "Inventory sync for Shopify sellers", d.Idea.ProductIdea)
	assert.Equal(t, entity.PurposeDeliverable, d.Idea.Purpose)
	assert.Equal(t, []string{"problem", "scope"}, entity.SectionIDs(d.Sections))
	assert.True(t, d.Drafts.IsComplete("problem"))
}

func TestReadDraftRejectsInvalid(t *testing.T) {
	for name, in := range map[string]string{
		"empty":         "",
		"no idea":       "drafts:\n  problem: x\n",
		"unknown field": "idea:\n  productIdea: x\nnotes: y\n",
		"not yaml":      "idea: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ReadDraft(strings.NewReader(in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidParam))
		})
	}
}

func TestWriteDraftRoundTrip(t *testing.T) {
	in := &Draft{
		Idea:   entity.IdeaContext{ProductIdea: "Study partner matching"},
		Drafts: entity.ProgressState{"goals": "Weekly active pairs"},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteDraft(&buf, in))

	out, err := ReadDraft(&buf)
	require.NoError(t, err)
	assert.Equal(t, in.Idea.ProductIdea, out.Idea.ProductIdea)
	assert.Equal(t, in.Drafts, out.Drafts)
}
