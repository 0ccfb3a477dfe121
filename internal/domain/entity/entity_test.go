package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Problem Statement", "problem-statement"},
		{"Goals & Success Metrics", "goals-success-metrics"},
		{"  User Stories  ", "user-stories"},
		{"V1 -- Scope/Timeline", "v1-scope-timeline"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestNormalizeSectionIDs(t *testing.T) {
	t.Run("valid list is untouched", func(t *testing.T) {
		in := []SectionDescriptor{{ID: "overview", Title: "Overview"}, {ID: "risks", Title: "Risks"}}
		out := NormalizeSectionIDs(in)
		assert.Equal(t, []string{"overview", "risks"}, SectionIDs(out))
	})

	t.Run("missing ids derived from title", func(t *testing.T) {
		out := NormalizeSectionIDs([]SectionDescriptor{{Title: "Open Questions"}})
		assert.Equal(t, "open-questions", out[0].ID)
	})

	t.Run("duplicates get suffixes", func(t *testing.T) {
		out := NormalizeSectionIDs([]SectionDescriptor{
			{ID: "a"}, {ID: "a"}, {ID: "a-2"}, {ID: "a"},
		})
		ids := SectionIDs(out)
		assert.Equal(t, "a", ids[0])
		assert.Equal(t, "a-2", ids[1])
		assert.Len(t, uniq(ids), 4)
	})
}

func uniq(ids []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

func TestDefaultSections(t *testing.T) {
	sections := DefaultSections()
	require.Len(t, sections, 5)
	assert.Equal(t, []string{"problem", "goals", "user-stories", "requirements", "scope"}, SectionIDs(sections))
	assert.Len(t, uniq(SectionIDs(sections)), len(sections))
	for _, s := range sections {
		assert.NotEmpty(t, s.Title, s.ID)
		assert.NotEmpty(t, s.Example, s.ID)
		assert.NotEmpty(t, s.Links, s.ID)
	}

	// 返回副本，修改不影响内置列表
	sections[0].Links[0].Title = "changed"
	assert.NotEqual(t, "changed", DefaultSections()[0].Links[0].Title)
}

func TestIdeaContextJSON(t *testing.T) {
	t.Run("object form", func(t *testing.T) {
		var c IdeaContext
		require.NoError(t, json.Unmarshal([]byte(`{"productIdea":"Study buddy app","persona":"Students","purpose":"recruiting"}`), &c))
		assert.Equal(t, "Study buddy app", c.ProductIdea)
		assert.Equal(t, "Students", c.Persona)
		assert.Equal(t, PurposeRecruiting, c.Purpose)
		assert.False(t, c.IsRaw())
	})

	t.Run("string form", func(t *testing.T) {
		var c IdeaContext
		require.NoError(t, json.Unmarshal([]byte(`"Product Idea: inventory sync"`), &c))
		assert.True(t, c.IsRaw())
		assert.Equal(t, "Product Idea: inventory sync", c.Raw)

		out, err := json.Marshal(c)
		require.NoError(t, err)
		assert.JSONEq(t, `"Product Idea: inventory sync"`, string(out))
	})

	t.Run("null form", func(t *testing.T) {
		var c IdeaContext
		require.NoError(t, json.Unmarshal([]byte(`null`), &c))
		assert.Equal(t, IdeaContext{}, c)
	})

	t.Run("wrong type", func(t *testing.T) {
		var c IdeaContext
		assert.Error(t, json.Unmarshal([]byte(`42`), &c))
	})
}

func TestPurpose(t *testing.T) {
	assert.True(t, PurposeRecruiting.Valid())
	assert.True(t, PurposeDeliverable.Valid())
	assert.False(t, Purpose("side-project").Valid())
	assert.Empty(t, Purpose("").Describe())
	assert.Empty(t, Purpose("  ").Describe())
	assert.Equal(t, "side-project", Purpose(" side-project ").Describe())
}

func TestProgressState(t *testing.T) {
	sections := DefaultSections()
	p := ProgressState{
		"problem":      "Inventory drift costs SMBs revenue",
		"goals":        "   \n",
		"requirements": "Sync in under 30s",
		"unknown":      "ignored",
	}

	assert.True(t, p.IsComplete("problem"))
	assert.False(t, p.IsComplete("goals"))
	assert.False(t, p.IsComplete("scope"))

	sum := p.Summarize(sections)
	assert.Equal(t, 2, sum.Completed)
	assert.Equal(t, 5, sum.Total)
	assert.Equal(t, 40, sum.Percent)
	assert.Equal(t, []string{"goals", "user-stories", "scope"}, sum.Missing)

	empty := ProgressState(nil).Summarize(nil)
	assert.Equal(t, 0, empty.Percent)
	assert.Empty(t, empty.Missing)
}
