package feedback

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prd-coach-api/internal/domain/entity"
	"prd-coach-api/internal/infrastructure/llm"
	apperrors "prd-coach-api/pkg/errors"
)

type fakeCompleter struct {
	mu    sync.Mutex
	reply string
	err   error
	reqs  []llm.CompletionRequest
}

func (f *fakeCompleter) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	return f.reply, f.err
}

func TestGenerateReturnsReplyUnmodified(t *testing.T) {
	reply := "\"Users want X\" - say which users.\n\n\"because Y\" - back it with data."
	fc := &fakeCompleter{reply: reply}
	relay := NewRelay(fc, -1)

	got, err := relay.Generate(context.Background(), Request{
		Section: "Problem Statement",
		Content: "Users want X because Y",
		Idea:    entity.IdeaContext{ProductIdea: "Inventory sync"},
	})
	require.NoError(t, err)
	assert.Equal(t, reply, got)

	require.Len(t, fc.reqs, 1)
	req := fc.reqs[0]
	assert.Equal(t, SystemPrompt, req.System)
	require.NotNil(t, req.Temperature)
	assert.InDelta(t, DefaultTemperature, *req.Temperature, 1e-9)
	assert.Nil(t, req.MaxCompletionTokens)
}

func TestGenerateHonoursZeroTemperature(t *testing.T) {
	fc := &fakeCompleter{reply: "ok"}
	_, err := NewRelay(fc, 0).Generate(context.Background(), Request{Section: "Goals", Content: "x"})
	require.NoError(t, err)

	require.Len(t, fc.reqs, 1)
	require.NotNil(t, fc.reqs[0].Temperature)
	assert.Zero(t, *fc.reqs[0].Temperature)
}

func TestGenerateFallbackOnEmptyReply(t *testing.T) {
	relay := NewRelay(&fakeCompleter{reply: "  "}, 0.5)
	got, err := relay.Generate(context.Background(), Request{Section: "Goals", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, FallbackText, got)
}

func TestGenerateForwardsEmptyContent(t *testing.T) {
	fc := &fakeCompleter{reply: "ok"}
	_, err := NewRelay(fc, 0).Generate(context.Background(), Request{Section: "Goals"})
	require.NoError(t, err)
	assert.Len(t, fc.reqs, 1)
}

func TestGeneratePropagatesUpstreamErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want *apperrors.AppError
	}{
		{"rate limited", apperrors.ErrRateLimited.WithError(&llm.UpstreamError{StatusCode: 429}), apperrors.ErrRateLimited},
		{"quota", apperrors.ErrQuotaExhausted.WithError(&llm.UpstreamError{StatusCode: 402}), apperrors.ErrQuotaExhausted},
		{"upstream", apperrors.ErrUpstream.WithError(&llm.UpstreamError{StatusCode: 500, Body: "boom"}), apperrors.ErrUpstream},
		{"plain error", errors.New("dial tcp: refused"), apperrors.ErrUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRelay(&fakeCompleter{err: tt.err}, 0).Generate(context.Background(), Request{Section: "s", Content: "c"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestUserPromptIncludesContentAndContext(t *testing.T) {
	prompt, err := UserPrompt(context.Background(), Request{
		Section: "Problem Statement",
		Content: "Users want X because Y",
		Idea: entity.IdeaContext{
			ProductIdea:    "Study partner matching",
			Persona:        "College students",
			Company:        "EdTech startup",
			JobDescription: "APM at Meta",
			CustomOutline:  "1. Problem\n2. Goals",
			Purpose:        entity.PurposeRecruiting,
		},
	})
	require.NoError(t, err)

	for _, want := range []string{
		"Users want X because Y",
		"Product Idea: Study partner matching",
		"Target Persona: College students",
		"Company: EdTech startup",
		"Role: APM at Meta",
		"Custom PRD Structure: 1. Problem\n2. Goals",
		"Purpose: recruiting",
		"PRD Section: Problem Statement",
		"Separate each feedback point with a blank line.",
	} {
		assert.Contains(t, prompt, want)
	}
}

func TestUserPromptOmitsEmptyOptionalFields(t *testing.T) {
	prompt, err := UserPrompt(context.Background(), Request{
		Section: "Goals",
		Content: "Users want X because Y",
		Idea:    entity.IdeaContext{ProductIdea: "Study partner matching", Persona: "   "},
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Product Idea: Study partner matching")
	for _, label := range []string{"Target Persona:", "Company:", "Role:", "Custom PRD Structure:", "Purpose:"} {
		assert.NotContains(t, prompt, label)
	}
	for _, line := range strings.Split(prompt, "\n") {
		assert.False(t, strings.HasSuffix(strings.TrimSpace(line), ":") && line != "User's Response:" && line != "Example format:",
			"unexpected empty labelled line %q", line)
	}
}

func TestUserPromptKeepsUnknownPurpose(t *testing.T) {
	prompt, err := UserPrompt(context.Background(), Request{
		Section: "Goals",
		Content: "x",
		Idea:    entity.IdeaContext{ProductIdea: "Study partner matching", Purpose: "side-project"},
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Purpose: side-project\n")
}

func TestUserPromptRawContext(t *testing.T) {
	prompt, err := UserPrompt(context.Background(), Request{
		Section: "Scope",
		Content: "V1 ships Shopify only",
		Idea:    entity.IdeaContext{Raw: "Product Idea: multi-channel inventory"},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(prompt, "Product Idea: multi-channel inventory\n\nPRD Section: Scope"))
	assert.Contains(t, prompt, "V1 ships Shopify only")
}

func TestUserPromptKeepsTemplateSyntaxVerbatim(t *testing.T) {
	prompt, err := UserPrompt(context.Background(), Request{
		Section: "Goals",
		Content: "Reach {{.section}} parity",
		Idea:    entity.IdeaContext{ProductIdea: "{{.content}}"},
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Product Idea: {{.content}}")
	assert.Contains(t, prompt, "User's Response:\nReach {{.section}} parity")
}

func TestParagraphsAndQuotes(t *testing.T) {
	text := "\"Users want X\" - name the users.\n\n  \n\"because Y\" - cite evidence.\r\n\r\nGreat start overall."
	paras := Paragraphs(text)
	require.Len(t, paras, 3)
	assert.Equal(t, "Users want X", QuotedText(paras[0]))
	assert.Equal(t, "because Y", QuotedText(paras[1]))
	assert.Empty(t, QuotedText(paras[2]))

	points := Points(text)
	require.Len(t, points, 3)
	assert.Equal(t, "because Y", points[1].Quote)

	assert.Empty(t, Paragraphs("  \n\n "))
}
