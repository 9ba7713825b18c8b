package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel stands in for the googleai binding so extraction behavior can be
// exercised without the network.
type fakeModel struct {
	resp *llms.ContentResponse
	err  error
}

func (f fakeModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	return f.resp, f.err
}

func (f fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	return "", f.err
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		model    fakeModel
		expected string
	}{
		{
			name: "first candidate preferred and trimmed",
			model: fakeModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{
				{Content: "  Bug fixes and dark mode.\n"},
				{Content: "ignored second candidate"},
			}}},
			expected: "Bug fixes and dark mode.",
		},
		{
			name: "empty first candidate falls back to concatenating all candidates",
			model: fakeModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{
				{Content: "   ", StopReason: "SAFETY"},
				{Content: "Recovered text."},
			}}},
			expected: "Recovered text.",
		},
		{
			name: "all candidates empty yields empty string",
			model: fakeModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{
				{Content: "", StopReason: "SAFETY", GenerationInfo: map[string]any{"blocked": true}},
				{Content: ""},
			}}},
			expected: "",
		},
		{
			name:     "no candidates yields empty string",
			model:    fakeModel{resp: &llms.ContentResponse{}},
			expected: "",
		},
		{
			name:     "transport error absorbed as empty string",
			model:    fakeModel{err: errors.New("connection refused")},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &Client{llm: tt.model, model: "gemini-1.5-flash"}

			// Generate has no error return; every failure mode must come back
			// as an empty string.
			assert.Equal(t, tt.expected, client.Generate(context.Background(), "prompt"))
		})
	}
}
