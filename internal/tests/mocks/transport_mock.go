package mocks

import (
	"context"

	"google.golang.org/genai"

	"storyteller/internal/gemini"
)

type TransportMock struct {
	GenerateFunc func(ctx context.Context, req *gemini.Request) (*genai.GenerateContentResponse, error)
	Calls        []*gemini.Request
}

func (m *TransportMock) Generate(ctx context.Context, req *gemini.Request) (*genai.GenerateContentResponse, error) {
	m.Calls = append(m.Calls, req)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return &genai.GenerateContentResponse{}, nil
}

// TextResponse builds a single-candidate envelope around text.
func TextResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
		}},
	}
}
