package gemini

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"storyteller/internal/models"
)

// FirstText returns candidates[0].content.parts[0].text. ok is false when any
// step of that path is missing.
func FirstText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", false
	}
	part := cand.Content.Parts[0]
	if part == nil {
		return "", false
	}
	return part.Text, true
}

// DecodeStory parses the inner JSON of a story response. ok is false for an
// envelope without content; err is a DECODE_ERROR when the inner text is not
// a JSON object.
func DecodeStory(resp *genai.GenerateContentResponse) (result models.StoryResult, ok bool, err error) {
	text, ok := FirstText(resp)
	if !ok {
		return models.StoryResult{}, false, nil
	}

	if bytes.Equal(bytes.TrimSpace([]byte(text)), []byte("null")) {
		err := errors.New("story payload is null")
		return models.StoryResult{}, true, models.NewFlowError(models.ErrKindDecode, err.Error(), err)
	}

	var inner struct {
		Title *string `json:"title"`
		Story *string `json:"story"`
	}
	if err := json.Unmarshal([]byte(text), &inner); err != nil {
		return models.StoryResult{}, true, models.NewFlowError(models.ErrKindDecode, err.Error(),
			fmt.Errorf("parse story payload: %w", err))
	}

	result = models.StoryResult{Title: models.DefaultStoryTitle, Story: models.DefaultStoryContent}
	if inner.Title != nil && *inner.Title != "" {
		result.Title = *inner.Title
	}
	if inner.Story != nil && *inner.Story != "" {
		result.Story = *inner.Story
	}
	return result, true, nil
}

// DecodePrompt returns the inner text as is.
func DecodePrompt(resp *genai.GenerateContentResponse) (string, bool) {
	return FirstText(resp)
}
