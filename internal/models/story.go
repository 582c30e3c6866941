package models

import "strings"

type StoryLength string

const (
	LengthShort  StoryLength = "short"
	LengthMedium StoryLength = "medium"
	LengthLong   StoryLength = "long"
)

type StoryTone string

const (
	ToneNeutral    StoryTone = "neutral"
	ToneMysterious StoryTone = "mysterious"
	ToneHumorous   StoryTone = "humorous"
	ToneDramatic   StoryTone = "dramatic"
	ToneFantasy    StoryTone = "fantasy"
	ToneSciFi      StoryTone = "sci-fi"
	ToneHorror     StoryTone = "horror"
	ToneRomantic   StoryTone = "romantic"
)

const (
	DefaultLength = LengthMedium
	DefaultTone   = ToneNeutral

	DefaultStoryTitle   = "Untitled Story"
	DefaultStoryContent = "No story content generated."
)

// StoryRequestParams is the form the user fills in before asking for a story.
type StoryRequestParams struct {
	Idea      string      `json:"idea"`
	Character string      `json:"character"`
	Setting   string      `json:"setting"`
	Conflict  string      `json:"conflict"`
	Length    StoryLength `json:"length" validate:"oneof=short medium long"`
	Tone      StoryTone   `json:"tone" validate:"oneof=neutral mysterious humorous dramatic fantasy sci-fi horror romantic"`
}

// DefaultParams returns an empty form with the default length and tone.
func DefaultParams() StoryRequestParams {
	return StoryRequestParams{Length: DefaultLength, Tone: DefaultTone}
}

// WithDefaults fills in a missing length or tone.
func (p StoryRequestParams) WithDefaults() StoryRequestParams {
	if strings.TrimSpace(string(p.Length)) == "" {
		p.Length = DefaultLength
	}
	if strings.TrimSpace(string(p.Tone)) == "" {
		p.Tone = DefaultTone
	}
	return p
}

// HasSubject reports whether at least one free-text field is non-blank.
func (p StoryRequestParams) HasSubject() bool {
	for _, v := range []string{p.Idea, p.Character, p.Setting, p.Conflict} {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

type StoryResult struct {
	Title string `json:"title"`
	Story string `json:"story"`
}

// SavedStory is one entry of the persisted story list. Entries are never
// edited after creation.
type SavedStory struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Date    string `json:"date"`
}
