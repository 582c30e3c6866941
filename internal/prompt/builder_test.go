package prompt

import (
	"strings"
	"testing"

	"storyteller/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildStoryInstruction_IdeaOnly(t *testing.T) {
	got := BuildStoryInstruction(models.StoryRequestParams{
		Idea:   "a quest",
		Length: models.LengthShort,
		Tone:   models.ToneFantasy,
	})

	assert.Contains(t, got, "short")
	assert.Contains(t, got, "fantasy")
	assert.Contains(t, got, "a quest")
	assert.True(t, strings.HasSuffix(got, JSONResponseInstruction))
	assert.NotContains(t, got, "main character")
	assert.NotContains(t, got, "The setting is")
	assert.NotContains(t, got, "central conflict")
}

func TestBuildStoryInstruction_AllFieldsInOrder(t *testing.T) {
	got := BuildStoryInstruction(models.StoryRequestParams{
		Idea:      "idea",
		Character: "hero",
		Setting:   "city",
		Conflict:  "storm",
		Length:    models.LengthLong,
		Tone:      models.ToneSciFi,
	})

	want := `Generate a long creative story with a sci-fi tone.` +
		` The core idea is: "idea".` +
		` The main character is: "hero".` +
		` The setting is: "city".` +
		` The central conflict is: "storm".` +
		JSONResponseInstruction
	assert.Equal(t, want, got)
}

func TestBuildStoryInstruction_KeepsValueAsTyped(t *testing.T) {
	got := BuildStoryInstruction(models.StoryRequestParams{Idea: "  a quest ", Length: models.LengthShort, Tone: models.ToneFantasy})
	assert.Contains(t, got, ` The core idea is: "  a quest ".`)
}

func TestBuildStoryInstruction_SkipsWhitespaceFields(t *testing.T) {
	got := BuildStoryInstruction(models.StoryRequestParams{
		Idea:      "   ",
		Character: "\t",
		Setting:   "  a ruined keep ",
		Length:    models.LengthMedium,
		Tone:      models.ToneHorror,
	})

	assert.Equal(t,
		`Generate a medium creative story with a horror tone. The setting is: "  a ruined keep ".`+JSONResponseInstruction,
		got)
}

func TestBuildStoryInstruction_DefaultsLengthAndTone(t *testing.T) {
	got := BuildStoryInstruction(models.StoryRequestParams{Conflict: "x"})
	assert.True(t, strings.HasPrefix(got, "Generate a medium creative story with a neutral tone."))
}

func TestBuildStoryInstruction_Deterministic(t *testing.T) {
	p := models.StoryRequestParams{Idea: "a", Tone: models.ToneRomantic, Length: models.LengthShort}
	assert.Equal(t, BuildStoryInstruction(p), BuildStoryInstruction(p))
}
