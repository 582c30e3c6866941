package editor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyteller/internal/models"
)

func TestEditor_NewHasDefaults(t *testing.T) {
	s := New().Snapshot()
	assert.Equal(t, models.LengthMedium, s.Params.Length)
	assert.Equal(t, models.ToneNeutral, s.Params.Tone)
	assert.False(t, s.CanGenerate)
}

func TestEditor_BeginStoryRejectsEmptySubject(t *testing.T) {
	e := New()
	_, _, ok := e.BeginStory(models.StoryRequestParams{Idea: "  ", Conflict: ""})
	assert.False(t, ok)
	assert.False(t, e.Snapshot().Loading)
}

func TestEditor_StoryFlow(t *testing.T) {
	e := New()
	_, ok := e.ApplyStory(0, models.StoryResult{})
	assert.False(t, ok, "zero token never commits")

	token, s, ok := e.BeginStory(models.StoryRequestParams{Idea: "dragons"})
	require.True(t, ok)
	assert.True(t, s.Loading)
	assert.False(t, s.CanGenerate)

	_, _, ok = e.BeginStory(models.StoryRequestParams{Idea: "again"})
	assert.False(t, ok, "second trigger while loading is rejected")

	s, ok = e.ApplyStory(token, models.StoryResult{Title: "T", Story: "S"})
	require.True(t, ok)
	assert.False(t, s.Loading)
	assert.Equal(t, "T", s.Title)
	assert.Equal(t, "S", s.Story)
	assert.Equal(t, "T\n\nS", s.ClipboardText())
}

func TestEditor_BeginStoryClearsPreviousResult(t *testing.T) {
	e := New()
	token, _, _ := e.BeginStory(models.StoryRequestParams{Idea: "a"})
	e.ApplyStory(token, models.StoryResult{Title: "old", Story: "old"})

	token, s, ok := e.BeginStory(models.StoryRequestParams{Idea: "b"})
	require.True(t, ok)
	assert.Empty(t, s.Title)
	assert.Empty(t, s.Story)

	s, _ = e.ApplyError(token, "Error: boom")
	assert.Equal(t, "Error: boom", s.Error)
	assert.Empty(t, s.Story, "failed request leaves an empty result area")
}

func TestEditor_StaleResultIsDropped(t *testing.T) {
	e := New()
	first, _, _ := e.BeginStory(models.StoryRequestParams{Idea: "a"})
	e.Clear()
	second, _, ok := e.BeginStory(models.StoryRequestParams{Idea: "b"})
	require.True(t, ok)

	_, ok = e.ApplyStory(first, models.StoryResult{Title: "stale", Story: "stale"})
	assert.False(t, ok)
	assert.True(t, e.Snapshot().Loading)

	s, ok := e.ApplyStory(second, models.StoryResult{Title: "fresh", Story: "fresh"})
	assert.True(t, ok)
	assert.Equal(t, "fresh", s.Title)
}

func TestEditor_RandomPromptFlow(t *testing.T) {
	e := New()
	e.SetParams(models.StoryRequestParams{Idea: "i", Character: "c", Setting: "s", Conflict: "x", Tone: models.ToneHorror})

	token, s, ok := e.BeginRandomPrompt()
	require.True(t, ok)
	assert.Empty(t, s.Params.Idea)
	assert.Empty(t, s.Params.Character)
	assert.Empty(t, s.Params.Setting)
	assert.Empty(t, s.Params.Conflict)
	assert.Equal(t, models.ToneHorror, s.Params.Tone, "tone survives")

	s, ok = e.ApplyPrompt(token, "A lighthouse keeper finds a map")
	require.True(t, ok)
	assert.Equal(t, "A lighthouse keeper finds a map", s.Params.Idea)
	assert.True(t, s.CanGenerate)
}

func TestEditor_Clear(t *testing.T) {
	e := New()
	token, _, _ := e.BeginStory(models.StoryRequestParams{Idea: "a", Length: models.LengthLong, Tone: models.ToneDramatic})
	e.ApplyStory(token, models.StoryResult{Title: "T", Story: "S"})

	s := e.Clear()
	assert.Equal(t, State{Params: models.DefaultParams()}, s)
}

func TestEditor_Load(t *testing.T) {
	e := New()
	e.SetParams(models.StoryRequestParams{Idea: "i", Setting: "s", Length: models.LengthShort})

	s := e.Load(models.SavedStory{ID: 1, Title: "Saved", Content: "Body", Date: "d"})
	assert.Equal(t, "Saved", s.Title)
	assert.Equal(t, "Body", s.Story)
	assert.Empty(t, s.Params.Idea)
	assert.Empty(t, s.Params.Setting)
	assert.Equal(t, models.LengthShort, s.Params.Length)

	title, story := e.Current()
	assert.Equal(t, "Saved", title)
	assert.Equal(t, "Body", story)
}

func TestEditor_CanGenerateFollowsFormAndLoading(t *testing.T) {
	e := New()
	assert.False(t, e.Snapshot().CanGenerate)
	assert.False(t, e.SetParams(models.StoryRequestParams{Idea: " ", Conflict: "\t"}).CanGenerate)
	assert.True(t, e.SetParams(models.StoryRequestParams{Conflict: "war"}).CanGenerate)

	token, s, ok := e.BeginStory(models.StoryRequestParams{Conflict: "war"})
	require.True(t, ok)
	assert.False(t, s.CanGenerate)

	s, _ = e.ApplyStory(token, models.StoryResult{Title: "T", Story: "S"})
	assert.True(t, s.CanGenerate)
	assert.False(t, e.Clear().CanGenerate)

	data, err := json.Marshal(e.SetParams(models.StoryRequestParams{Idea: "x"}))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"canGenerate":true`)
}

func TestState_ClipboardTextEmptyWithoutStory(t *testing.T) {
	assert.Equal(t, "", State{Title: "only a title"}.ClipboardText())
}
