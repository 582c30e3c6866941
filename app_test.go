package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"storyteller/internal/events"
	"storyteller/internal/gemini"
	"storyteller/internal/models"
	"storyteller/internal/repositories"
	"storyteller/internal/services"
	"storyteller/internal/tests/mocks"
)

func newTestApp(t *testing.T, transport *mocks.TransportMock) (*App, *[]events.Notice) {
	t.Helper()
	svc := services.NewServices(transport, repositories.NewMemoryKeyValueRepository(), services.StoryStoreOptions{}, nil)
	app := NewApp(svc, nil)
	app.startup(context.Background())

	var notices []events.Notice
	events.SetCustomEmitter(func(ctx context.Context, name string, n events.Notice) {
		notices = append(notices, n)
	})
	t.Cleanup(func() { events.SetCustomEmitter(nil) })
	return app, &notices
}

func storyTransport(text string) *mocks.TransportMock {
	return &mocks.TransportMock{
		GenerateFunc: func(ctx context.Context, req *gemini.Request) (*genai.GenerateContentResponse, error) {
			return mocks.TextResponse(text), nil
		},
	}
}

func TestApp_GenerateStory(t *testing.T) {
	app, _ := newTestApp(t, storyTransport(`{"title":"Moonfall","story":"The moon fell."}`))

	state := app.GenerateStory(models.StoryRequestParams{Idea: "the moon", Length: models.LengthShort})
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
	assert.Equal(t, "Moonfall", state.Title)
	assert.Equal(t, "The moon fell.", state.Story)
	assert.Equal(t, models.ToneNeutral, state.Params.Tone)
}

func TestApp_GenerateStoryWithoutSubjectSendsNothing(t *testing.T) {
	transport := storyTransport(`{}`)
	app, _ := newTestApp(t, transport)

	state := app.GenerateStory(models.StoryRequestParams{Idea: "   "})
	assert.False(t, state.Loading)
	assert.Empty(t, transport.Calls)
}

func TestApp_GenerateStoryShowsError(t *testing.T) {
	app, _ := newTestApp(t, &mocks.TransportMock{
		GenerateFunc: func(ctx context.Context, req *gemini.Request) (*genai.GenerateContentResponse, error) {
			return nil, models.NewFlowError(models.ErrKindTransport, "Quota exceeded", nil)
		},
	})

	state := app.GenerateStory(models.StoryRequestParams{Conflict: "war"})
	assert.Equal(t, "Error: Quota exceeded", state.Error)
	assert.Empty(t, state.Story)
	assert.False(t, state.Loading)
}

func TestApp_GenerateStoryEmptyResult(t *testing.T) {
	app, _ := newTestApp(t, &mocks.TransportMock{})

	state := app.GenerateStory(models.StoryRequestParams{Idea: "x"})
	assert.Equal(t, "No story generated. Please try a different prompt.", state.Error)
}

func TestApp_ClearWhileGeneratingDropsResult(t *testing.T) {
	var app *App
	transport := &mocks.TransportMock{
		GenerateFunc: func(ctx context.Context, req *gemini.Request) (*genai.GenerateContentResponse, error) {
			app.ClearAll()
			return mocks.TextResponse(`{"title":"Late","story":"Too late."}`), nil
		},
	}
	app, _ = newTestApp(t, transport)

	state := app.GenerateStory(models.StoryRequestParams{Idea: "x", Tone: models.ToneHorror})
	assert.Empty(t, state.Title)
	assert.Empty(t, state.Story)
	assert.False(t, state.Loading)
	assert.Equal(t, models.DefaultParams(), state.Params)
}

func TestApp_GenerateRandomPrompt(t *testing.T) {
	app, _ := newTestApp(t, storyTransport("A clockmaker who can stop time"))
	app.UpdateParams(models.StoryRequestParams{Idea: "old", Character: "c", Setting: "s", Conflict: "x"})

	state := app.GenerateRandomPrompt()
	assert.Equal(t, "A clockmaker who can stop time", state.Params.Idea)
	assert.Empty(t, state.Params.Character)
	assert.Empty(t, state.Params.Setting)
	assert.Empty(t, state.Params.Conflict)
}

func TestApp_GenerateRandomPromptError(t *testing.T) {
	app, _ := newTestApp(t, &mocks.TransportMock{
		GenerateFunc: func(ctx context.Context, req *gemini.Request) (*genai.GenerateContentResponse, error) {
			return nil, models.NewFlowError(models.ErrKindTransport, "", nil)
		},
	})

	state := app.GenerateRandomPrompt()
	assert.Equal(t, "Error: Something went wrong while generating a random prompt.", state.Error)
}

func TestApp_SaveLoadDelete(t *testing.T) {
	app, notices := newTestApp(t, storyTransport(`{"title":"Keep","story":"Worth keeping."}`))
	app.GenerateStory(models.StoryRequestParams{Idea: "x"})

	list, err := app.SaveStory()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Keep", list[0].Title)
	require.Len(t, *notices, 1)
	assert.Equal(t, events.NoticeSuccess, (*notices)[0].Type)
	assert.Equal(t, "Story saved successfully!", (*notices)[0].Message)

	app.ClearAll()
	state, err := app.LoadStory(list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Keep", state.Title)
	assert.Equal(t, "Worth keeping.", state.Story)

	_, err = app.LoadStory(list[0].ID + 1)
	assert.Error(t, err)

	list, err = app.DeleteStory(list[0].ID)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, app.ListStories())
}

func TestApp_SaveWithoutStoryWarns(t *testing.T) {
	app, notices := newTestApp(t, &mocks.TransportMock{})

	list, err := app.SaveStory()
	require.NoError(t, err)
	assert.Empty(t, list)
	require.Len(t, *notices, 1)
	assert.Equal(t, events.NoticeWarn, (*notices)[0].Type)
	assert.Equal(t, "No story to save!", (*notices)[0].Message)
}

func TestApp_CopyStory(t *testing.T) {
	app, _ := newTestApp(t, storyTransport(`{"title":"T","story":"S"}`))
	var copied []string
	app.clipboard = func(ctx context.Context, text string) error {
		copied = append(copied, text)
		return nil
	}

	require.NoError(t, app.CopyStory())
	assert.Empty(t, copied, "nothing to copy yet")

	app.GenerateStory(models.StoryRequestParams{Idea: "x"})
	require.NoError(t, app.CopyStory())
	assert.Equal(t, []string{"T\n\nS"}, copied)

	app.clipboard = func(ctx context.Context, text string) error { return errors.New("no clipboard") }
	assert.Error(t, app.CopyStory())
}

func TestApp_ShutdownClosesDatabase(t *testing.T) {
	app, _ := newTestApp(t, &mocks.TransportMock{})
	closed := 0
	app.dbClose = func() error { closed++; return nil }

	app.shutdown(context.Background())
	app.shutdown(context.Background())
	assert.Equal(t, 1, closed)
	assert.Error(t, app.ctx.Err())
}

func TestApp_UpdateParamsReportsCanGenerate(t *testing.T) {
	app, _ := newTestApp(t, &mocks.TransportMock{})

	assert.False(t, app.State().CanGenerate)
	assert.False(t, app.UpdateParams(models.StoryRequestParams{Idea: "   "}).CanGenerate)
	assert.True(t, app.UpdateParams(models.StoryRequestParams{Setting: "a moon base"}).CanGenerate)
}
