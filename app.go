package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"

	"storyteller/internal/editor"
	"storyteller/internal/events"
	"storyteller/internal/gemini"
	"storyteller/internal/models"
	"storyteller/internal/services"
)

const (
	storySaved    = "Story saved successfully!"
	noStoryToSave = "No story to save!"
)

// App struct
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	editor  *editor.Editor
	stories services.StoryService
	store   services.StoryStoreService
	log     *zap.Logger

	clipboard func(ctx context.Context, text string) error
	dbClose   func() error
}

// NewApp creates a new App application struct
func NewApp(svc *services.Services, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		ctx:     ctx,
		cancel:  cancel,
		editor:  editor.New(),
		stories: svc.Stories,
		store:   svc.Store,
		log:     log,
		clipboard: func(ctx context.Context, text string) error {
			return runtime.ClipboardSetText(ctx, text)
		},
	}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.cancel()
	a.ctx, a.cancel = context.WithCancel(ctx)
	a.store.Startup(a.ctx)
}

// shutdown cancels requests still in flight and closes the database.
func (a *App) shutdown(ctx context.Context) {
	a.cancel()

	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			a.log.Error("failed to close database", zap.Error(err))
		} else {
			a.log.Info("database closed")
		}
		a.dbClose = nil
	}
}

// State returns what the form and result pane should show.
func (a *App) State() editor.State {
	return a.editor.Snapshot()
}

// UpdateParams keeps the form fields in sync while the user types.
func (a *App) UpdateParams(params models.StoryRequestParams) editor.State {
	return a.editor.SetParams(params)
}

// GenerateStory sends the form to the proxy and shows the result. A second
// call while a request is in flight is ignored.
func (a *App) GenerateStory(params models.StoryRequestParams) editor.State {
	tok, state, ok := a.editor.BeginStory(params)
	if !ok {
		return state
	}

	result, err := a.stories.GenerateStory(a.ctx, params)
	if err != nil {
		state, _ = a.editor.ApplyError(tok, services.UserMessage(gemini.FlowStory, err))
		return state
	}
	state, applied := a.editor.ApplyStory(tok, result)
	if !applied {
		a.log.Debug("dropped stale story result", zap.Uint64("token", uint64(tok)))
	}
	return state
}

// GenerateRandomPrompt clears the form and fills the idea field with a
// generated prompt.
func (a *App) GenerateRandomPrompt() editor.State {
	tok, state, ok := a.editor.BeginRandomPrompt()
	if !ok {
		return state
	}

	text, err := a.stories.GenerateRandomPrompt(a.ctx)
	if err != nil {
		state, _ = a.editor.ApplyError(tok, services.UserMessage(gemini.FlowRandomPrompt, err))
		return state
	}
	state, applied := a.editor.ApplyPrompt(tok, text)
	if !applied {
		a.log.Debug("dropped stale random prompt", zap.Uint64("token", uint64(tok)))
	}
	return state
}

// CopyStory puts the title and story on the system clipboard.
func (a *App) CopyStory() error {
	text := a.editor.Snapshot().ClipboardText()
	if text == "" {
		return nil
	}
	if err := a.clipboard(a.ctx, text); err != nil {
		return fmt.Errorf("copy story: %w", err)
	}
	return nil
}

// SaveStory stores the story on screen and returns the updated list.
func (a *App) SaveStory() ([]models.SavedStory, error) {
	title, story := a.editor.Current()
	if strings.TrimSpace(title) == "" || strings.TrimSpace(story) == "" {
		events.Publish(a.ctx, events.NewWarn(noStoryToSave))
		return a.store.List(), nil
	}

	if _, err := a.store.Save(title, story); err != nil {
		a.log.Error("failed to save story", zap.Error(err))
		events.Publish(a.ctx, events.NewError("Error: "+err.Error()))
		return a.store.List(), fmt.Errorf("save story: %w", err)
	}
	events.Publish(a.ctx, events.NewSuccess(storySaved))
	return a.store.List(), nil
}

func (a *App) ListStories() []models.SavedStory {
	return a.store.List()
}

// LoadStory shows a saved story in the result pane.
func (a *App) LoadStory(id int64) (editor.State, error) {
	st, ok := a.store.Get(id)
	if !ok {
		return a.editor.Snapshot(), fmt.Errorf("story %d not found", id)
	}
	return a.editor.Load(*st), nil
}

func (a *App) DeleteStory(id int64) ([]models.SavedStory, error) {
	if err := a.store.Delete(id); err != nil {
		a.log.Error("failed to delete story", zap.Int64("id", id), zap.Error(err))
		return a.store.List(), fmt.Errorf("delete story: %w", err)
	}
	return a.store.List(), nil
}

// ClearAll resets the form and the result pane. Saved stories are kept.
func (a *App) ClearAll() editor.State {
	return a.editor.Clear()
}
