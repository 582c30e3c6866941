// Package editor holds the state behind the story form and the result pane.
//
// Flows run outside the state: Begin* prepares the state and hands out a
// token, the caller performs the request, and Apply* commits the outcome only
// if the token is still the latest one issued. A response that lost the race
// is dropped instead of overwriting newer data.
package editor

import (
	"sync"

	"storyteller/internal/models"
)

type Token uint64

// State is the snapshot sent to the frontend.
type State struct {
	Params  models.StoryRequestParams `json:"params"`
	Title   string                    `json:"title"`
	Story   string                    `json:"story"`
	Loading bool                      `json:"loading"`
	Error   string                    `json:"error"`

	// CanGenerate drives the generate-story button. Filled in on every
	// snapshot the editor hands out.
	CanGenerate bool `json:"canGenerate"`
}

func (s State) withDerived() State {
	s.CanGenerate = !s.Loading && s.Params.HasSubject()
	return s
}

// ClipboardText is what copy-to-clipboard puts on the clipboard. Empty when
// there is no story.
func (s State) ClipboardText() string {
	if s.Story == "" {
		return ""
	}
	return s.Title + "\n\n" + s.Story
}

// Editor guards a State and the token counter.
type Editor struct {
	mu     sync.Mutex
	state  State
	issued Token
}

func New() *Editor {
	return &Editor{state: State{Params: models.DefaultParams()}}
}

func (e *Editor) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.withDerived()
}

func (e *Editor) SetParams(p models.StoryRequestParams) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Params = p.WithDefaults()
	return e.state.withDerived()
}

// BeginStory clears the previous result and marks a story request in flight.
// ok is false when generation is not currently allowed.
func (e *Editor) BeginStory(p models.StoryRequestParams) (Token, State, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Loading || !p.HasSubject() {
		return 0, e.state.withDerived(), false
	}
	e.state.Params = p.WithDefaults()
	e.state.Title = ""
	e.state.Story = ""
	e.state.Error = ""
	e.state.Loading = true
	e.issued++
	return e.issued, e.state.withDerived(), true
}

// BeginRandomPrompt clears the whole form and the result pane.
func (e *Editor) BeginRandomPrompt() (Token, State, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Loading {
		return 0, e.state.withDerived(), false
	}
	e.clearFields()
	e.state.Title = ""
	e.state.Story = ""
	e.state.Error = ""
	e.state.Loading = true
	e.issued++
	return e.issued, e.state.withDerived(), true
}

// ApplyStory commits a story result. It returns false for a stale token.
func (e *Editor) ApplyStory(tok Token, r models.StoryResult) (State, bool) {
	return e.apply(tok, func(s *State) {
		s.Title = r.Title
		s.Story = r.Story
	})
}

// ApplyPrompt puts a generated prompt into the idea field.
func (e *Editor) ApplyPrompt(tok Token, text string) (State, bool) {
	return e.apply(tok, func(s *State) {
		s.Params.Idea = text
	})
}

func (e *Editor) ApplyError(tok Token, msg string) (State, bool) {
	return e.apply(tok, func(s *State) {
		s.Error = msg
	})
}

func (e *Editor) apply(tok Token, fn func(*State)) (State, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if tok == 0 || tok != e.issued {
		return e.state.withDerived(), false
	}
	fn(&e.state)
	e.state.Loading = false
	return e.state.withDerived(), true
}

// Clear resets every field, including length and tone. Any request still in
// flight becomes stale.
func (e *Editor) Clear() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.issued++
	e.state = State{Params: models.DefaultParams()}
	return e.state.withDerived()
}

// Load shows a saved story in the result pane and empties the four text fields.
func (e *Editor) Load(st models.SavedStory) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Title = st.Title
	e.state.Story = st.Content
	e.clearFields()
	return e.state.withDerived()
}

func (e *Editor) clearFields() {
	e.state.Params.Idea = ""
	e.state.Params.Character = ""
	e.state.Params.Setting = ""
	e.state.Params.Conflict = ""
}

// Current returns the title and story on screen.
func (e *Editor) Current() (title, story string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Title, e.state.Story
}
