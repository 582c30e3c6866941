package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"storyteller/internal/models"
	"storyteller/internal/repositories"
)

const (
	// DefaultStorageKey is the key the saved stories live under.
	DefaultStorageKey = "aiStories"
	// DefaultDateLayout mirrors an en-US toLocaleString rendering.
	DefaultDateLayout = "1/2/2006, 3:04:05 PM"

	noStoryToSave = "No story to save!"
)

type StoryStoreService interface {
	Startup(ctx context.Context)
	List() []models.SavedStory
	Get(id int64) (*models.SavedStory, bool)
	Save(title, content string) (*models.SavedStory, error)
	Delete(id int64) error
}

type StoryStoreOptions struct {
	Key        string
	DateLayout string
	Now        func() time.Time
	Logger     *zap.Logger
}

type storyStoreService struct {
	repo repositories.KeyValueRepository
	ctx  context.Context
	opts StoryStoreOptions

	mu      sync.Mutex
	loaded  bool
	stories []models.SavedStory
}

func NewStoryStoreService(repo repositories.KeyValueRepository, opts StoryStoreOptions) StoryStoreService {
	if strings.TrimSpace(opts.Key) == "" {
		opts.Key = DefaultStorageKey
	}
	if opts.DateLayout == "" {
		opts.DateLayout = DefaultDateLayout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &storyStoreService{
		repo:    repo,
		ctx:     context.Background(),
		opts:    opts,
		stories: []models.SavedStory{},
	}
}

// Startup loads the saved stories once. Missing or corrupt data leaves the
// list empty. A failed read leaves the store unloaded; the next write retries
// the read before it touches storage.
func (s *storyStoreService) Startup(ctx context.Context) {
	if ctx != nil {
		s.ctx = ctx
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		s.opts.Logger.Warn("failed to load saved stories", zap.String("key", s.opts.Key), zap.Error(err))
	}
}

// ensureLoaded reads the stored list if it has not been read yet. Caller
// holds s.mu.
func (s *storyStoreService) ensureLoaded() error {
	if s.loaded {
		return nil
	}
	log := s.opts.Logger.With(zap.String("key", s.opts.Key))

	raw, ok, err := s.repo.Get(s.ctx, s.opts.Key)
	if err != nil {
		return fmt.Errorf("service: load stories: %w", err)
	}
	s.loaded = true
	if !ok {
		return nil
	}

	stories, err := DecodeSavedStories(raw)
	if err != nil {
		log.Warn("saved stories are unreadable, starting empty", zap.Error(err))
		return nil
	}
	s.stories = stories
	log.Info("loaded saved stories", zap.Int("count", len(stories)))
	return nil
}

func (s *storyStoreService) List() []models.SavedStory {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SavedStory, len(s.stories))
	copy(out, s.stories)
	return out
}

func (s *storyStoreService) Get(id int64) (*models.SavedStory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.stories {
		if st.ID == id {
			found := st
			return &found, true
		}
	}
	return nil, false
}

func (s *storyStoreService) Save(title, content string) (*models.SavedStory, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, models.NewFlowError(models.ErrKindValidation, noStoryToSave, nil)
	}

	now := s.opts.Now()
	story := models.SavedStory{
		ID:      now.UnixMilli(),
		Title:   title,
		Content: content,
		Date:    now.Format(s.opts.DateLayout),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	updated := make([]models.SavedStory, len(s.stories), len(s.stories)+1)
	copy(updated, s.stories)
	updated = append(updated, story)
	if err := s.persist(updated); err != nil {
		return nil, err
	}
	s.stories = updated
	s.opts.Logger.Info("story saved", zap.Int64("id", story.ID), zap.Int("count", len(updated)))
	return &story, nil
}

func (s *storyStoreService) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	idx := -1
	for i, st := range s.stories {
		if st.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	updated := make([]models.SavedStory, 0, len(s.stories)-1)
	updated = append(updated, s.stories[:idx]...)
	updated = append(updated, s.stories[idx+1:]...)
	if err := s.persist(updated); err != nil {
		return err
	}
	s.stories = updated
	s.opts.Logger.Info("story deleted", zap.Int64("id", id), zap.Int("count", len(updated)))
	return nil
}

// persist rewrites the whole list. Caller holds s.mu.
func (s *storyStoreService) persist(stories []models.SavedStory) error {
	raw, err := EncodeSavedStories(stories)
	if err != nil {
		return err
	}
	if err := s.repo.Set(s.ctx, s.opts.Key, raw); err != nil {
		s.opts.Logger.Error("failed to persist stories", zap.Error(err))
		return fmt.Errorf("service: persist stories: %w", err)
	}
	return nil
}

// EncodeSavedStories renders the storage form of the list.
func EncodeSavedStories(stories []models.SavedStory) (string, error) {
	if stories == nil {
		stories = []models.SavedStory{}
	}
	data, err := json.Marshal(stories)
	if err != nil {
		return "", fmt.Errorf("encode stories: %w", err)
	}
	return string(data), nil
}

// DecodeSavedStories parses the storage form of the list. JSON null decodes to
// an empty list.
func DecodeSavedStories(raw string) ([]models.SavedStory, error) {
	var stories []models.SavedStory
	if err := json.Unmarshal([]byte(raw), &stories); err != nil {
		return nil, fmt.Errorf("decode stories: %w", err)
	}
	if stories == nil {
		stories = []models.SavedStory{}
	}
	return stories, nil
}
