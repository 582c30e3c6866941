package services

import (
	"go.uber.org/zap"

	"storyteller/internal/gemini"
	"storyteller/internal/repositories"
)

// Services aggregates the app's domain services.
type Services struct {
	Stories StoryService
	Store   StoryStoreService
}

// NewServices wires the generation flows to transport and the story store to kv.
func NewServices(transport gemini.Transport, kv repositories.KeyValueRepository, storeOpts StoryStoreOptions, logger *zap.Logger) *Services {
	if logger == nil {
		logger = zap.NewNop()
	}
	if storeOpts.Logger == nil {
		storeOpts.Logger = logger.Named("store")
	}
	return &Services{
		Stories: NewStoryService(transport, logger.Named("stories")),
		Store:   NewStoryStoreService(kv, storeOpts),
	}
}
