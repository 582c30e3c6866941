package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"storyteller/internal/gemini"
	"storyteller/internal/models"
	"storyteller/internal/prompt"
)

const (
	noStoryGenerated  = "No story generated. Please try a different prompt."
	noPromptGenerated = "No random prompt generated."
	missingSubject    = "Please provide at least one story detail: an idea, a character, a setting or a conflict."

	storyFallbackError  = "Something went wrong while generating the story. Make sure your prompt is clear and API is enabled."
	promptFallbackError = "Something went wrong while generating a random prompt."
)

// StoryService runs the two generation flows. Each call issues exactly one
// request to the proxy.
type StoryService interface {
	GenerateStory(ctx context.Context, params models.StoryRequestParams) (models.StoryResult, error)
	GenerateRandomPrompt(ctx context.Context) (string, error)
}

type storyService struct {
	transport gemini.Transport
	validate  *validator.Validate
	logger    *zap.Logger
}

func NewStoryService(transport gemini.Transport, logger *zap.Logger) StoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &storyService{
		transport: transport,
		validate:  validator.New(),
		logger:    logger,
	}
}

// validateParams checks the enum fields and that the form has a subject.
func (s *storyService) validateParams(params models.StoryRequestParams) error {
	if err := s.validate.Struct(params); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return models.NewFlowError(models.ErrKindValidation,
				fmt.Sprintf("invalid %s %q", strings.ToLower(fe.Field()), fe.Value()), err)
		}
		return models.NewFlowError(models.ErrKindValidation, err.Error(), err)
	}
	if !params.HasSubject() {
		return models.NewFlowError(models.ErrKindValidation, missingSubject, nil)
	}
	return nil
}

func (s *storyService) GenerateStory(ctx context.Context, params models.StoryRequestParams) (models.StoryResult, error) {
	params = params.WithDefaults()
	if err := s.validateParams(params); err != nil {
		return models.StoryResult{}, err
	}

	log := s.logger.With(zap.String("flow", string(gemini.FlowStory)),
		zap.String("length", string(params.Length)), zap.String("tone", string(params.Tone)))

	instruction := prompt.BuildStoryInstruction(params)
	resp, err := s.transport.Generate(ctx, gemini.NewStoryPayload(instruction))
	if err != nil {
		log.Error("story request failed", zap.Error(err))
		return models.StoryResult{}, asFlowError(err)
	}

	result, ok, err := gemini.DecodeStory(resp)
	if err != nil {
		log.Error("story payload could not be decoded", zap.Error(err))
		return models.StoryResult{}, err
	}
	if !ok {
		log.Warn("story response had no content")
		return models.StoryResult{}, models.NewFlowError(models.ErrKindEmptyResult, noStoryGenerated, nil)
	}

	log.Info("story generated", zap.String("title", result.Title), zap.Int("chars", len(result.Story)))
	return result, nil
}

func (s *storyService) GenerateRandomPrompt(ctx context.Context) (string, error) {
	log := s.logger.With(zap.String("flow", string(gemini.FlowRandomPrompt)))

	resp, err := s.transport.Generate(ctx, gemini.NewPromptPayload(prompt.RandomPromptInstruction))
	if err != nil {
		log.Error("random prompt request failed", zap.Error(err))
		return "", asFlowError(err)
	}

	text, ok := gemini.DecodePrompt(resp)
	if !ok {
		log.Warn("random prompt response had no content")
		return "", models.NewFlowError(models.ErrKindEmptyResult, noPromptGenerated, nil)
	}

	log.Info("random prompt generated", zap.Int("chars", len(text)))
	return text, nil
}

func asFlowError(err error) error {
	var fe *models.FlowError
	if errors.As(err, &fe) {
		return err
	}
	return models.NewFlowError(models.ErrKindTransport, err.Error(), err)
}

// UserMessage turns a flow error into the single line shown in the UI.
func UserMessage(flow gemini.Flow, err error) string {
	if err == nil {
		return ""
	}
	var fe *models.FlowError
	if !errors.As(err, &fe) {
		fe = models.NewFlowError(models.ErrKindTransport, err.Error(), err)
	}
	switch fe.Kind {
	case models.ErrKindEmptyResult, models.ErrKindValidation:
		return fe.Message
	default:
		msg := strings.TrimSpace(fe.Message)
		if msg == "" {
			msg = fallbackError(flow)
		}
		return "Error: " + msg
	}
}

func fallbackError(flow gemini.Flow) string {
	if flow == gemini.FlowRandomPrompt {
		return promptFallbackError
	}
	return storyFallbackError
}
