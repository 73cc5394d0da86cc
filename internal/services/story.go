package services

import (
	"context"
	"fmt"

	"github.com/sbilibin2017/gw-recipe-generator/internal/assistant"
	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
)

// StoryService narrates stories about ingredients.
type StoryService struct {
	assistant assistant.Assistant
}

// NewStoryService creates a new StoryService.
func NewStoryService(asst assistant.Assistant) *StoryService {
	return &StoryService{assistant: asst}
}

// Live reports whether stories are streamed from a real provider.
func (s *StoryService) Live() bool {
	return s.assistant.Live()
}

// Narrate passes story fragments to emit as they arrive. It returns when the
// story is complete, ctx is done or emit fails.
func (s *StoryService) Narrate(ctx context.Context, ingredients []string, emit func(string) error) error {
	fragments := 0
	err := s.assistant.NarrateStory(ctx, ingredients, func(fragment string) error {
		fragments++
		return emit(fragment)
	})

	log := logger.FromContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			log.Infow("story cancelled by client", "fragments", fragments)
			return ctx.Err()
		}
		log.Errorw("story narration failed", "fragments", fragments, "error", err)
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	log.Infow("story narrated", "fragments", fragments)
	return nil
}
