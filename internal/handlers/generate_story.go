package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
)

//go:generate mockgen -source=generate_story.go -destination=mock_generate_story.go -package=handlers

// StoryNarrator defines the interface that the story service must implement.
type StoryNarrator interface {
	Live() bool                                                                       // Whether a real model backs the narrator
	Narrate(ctx context.Context, ingredients []string, emit func(string) error) error // Emits story fragments in order
}

// GenerateStoryRequest represents the JSON body for story generation
// swagger:model GenerateStoryRequest
type GenerateStoryRequest struct {
	// Ingredients the story is about
	Ingredients models.StringList `json:"ingredients" swaggertype:"array,string"`
}

// StoryResponse is returned when no model is configured
// swagger:model StoryResponse
type StoryResponse struct {
	Story string `json:"story"`
}

type storyChunk struct {
	Content string `json:"content"`
}

const sseDone = "data: [DONE]\n\n"

// NewGenerateStoryHandler returns an HTTP handler that narrates the origin of a dish.
// With a live model the story is streamed as server-sent events, each frame
// carrying {"content": ...} and the stream always ends with [DONE]. Without
// one the whole story is returned as JSON.
// @Summary Generate a food story
// @Description Streams a short story about the ingredients as text/event-stream, or returns {story} in mock mode
// @Tags recipes
// @Accept json
// @Produce text/event-stream
// @Produce json
// @Param generateStoryRequest body handlers.GenerateStoryRequest true "Ingredients"
// @Success 200 {object} handlers.StoryResponse "Story (mock mode)"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Failed to generate story"
// @Security BearerAuth
// @Router /recipe/generate-story [post]
func NewGenerateStoryHandler(svc StoryNarrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateStoryRequest

		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		log := logger.FromContext(r.Context())

		if !svc.Live() {
			var story strings.Builder
			err := svc.Narrate(r.Context(), []string(req.Ingredients), func(s string) error {
				story.WriteString(s)
				return nil
			})
			if err != nil {
				log.Errorw("story generation failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Failed to generate story")
				return
			}
			writeJSON(w, http.StatusOK, StoryResponse{Story: story.String()})
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "Streaming unsupported")
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		err := svc.Narrate(r.Context(), []string(req.Ingredients), func(s string) error {
			frame, err := json.Marshal(storyChunk{Content: s})
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", frame); err != nil {
				return err
			}
			flusher.Flush()
			return nil
		})
		if err != nil {
			log.Warnw("story stream ended early", "err", err)
		}

		fmt.Fprint(w, sseDone)
		flusher.Flush()
	}
}
