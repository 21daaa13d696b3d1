package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/question"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

type nextRequest struct {
	PreviousQuestions []int `json:"previous_questions"`
	QuizCategory      struct {
		ID   question.FlexibleInt `json:"id"`
		Type string               `json:"type"`
	} `json:"quiz_category"`
}

// HTTPHandlers exposes quiz play over REST.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "quiz_http").Logger(),
	}
}

func (h *HTTPHandlers) Register(r chi.Router) {
	r.Post("/quizzes", h.Next)
}

// Next handles POST /quizzes
func (h *HTTPHandlers) Next(w http.ResponseWriter, r *http.Request) {
	var req nextRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, "Invalid JSON payload")
		return
	}

	turn, err := h.svc.Next(r.Context(), Request{
		PreviousQuestions: req.PreviousQuestions,
		CategoryID:        int(req.QuizCategory.ID),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrQuizExhausted), errors.Is(err, ErrNoCategories):
			httperrors.RespondUnprocessable(w, err.Error())
		default:
			h.logger.Error().
				Err(err).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("quiz turn failed")
			httperrors.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":  true,
		"question": turn.Question,
		"category": turn.Category,
	})
}
