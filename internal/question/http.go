package question

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

// HTTPHandlers exposes the catalogue over REST.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for category and question endpoints.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// Register mounts the catalogue routes. Non-numeric ids do not match and fall
// through to the router's 404.
func (h *HTTPHandlers) Register(r chi.Router) {
	r.Get("/categories", h.GetCategories)
	r.Get("/categories/{id:[0-9]+}/questions", h.GetCategoryQuestions)
	r.Get("/questions", h.ListQuestions)
	r.Post("/questions", h.PostQuestion)
	r.Post("/questions/search", h.SearchQuestions)
	r.Delete("/questions/{id:[0-9]+}", h.DeleteQuestion)
}

// GetCategories handles GET /categories
func (h *HTTPHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": CategoryMap(categories),
	})
}

// ListQuestions handles GET /questions?page=&category=
// A missing or malformed page falls back to 1; a malformed category is ignored.
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	req := ListRequest{
		Page:       queryInt(r, "page", 1),
		CategoryID: queryInt(r, "category", 0),
	}

	page, err := h.svc.ListQuestions(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	var current interface{}
	if page.CurrentCategory != nil {
		current = page.CurrentCategory.Type
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        page.Questions,
		"total_questions":  page.TotalQuestions,
		"current_category": current,
		"categories":       CategoryMap(page.Categories),
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w, ErrQuestionNotFound.Error())
		return
	}

	total, err := h.svc.DeleteQuestion(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"deleted":         id,
		"total_questions": total,
	})
}

// PostQuestion handles POST /questions. A body carrying a "searchTerm" key is
// a search; any other body is a create request.
func (h *HTTPHandlers) PostQuestion(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		httperrors.RespondBadRequest(w, "Could not read request body")
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		httperrors.RespondBadRequest(w, "Invalid JSON payload")
		return
	}

	if _, isSearch := fields["searchTerm"]; isSearch {
		var req SearchRequest
		if err := json.Unmarshal(body, &req); err != nil {
			httperrors.RespondValidationError(w, "searchTerm must be a string", "searchTerm")
			return
		}
		h.search(w, r, req)
		return
	}

	var req CreateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httperrors.RespondBadRequest(w, "Invalid JSON payload")
		return
	}
	h.create(w, r, req)
}

// SearchQuestions handles POST /questions/search
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, "Invalid JSON payload")
		return
	}
	h.search(w, r, req)
}

// GetCategoryQuestions handles GET /categories/{id}/questions
func (h *HTTPHandlers) GetCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w, ErrCategoryNotFound.Error())
		return
	}

	result, err := h.svc.QuestionsByCategory(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"category":        result.Category.Type,
		"questions":       result.Questions,
		"results":         len(result.Questions),
		"total_questions": result.TotalQuestions,
	})
}

func (h *HTTPHandlers) create(w http.ResponseWriter, r *http.Request, req CreateRequest) {
	q, total, err := h.svc.CreateQuestion(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"posted":          q.ID,
		"total_questions": total,
	})
}

func (h *HTTPHandlers) search(w http.ResponseWriter, r *http.Request, req SearchRequest) {
	if req.SearchTerm == nil {
		httperrors.RespondValidationError(w, "searchTerm is required", "searchTerm")
		return
	}

	result, err := h.svc.SearchQuestions(r.Context(), *req.SearchTerm)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"results":         len(result.Questions),
		"total_questions": result.TotalQuestions,
	})
}

func (h *HTTPHandlers) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		httperrors.RespondValidationError(w, verr.Message, verr.Field)
	case errors.Is(err, ErrQuestionNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrCategoryEmpty),
		errors.Is(err, ErrNoMatches):
		httperrors.RespondNotFound(w, err.Error())
	default:
		h.logger.Error().
			Err(err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("path", r.URL.Path).
			Msg("question request failed")
		httperrors.RespondInternalError(w)
	}
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
