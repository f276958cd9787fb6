package question

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
	"github.com/gokatarajesh/trivia-api/internal/category"
	"github.com/gokatarajesh/trivia-api/internal/pagination"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// NoMatchText is the placeholder question returned when a search finds nothing.
const NoMatchText = "Question is not Available"

type labelLister interface {
	Labels(ctx context.Context) (category.Labels, error)
}

// HandlerOptions tunes paging behavior.
type HandlerOptions struct {
	PageSize int
	// EmptyAsNotFound answers 404 for an empty page or an empty category.
	EmptyAsNotFound bool
}

// HTTPHandlers provides REST endpoints for question operations.
type HTTPHandlers struct {
	svc             *Service
	categories      labelLister
	pageSize        int
	emptyAsNotFound bool
	logger          zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for question endpoints.
func NewHTTPHandlers(svc *Service, categories labelLister, opts HandlerOptions, logger zerolog.Logger) *HTTPHandlers {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	return &HTTPHandlers{
		svc:             svc,
		categories:      categories,
		pageSize:        pageSize,
		emptyAsNotFound: opts.EmptyAsNotFound,
		logger:          logger.With().Str("component", "question_http").Logger(),
	}
}

// HandleCollection serves /questions: GET lists, POST creates or searches.
func (h *HTTPHandlers) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.createOrSearch(w, r)
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

// HandleItem serves DELETE /questions/{id}.
func (h *HTTPHandlers) HandleItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	id, err := pathID(r)
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	ctx := r.Context()
	deleted, err := h.svc.Delete(ctx, id)
	if err != nil {
		httperrors.RespondErr(w, h.logger, err)
		return
	}

	remaining, err := h.svc.ListAll(ctx)
	if err != nil {
		httperrors.RespondErr(w, h.logger, err)
		return
	}

	h.respondJSON(w, map[string]interface{}{
		"success":                 true,
		"deleted":                 deleted,
		"questions":               h.page(r, remaining),
		"current_total_questions": len(remaining),
	})
}

// HandleByCategory serves GET /categories/{id}/questions.
func (h *HTTPHandlers) HandleByCategory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	id, err := pathID(r)
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	cat, questions, err := h.svc.ListByCategory(r.Context(), id)
	if err != nil {
		httperrors.RespondErr(w, h.logger, err)
		return
	}

	current := h.page(r, questions)
	if len(current) == 0 && h.emptyAsNotFound {
		httperrors.RespondErr(w, h.logger, fmt.Errorf("category %d has no questions on this page: %w", id, apperr.ErrNotFound))
		return
	}

	h.respondJSON(w, map[string]interface{}{
		"success":          true,
		"totalQuestions":   len(questions),
		"questions":        current,
		"categories":       cat.Type,
		"current_category": cat.ID,
	})
}

func (h *HTTPHandlers) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	questions, err := h.svc.ListAll(ctx)
	if err != nil {
		httperrors.RespondErr(w, h.logger, err)
		return
	}

	current := h.page(r, questions)
	if len(current) == 0 && h.emptyAsNotFound {
		httperrors.RespondErr(w, h.logger, fmt.Errorf("empty question page: %w", apperr.ErrNotFound))
		return
	}

	labels, err := h.categories.Labels(ctx)
	if err != nil {
		httperrors.RespondErr(w, h.logger, err)
		return
	}

	h.respondJSON(w, map[string]interface{}{
		"success":          true,
		"questions":        current,
		"total_questions":  len(questions),
		"current_category": nil,
		"categories":       labels,
	})
}

type postBody struct {
	SearchTerm *string `json:"searchTerm"`
	CreateInput
}

func (h *HTTPHandlers) createOrSearch(w http.ResponseWriter, r *http.Request) {
	var body postBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httperrors.RespondErr(w, h.logger, fmt.Errorf("%w: decode body: %v", apperr.ErrInvalidInput, err))
		return
	}

	if body.SearchTerm != nil {
		h.search(w, r, *body.SearchTerm)
		return
	}
	h.create(w, r, body.CreateInput)
}

func (h *HTTPHandlers) search(w http.ResponseWriter, r *http.Request, term string) {
	matches, err := h.svc.Search(r.Context(), term)
	if err != nil {
		httperrors.RespondErr(w, h.logger, err)
		return
	}

	if len(matches) == 0 {
		h.respondJSON(w, map[string]interface{}{
			"success":        true,
			"questions":      []map[string]string{{"question": NoMatchText}},
			"totalQuestions": 0,
		})
		return
	}

	h.respondJSON(w, map[string]interface{}{
		"success":        true,
		"questions":      h.page(r, matches),
		"totalQuestions": len(matches),
	})
}

func (h *HTTPHandlers) create(w http.ResponseWriter, r *http.Request, in CreateInput) {
	ctx := r.Context()
	created, err := h.svc.Create(ctx, in)
	if err != nil {
		httperrors.RespondErr(w, h.logger, err)
		return
	}

	questions, err := h.svc.ListAll(ctx)
	if err != nil {
		httperrors.RespondErr(w, h.logger, err)
		return
	}

	h.respondJSON(w, map[string]interface{}{
		"success":         true,
		"new_question_id": created.ID,
		"questions":       h.page(r, questions),
		"totalQuestions":  len(questions),
	})
}

// pathID parses the {id} segment. Anything that is not a store sized
// integer cannot name a row.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (h *HTTPHandlers) page(r *http.Request, questions []Question) []Question {
	return pagination.Paginate(questions, pagination.PageFromQuery(r.URL.Query()), h.pageSize)
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("encode response")
	}
}
