package quiz

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
	"github.com/gokatarajesh/trivia-api/internal/question"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandler exposes the quiz endpoint.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs a quiz HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "quiz_http").Logger(),
	}
}

type nextResponse struct {
	Success  bool               `json:"success"`
	Question *question.Question `json:"question"`
}

// HandleNext responds to POST /quizzes with the next question, or a null
// question when the quiz is complete.
func (h *HTTPHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondErr(w, h.logger, fmt.Errorf("%w: decode body: %v", apperr.ErrInvalidInput, err))
		return
	}

	next, err := h.svc.NextQuestion(r.Context(), req)
	if err != nil {
		httperrors.RespondErr(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(nextResponse{Success: true, Question: next}); err != nil {
		h.logger.Error().Err(err).Msg("encode quiz question")
	}
}
