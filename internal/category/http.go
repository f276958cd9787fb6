package category

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

type labelLister interface {
	Labels(ctx context.Context) (Labels, error)
}

// HTTPHandler exposes the category listing endpoint.
type HTTPHandler struct {
	svc    labelLister
	logger zerolog.Logger
}

// NewHTTPHandler constructs a category HTTP handler.
func NewHTTPHandler(svc labelLister, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "category_http").Logger(),
	}
}

type listResponse struct {
	Success    bool   `json:"success"`
	Categories Labels `json:"categories"`
}

// HandleList responds to GET /categories.
func (h *HTTPHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}

	labels, err := h.svc.Labels(r.Context())
	if err != nil {
		httperrors.RespondErr(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(listResponse{Success: true, Categories: labels}); err != nil {
		h.logger.Error().Err(err).Msg("encode categories")
	}
}
