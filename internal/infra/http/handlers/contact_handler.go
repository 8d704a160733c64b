package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sitelab/sitelab-api/internal/infra/http/middleware"
	"github.com/sitelab/sitelab-api/internal/usecase"
)

type ContactHandler struct {
	SubmitUC    *usecase.SubmitContactUseCase
	rateLimiter *RateLimiter
}

func NewContactHandler(uc *usecase.SubmitContactUseCase) *ContactHandler {
	return &ContactHandler{
		SubmitUC:    uc,
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
}

// Handle is POST /api/contact. Contact messages are never persisted;
// success only means the submission was accepted for delivery.
func (h *ContactHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.SubmitContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.SubmitUC.Execute(r.Context(), input)
	if err != nil {
		writeSubmissionError(w, err, "Failed to send message. Please try again.")
		return
	}

	middleware.RecordContactMessage()
	writeJSON(w, http.StatusOK, output)
}
