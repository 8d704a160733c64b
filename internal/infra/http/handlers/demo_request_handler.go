package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sitelab/sitelab-api/internal/infra/http/middleware"
	"github.com/sitelab/sitelab-api/internal/usecase"
)

type DemoRequestHandler struct {
	SubmitUC    *usecase.SubmitDemoRequestUseCase
	rateLimiter *RateLimiter
}

func NewDemoRequestHandler(uc *usecase.SubmitDemoRequestUseCase) *DemoRequestHandler {
	return &DemoRequestHandler{
		SubmitUC:    uc,
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
}

// Handle is POST /api/demo-requests.
func (h *DemoRequestHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.SubmitDemoRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.SubmitUC.Execute(r.Context(), input)
	if err != nil {
		writeSubmissionError(w, err, "Failed to submit demo request. Please try again.")
		return
	}

	middleware.RecordDemoRequestReceived()
	writeJSON(w, http.StatusCreated, output)
}
