package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/sitelab/sitelab-api/internal/infra/http/middleware"
	"github.com/sitelab/sitelab-api/internal/usecase"
)

type LeadHandler struct {
	SubmitUC    *usecase.SubmitLeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(uc *usecase.SubmitLeadUseCase) *LeadHandler {
	return &LeadHandler{
		SubmitUC:    uc,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

// Handle is POST /api/leads.
func (h *LeadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.SubmitLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	input.Source = leadSource(r, input.Source)

	output, err := h.SubmitUC.Execute(r.Context(), input)
	if err != nil {
		writeSubmissionError(w, err, "Failed to submit lead. Please try again.")
		return
	}

	middleware.RecordLeadCaptured()
	writeJSON(w, http.StatusCreated, output)
}

// leadSource classifies the acquisition channel from the Referer when the
// form didn't say where it lives.
func leadSource(r *http.Request, bodySource string) string {
	referer := r.Header.Get("Referer")
	if strings.Contains(referer, "/contact") {
		return "contact_page"
	}
	if strings.Contains(referer, "/#") {
		return "homepage_cta"
	}
	if bodySource != "" {
		return bodySource
	}
	return "website"
}
