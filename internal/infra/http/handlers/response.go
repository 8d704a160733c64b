package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sitelab/sitelab-api/internal/infra/http/middleware"
	"github.com/sitelab/sitelab-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// validationDetails mirrors the flattened shape the form clients consume:
// {"fieldErrors": {field: [messages]}, "formErrors": []}.
type validationDetails struct {
	FieldErrors map[string][]string `json:"fieldErrors"`
	FormErrors  []string            `json:"formErrors"`
}

func writeValidationError(w http.ResponseWriter, errs usecase.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error": "Validation failed",
		"details": validationDetails{
			FieldErrors: errs.FieldErrors(),
			FormErrors:  []string{},
		},
	})
}

// writeSubmissionError maps intake pipeline failures. Captcha and
// validation problems are the client's; everything else is a generic 500
// with no detail leaked.
func writeSubmissionError(w http.ResponseWriter, err error, fallback string) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case "CAPTCHA_REQUIRED":
			middleware.RecordCaptchaRejection("missing")
		case "CAPTCHA_FAILED":
			middleware.RecordCaptchaRejection("failed")
		}
		writeError(w, http.StatusBadRequest, domainErr.Message)
		return
	}

	var validationErrs usecase.ValidationErrors
	if errors.As(err, &validationErrs) {
		writeValidationError(w, validationErrs)
		return
	}

	log.Printf("❌ %s: %v", fallback, err)
	writeError(w, http.StatusInternalServerError, fallback)
}
