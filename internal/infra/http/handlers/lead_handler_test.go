package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sitelab/sitelab-api/internal/entity"
	"github.com/sitelab/sitelab-api/internal/infra/http/handlers"
	"github.com/sitelab/sitelab-api/internal/usecase"
)

func newLeadHandler(repo usecase.LeadRepositoryInterface, captchaOK bool) *handlers.LeadHandler {
	uc := usecase.NewSubmitLeadUseCase(repo, stubCaptcha{verdict: captchaOK}, nil)
	return handlers.NewLeadHandler(uc)
}

func TestLeadSubmission(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	body := strings.NewReader(`{"name":"Jane Doe","email":"jane@example.com","captchaToken":"token-123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/leads", body)
	rec := httptest.NewRecorder()
	newLeadHandler(mockRepo, true).Handle(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp usecase.SubmitLeadOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.LeadID)
}

func TestLeadSubmissionMissingCaptcha(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	body := strings.NewReader(`{"name":"Jane Doe","email":"jane@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/leads", body)
	rec := httptest.NewRecorder()
	newLeadHandler(mockRepo, true).Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Captcha verification required"}`, rec.Body.String())
	mockRepo.AssertNotCalled(t, "Create")
}

func TestLeadSubmissionCaptchaFailed(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	body := strings.NewReader(`{"name":"Jane Doe","email":"jane@example.com","captchaToken":"bad"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/leads", body)
	rec := httptest.NewRecorder()
	newLeadHandler(mockRepo, false).Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Captcha verification failed"}`, rec.Body.String())
}

func TestLeadSubmissionValidationDetails(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	body := strings.NewReader(`{"name":"J","email":"nope","captchaToken":"token-123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/leads", body)
	rec := httptest.NewRecorder()
	newLeadHandler(mockRepo, true).Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error   string `json:"error"`
		Details struct {
			FieldErrors map[string][]string `json:"fieldErrors"`
			FormErrors  []string            `json:"formErrors"`
		} `json:"details"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp.Error)
	assert.Contains(t, resp.Details.FieldErrors["name"], "Name must be at least 2 characters")
	assert.Contains(t, resp.Details.FieldErrors["email"], "Please enter a valid email address")
	assert.NotNil(t, resp.Details.FormErrors)
}

func TestLeadSubmissionInvalidJSON(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	newLeadHandler(mockRepo, true).Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON"}`, rec.Body.String())
}

func TestLeadSubmissionDatabaseFailure(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	body := strings.NewReader(`{"name":"Jane Doe","email":"jane@example.com","captchaToken":"token-123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/leads", body)
	rec := httptest.NewRecorder()
	newLeadHandler(mockRepo, true).Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to submit lead. Please try again."}`, rec.Body.String())
}

func TestLeadSourceFromReferer(t *testing.T) {
	tests := []struct {
		name       string
		referer    string
		bodySource string
		expected   string
	}{
		{"contact page wins", "https://sitelab.com/contact", "homepage_cta", "contact_page"},
		{"homepage anchor", "https://sitelab.com/#pricing", "", "homepage_cta"},
		{"body source used when referer is neutral", "https://sitelab.com/services", "partner_referral", "partner_referral"},
		{"default", "", "", "website"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockLeadRepository)
			mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(lead *entity.Lead) bool {
				return lead.Source == tt.expected
			})).Return(nil)

			payload := `{"name":"Jane Doe","email":"jane@example.com","source":"` + tt.bodySource + `","captchaToken":"token-123"}`
			req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(payload))
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			rec := httptest.NewRecorder()
			newLeadHandler(mockRepo, true).Handle(rec, req)

			assert.Equal(t, http.StatusCreated, rec.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLeadSubmissionRateLimited(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	h := newLeadHandler(mockRepo, true)

	var lastCode int
	for i := 0; i < 11; i++ {
		body := strings.NewReader(`{"name":"Jane Doe","email":"jane@example.com","captchaToken":"token-123"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/leads", body)
		rec := httptest.NewRecorder()
		h.Handle(rec, req)
		lastCode = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}
