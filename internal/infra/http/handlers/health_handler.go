package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"
)

type HealthHandler struct {
	DB             *sql.DB
	SMTPConfigured bool
	CaptchaSecret  bool
	StartTime      time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(db *sql.DB, smtpConfigured, captchaConfigured bool) *HealthHandler {
	return &HealthHandler{
		DB:             db,
		SMTPConfigured: smtpConfigured,
		CaptchaSecret:  captchaConfigured,
		StartTime:      time.Now(),
	}
}

// Handle is GET /health.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.DB != nil {
		if err := h.DB.Ping(); err != nil {
			deps["database"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["database"] = "healthy"
		}
	} else {
		deps["database"] = "not configured"
	}

	if h.SMTPConfigured {
		deps["smtp"] = "configured"
	} else {
		deps["smtp"] = "not configured"
	}

	if h.CaptchaSecret {
		deps["captcha"] = "configured"
	} else {
		deps["captcha"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	if status == "degraded" {
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
