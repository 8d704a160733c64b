package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sitelab/sitelab-api/internal/entity"
	"github.com/sitelab/sitelab-api/internal/usecase"
)

type AdminDemoRequestHandler struct {
	Repo usecase.DemoRequestRepositoryInterface
}

func NewAdminDemoRequestHandler(repo usecase.DemoRequestRepositoryInterface) *AdminDemoRequestHandler {
	return &AdminDemoRequestHandler{Repo: repo}
}

// HandleList is GET /api/admin/demo-requests?status=&limit=&offset=.
func (h *AdminDemoRequestHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	opts := listOptionsFromQuery(r)

	if opts.Status != "" && !entity.IsValidDemoStatus(opts.Status) {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	requests, total, err := h.Repo.List(r.Context(), opts)
	if err != nil {
		log.Printf("❌ Failed to list demo requests: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch demo requests")
		return
	}

	if requests == nil {
		requests = []*entity.DemoRequest{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"demoRequests": requests,
		"total":        total,
		"limit":        opts.Limit,
		"offset":       opts.Offset,
	})
}

// HandleGet is GET /api/admin/demo-requests/{id}.
func (h *AdminDemoRequestHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := h.Repo.FindByID(r.Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Demo request not found")
		return
	}
	if err != nil {
		log.Printf("❌ Failed to fetch demo request %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch demo request")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"demoRequest": req})
}

// HandlePatch is PATCH /api/admin/demo-requests/{id}. Setting
// status=DELIVERED together with a demoUrl is the combined delivery
// operation: one update that also stamps followUpSentAt. Anything else is
// a plain merge of the provided fields.
func (h *AdminDemoRequestHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Status  *string `json:"status"`
		DemoURL *string `json:"demoUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if body.Status != nil && !entity.IsValidDemoStatus(*body.Status) {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	if _, err := h.Repo.FindByID(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Demo request not found")
			return
		}
		log.Printf("❌ Failed to fetch demo request %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to update demo request")
		return
	}

	update := usecase.DemoRequestUpdate{
		Status:  body.Status,
		DemoURL: body.DemoURL,
	}
	if body.Status != nil && *body.Status == entity.DemoStatusDelivered &&
		body.DemoURL != nil && *body.DemoURL != "" {
		now := time.Now().UTC()
		update.FollowUpSentAt = &now
	}

	req, err := h.Repo.Update(r.Context(), id, update)
	if err != nil {
		log.Printf("❌ Failed to update demo request %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to update demo request")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"demoRequest": req})
}

// HandleDelete is DELETE /api/admin/demo-requests/{id}.
func (h *AdminDemoRequestHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Repo.Delete(r.Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Demo request not found")
		return
	}
	if err != nil {
		log.Printf("❌ Failed to delete demo request %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete demo request")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
