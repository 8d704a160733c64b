package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sitelab/sitelab-api/internal/entity"
	"github.com/sitelab/sitelab-api/internal/usecase"
)

type AdminLeadHandler struct {
	Repo usecase.LeadRepositoryInterface
}

func NewAdminLeadHandler(repo usecase.LeadRepositoryInterface) *AdminLeadHandler {
	return &AdminLeadHandler{Repo: repo}
}

// HandleList is GET /api/admin/leads?status=&limit=&offset=.
func (h *AdminLeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	opts := listOptionsFromQuery(r)

	if opts.Status != "" && !entity.IsValidLeadStatus(opts.Status) {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	leads, total, err := h.Repo.List(r.Context(), opts)
	if err != nil {
		log.Printf("❌ Failed to list leads: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch leads")
		return
	}

	if leads == nil {
		leads = []*entity.Lead{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"leads":  leads,
		"total":  total,
		"limit":  opts.Limit,
		"offset": opts.Offset,
	})
}

// HandleGet is GET /api/admin/leads/{id}.
func (h *AdminLeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.Repo.FindByID(r.Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}
	if err != nil {
		log.Printf("❌ Failed to fetch lead %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch lead")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"lead": lead})
}

// HandlePatch is PATCH /api/admin/leads/{id}. Only status is ever patched
// on a lead; transition legality stays the UI's concern.
func (h *AdminLeadHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Status *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if body.Status != nil && !entity.IsValidLeadStatus(*body.Status) {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	if _, err := h.Repo.FindByID(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Lead not found")
			return
		}
		log.Printf("❌ Failed to fetch lead %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to update lead")
		return
	}

	lead, err := h.Repo.Update(r.Context(), id, usecase.LeadUpdate{Status: body.Status})
	if err != nil {
		log.Printf("❌ Failed to update lead %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to update lead")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"lead": lead})
}

// HandleDelete is DELETE /api/admin/leads/{id}.
func (h *AdminLeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Repo.Delete(r.Context(), id)
	if errors.Is(err, entity.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Lead not found")
		return
	}
	if err != nil {
		log.Printf("❌ Failed to delete lead %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete lead")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func listOptionsFromQuery(r *http.Request) usecase.ListOptions {
	q := r.URL.Query()

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	offset, err := strconv.Atoi(q.Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return usecase.ListOptions{
		Status: q.Get("status"),
		Limit:  limit,
		Offset: offset,
	}
}
