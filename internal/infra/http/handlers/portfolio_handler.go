package handlers

import (
	"log"
	"net/http"

	"github.com/sitelab/sitelab-api/internal/entity"
	"github.com/sitelab/sitelab-api/internal/usecase"
)

type PortfolioHandler struct {
	Repo usecase.PortfolioRepositoryInterface
}

func NewPortfolioHandler(repo usecase.PortfolioRepositoryInterface) *PortfolioHandler {
	return &PortfolioHandler{Repo: repo}
}

// Handle is GET /api/portfolio[?featured=true].
func (h *PortfolioHandler) Handle(w http.ResponseWriter, r *http.Request) {
	featuredOnly := r.URL.Query().Get("featured") == "true"

	items, err := h.Repo.List(r.Context(), featuredOnly)
	if err != nil {
		log.Printf("❌ Failed to list portfolio items: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch portfolio")
		return
	}

	if items == nil {
		items = []*entity.PortfolioItem{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
