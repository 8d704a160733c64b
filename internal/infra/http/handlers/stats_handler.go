package handlers

import (
	"log"
	"net/http"

	"github.com/sitelab/sitelab-api/internal/usecase"
)

type StatsHandler struct {
	StatsUC *usecase.GetStatsUseCase
}

func NewStatsHandler(uc *usecase.GetStatsUseCase) *StatsHandler {
	return &StatsHandler{StatsUC: uc}
}

// Handle is GET /api/admin/stats.
func (h *StatsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	output, err := h.StatsUC.Execute(r.Context())
	if err != nil {
		log.Printf("❌ Failed to fetch stats: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}

	writeJSON(w, http.StatusOK, output)
}
