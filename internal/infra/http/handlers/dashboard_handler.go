package handlers

import (
	"net/http"

	"github.com/ethiocodes/nexora/internal/usecase"
)

type DashboardHandler struct {
	stats *usecase.StatsUseCase
}

func NewDashboardHandler(stats *usecase.StatsUseCase) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.stats.Dashboard(r.Context()))
}
