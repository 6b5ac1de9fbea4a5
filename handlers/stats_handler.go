package handlers

import (
	"net/http"

	"github.com/7kevin24/ZJU-SFL/services"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// @Summary Статистика по персонажам, игрокам и позициям
// @Tags stats
// @Produce json
// @Success 200 {object} models.LeagueStats
// @Router /stats [get]
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Stats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
