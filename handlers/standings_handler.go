package handlers

import (
	"net/http"

	"github.com/7kevin24/ZJU-SFL/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(standingsService services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService}
}

// @Summary Турнирная таблица
// @Description Пересчитывается из полной истории матчей при каждом запросе.
// @Tags standings
// @Produce json
// @Success 200 {object} object{standings=[]models.StandingsRow}
// @Router /standings [get]
func (h *StandingsHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.standingsService.Standings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
