package handlers

import (
	"errors"
	"net/http"

	"github.com/7kevin24/ZJU-SFL/services"
	"github.com/go-chi/chi/v5"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// @Summary Полное расписание лиги
// @Tags schedule
// @Produce json
// @Success 200 {object} object{schedule=[]models.Match}
// @Router /schedule [get]
func (h *MatchHandler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.ListSchedule(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"schedule": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// @Summary Несыгранные матчи (для формы ввода)
// @Tags schedule
// @Produce json
// @Success 200 {object} object{pending=[]models.Match}
// @Router /schedule/pending [get]
func (h *MatchHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.PendingMatches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"pending": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// @Summary Записать результат матча
// @Description Три обязательные битвы (Vanguard, Center, General) плюс
// @Description опциональная Extra при счёте 20-20. Повторная отправка
// @Description полностью заменяет прежние строки лога матча.
// @Tags matches
// @Accept json
// @Produce json
// @Param matchID path string true "ID матча из расписания"
// @Param input body services.RecordMatchInput true "Результаты суб-битв"
// @Success 200 {object} services.RecordMatchResult
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Security BearerAuth
// @Router /matches/{matchID}/result [post]
func (h *MatchHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")
	if matchID == "" {
		badRequestResponse(w, r, errors.New("matchID is required"))
		return
	}

	var input services.RecordMatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.MatchID = matchID

	result, err := h.matchService.RecordMatch(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// @Summary Сгенерировать круговое расписание по списку команд
// @Tags schedule
// @Produce json
// @Success 201 {object} object{schedule=[]models.Match}
// @Failure 409 {object} object{error=string}
// @Security BearerAuth
// @Router /schedule/generate [post]
func (h *MatchHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.GenerateSchedule(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"schedule": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
