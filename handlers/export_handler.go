package handlers

import (
	"net/http"

	"github.com/7kevin24/ZJU-SFL/services"
)

type ExportHandler struct {
	exportService services.ExportService
}

func NewExportHandler(exportService services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// @Summary Выгрузить CSV-снимок всех таблиц в объектное хранилище
// @Tags export
// @Produce json
// @Success 201 {object} object{exported=[]services.ExportedFile}
// @Security BearerAuth
// @Router /export [post]
func (h *ExportHandler) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	if h.exportService == nil {
		errorResponse(w, r, http.StatusNotImplemented, "snapshot export is not configured")
		return
	}

	exported, err := h.exportService.ExportSnapshot(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"exported": exported}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
