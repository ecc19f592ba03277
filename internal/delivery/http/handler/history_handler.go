package handler

import (
	"net/http"
	"strconv"

	"go-hostel-pms/internal/usecase"
	"go-hostel-pms/pkg/response"
)

type HistoryHandler struct {
	historyUsecase usecase.HistoryUsecase
}

func NewHistoryHandler(historyUsecase usecase.HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{historyUsecase: historyUsecase}
}

// ListForBed handles listing the audit trail of a bed
// @Summary List bed history
// @Description List status transitions of a bed, newest first
// @Tags History
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bed ID"
// @Param limit query int false "Page size (default 50, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /beds/{id}/history [get]
func (h *HistoryHandler) ListForBed(w http.ResponseWriter, r *http.Request) {
	bedID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid bed ID", nil)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	entries, err := h.historyUsecase.ListForBed(r.Context(), bedID, limit, offset)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Bed history retrieved successfully", entries)
}
