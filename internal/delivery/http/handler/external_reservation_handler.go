package handler

import (
	"net/http"

	"go-hostel-pms/internal/usecase"
	"go-hostel-pms/pkg/response"
)

type ExternalReservationHandler struct {
	externalUsecase usecase.ExternalReservationUsecase
}

func NewExternalReservationHandler(externalUsecase usecase.ExternalReservationUsecase) *ExternalReservationHandler {
	return &ExternalReservationHandler{externalUsecase: externalUsecase}
}

// ListForBed handles listing OTA reservations on a bed
// @Summary List external reservations
// @Description List synced OTA reservations on a bed for a date range
// @Tags ExternalReservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bed ID"
// @Param from query string false "Range start (YYYY-MM-DD, default today)"
// @Param to query string false "Range end (YYYY-MM-DD, default +3 months)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /beds/{id}/external-reservations [get]
func (h *ExternalReservationHandler) ListForBed(w http.ResponseWriter, r *http.Request) {
	bedID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid bed ID", nil)
		return
	}

	query := r.URL.Query()
	reservations, err := h.externalUsecase.ListForBed(r.Context(), bedID, query.Get("from"), query.Get("to"))
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "External reservations retrieved successfully", reservations)
}
