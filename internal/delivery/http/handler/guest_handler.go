package handler

import (
	"encoding/json"
	"net/http"

	"go-hostel-pms/internal/delivery/dto"
	"go-hostel-pms/internal/usecase"
	"go-hostel-pms/pkg/response"
	"go-hostel-pms/pkg/validator"
)

type GuestHandler struct {
	guestUsecase usecase.GuestUsecase
	validator    *validator.CustomValidator
}

func NewGuestHandler(guestUsecase usecase.GuestUsecase, validator *validator.CustomValidator) *GuestHandler {
	return &GuestHandler{
		guestUsecase: guestUsecase,
		validator:    validator,
	}
}

// ListGuests handles listing guests
// @Summary List guests
// @Description List guests, optionally filtered by name or document number
// @Tags Guests
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or document number search"
// @Success 200 {object} response.Response
// @Router /guests [get]
func (h *GuestHandler) ListGuests(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	guests, err := h.guestUsecase.ListGuests(r.Context(), search)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Guests retrieved successfully", guests)
}

// GetGuest handles getting a guest with stay history
// @Summary Get a guest
// @Description Get a guest with their bookings and outstanding balance
// @Tags Guests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /guests/{id} [get]
func (h *GuestHandler) GetGuest(w http.ResponseWriter, r *http.Request) {
	guestID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid guest ID", nil)
		return
	}

	guest, err := h.guestUsecase.GetGuest(r.Context(), guestID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Guest retrieved successfully", guest)
}

// UpdateGuest handles editing guest contact details
// @Summary Update a guest
// @Description Update contact details of a guest (identity fields are fixed)
// @Tags Guests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Update Guest Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /guests/{id} [put]
func (h *GuestHandler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	guestID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid guest ID", nil)
		return
	}

	var req dto.UpdateGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	guest, err := h.guestUsecase.UpdateGuest(r.Context(), guestID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Guest updated successfully", guest)
}
