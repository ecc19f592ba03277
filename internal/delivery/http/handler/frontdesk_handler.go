package handler

import (
	"encoding/json"
	"net/http"

	"go-hostel-pms/internal/delivery/dto"
	"go-hostel-pms/internal/domain/entity"
	"go-hostel-pms/internal/usecase"
	"go-hostel-pms/pkg/response"
	"go-hostel-pms/pkg/validator"
)

type FrontDeskHandler struct {
	frontDeskUsecase usecase.FrontDeskUsecase
	validator        *validator.CustomValidator
}

func NewFrontDeskHandler(frontDeskUsecase usecase.FrontDeskUsecase, validator *validator.CustomValidator) *FrontDeskHandler {
	return &FrontDeskHandler{
		frontDeskUsecase: frontDeskUsecase,
		validator:        validator,
	}
}

// Reserve handles holding a bed for a guest
// @Summary Reserve a bed
// @Description Hold a clean bed for an expected guest without opening a stay
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bed ID"
// @Param request body dto.ReserveBedRequest true "Reserve Bed Request"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /beds/{id}/reserve [post]
func (h *FrontDeskHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	bedID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid bed ID", nil)
		return
	}

	var req dto.ReserveBedRequest
	json.NewDecoder(r.Body).Decode(&req)

	bed, err := h.frontDeskUsecase.Reserve(r.Context(), bedID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Bed reserved successfully", bed)
}

// CheckIn handles a walk-in check-in
// @Summary Check in a guest
// @Description Seat a guest on a bed and open an active stay with its charge
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckInRequest true "Check-In Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /checkin [post]
func (h *FrontDeskHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.frontDeskUsecase.CheckIn(r.Context(), &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Guest checked in successfully", result)
}

// CreateBooking handles creating a future booking
// @Summary Create a booking
// @Description Register a confirmed future stay, holding the bed calendar
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings [post]
func (h *FrontDeskHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.frontDeskUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

// CheckInBooking handles activating a booking on arrival
// @Summary Check in a booking
// @Description Activate a confirmed booking when the guest arrives
// @Tags FrontDesk
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id}/checkin [post]
func (h *FrontDeskHandler) CheckInBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	result, err := h.frontDeskUsecase.CheckInBooking(r.Context(), bookingID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Guest checked in successfully", result)
}

// CheckOut handles closing a stay
// @Summary Check out a guest
// @Description Close an active stay, optionally taking a payment; an unpaid
// balance is reported but never blocks the checkout
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body dto.CheckOutRequest true "Check-Out Request"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id}/checkout [post]
func (h *FrontDeskHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.CheckOutRequest
	json.NewDecoder(r.Body).Decode(&req)

	result, err := h.frontDeskUsecase.CheckOut(r.Context(), bookingID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Guest checked out successfully", result)
}

// Transfer handles moving a stay to another bed
// @Summary Transfer a guest
// @Description Move the active stay from one bed to another atomically
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TransferRequest true "Transfer Request"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /transfers [post]
func (h *FrontDeskHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.frontDeskUsecase.Transfer(r.Context(), &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Guest transferred successfully", result)
}

// ExtendStay handles pushing a checkout date
// @Summary Extend a stay
// @Description Push the checkout date of an active stay, charging the extra nights
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body dto.ExtendStayRequest true "Extend Stay Request"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id}/extend [post]
func (h *FrontDeskHandler) ExtendStay(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.ExtendStayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.frontDeskUsecase.ExtendStay(r.Context(), bookingID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Stay extended successfully", result)
}

// MarkNoShow handles flagging a no-show
// @Summary Mark a booking as no-show
// @Description Flag a booking whose guest never arrived, releasing the bed hold
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id}/no-show [post]
func (h *FrontDeskHandler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.NoShowRequest
	json.NewDecoder(r.Body).Decode(&req)

	result, err := h.frontDeskUsecase.MarkNoShow(r.Context(), bookingID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking marked as no-show", result)
}

// CancelBooking handles cancelling a future booking
// @Summary Cancel a booking
// @Tags FrontDesk
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id}/cancel [post]
func (h *FrontDeskHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.frontDeskUsecase.CancelBooking(r.Context(), bookingID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", booking)
}

// RecordPayment handles taking a payment against a booking
// @Summary Record a payment
// @Tags FrontDesk
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body dto.RecordPaymentRequest true "Record Payment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /bookings/{id}/payments [post]
func (h *FrontDeskHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	transaction, err := h.frontDeskUsecase.RecordPayment(r.Context(), bookingID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Payment recorded successfully", transaction)
}

// GetBooking handles getting a single booking
// @Summary Get a booking
// @Tags FrontDesk
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookings/{id} [get]
func (h *FrontDeskHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.frontDeskUsecase.GetBooking(r.Context(), bookingID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

// ListBookings handles listing bookings
// @Summary List bookings
// @Description List bookings, filtered by status or defaulting to the ones
// that block availability
// @Tags FrontDesk
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status filter"
// @Success 200 {object} response.Response
// @Router /bookings [get]
func (h *FrontDeskHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	status := entity.BookingStatus(r.URL.Query().Get("status"))

	bookings, err := h.frontDeskUsecase.ListBookings(r.Context(), status)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}
