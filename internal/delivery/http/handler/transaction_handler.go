package handler

import (
	"encoding/json"
	"net/http"

	"go-hostel-pms/internal/delivery/dto"
	"go-hostel-pms/internal/usecase"
	"go-hostel-pms/pkg/response"
	"go-hostel-pms/pkg/validator"
)

type TransactionHandler struct {
	transactionUsecase usecase.TransactionUsecase
	validator          *validator.CustomValidator
}

func NewTransactionHandler(transactionUsecase usecase.TransactionUsecase, validator *validator.CustomValidator) *TransactionHandler {
	return &TransactionHandler{
		transactionUsecase: transactionUsecase,
		validator:          validator,
	}
}

// ListForBooking handles listing the financial trail of a booking
// @Summary List booking transactions
// @Description List all charges, payments and refunds with the running balance
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /bookings/{id}/transactions [get]
func (h *TransactionHandler) ListForBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	transactions, err := h.transactionUsecase.ListForBooking(r.Context(), bookingID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Transactions retrieved successfully", transactions)
}

// RecordCharge handles adding an extra charge
// @Summary Record a charge
// @Description Add an extra charge (laundry, damages, late checkout) to a booking
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body dto.RecordChargeRequest true "Record Charge Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /bookings/{id}/charges [post]
func (h *TransactionHandler) RecordCharge(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.RecordChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	transaction, err := h.transactionUsecase.RecordCharge(r.Context(), bookingID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Charge recorded successfully", transaction)
}

// RecordRefund handles refunding a payment
// @Summary Record a refund
// @Description Offset an earlier charge or payment; the original row is never edited
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body dto.RecordRefundRequest true "Record Refund Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /bookings/{id}/refunds [post]
func (h *TransactionHandler) RecordRefund(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.RecordRefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	transaction, err := h.transactionUsecase.RecordRefund(r.Context(), bookingID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Refund recorded successfully", transaction)
}
