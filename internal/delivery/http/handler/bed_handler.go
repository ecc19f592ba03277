package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"go-hostel-pms/internal/delivery/dto"
	"go-hostel-pms/internal/domain/entity"
	"go-hostel-pms/internal/usecase"
	"go-hostel-pms/pkg/response"
	"go-hostel-pms/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BedHandler struct {
	bedUsecase usecase.BedUsecase
	validator  *validator.CustomValidator
}

func NewBedHandler(bedUsecase usecase.BedUsecase, validator *validator.CustomValidator) *BedHandler {
	return &BedHandler{
		bedUsecase: bedUsecase,
		validator:  validator,
	}
}

// parseUUIDVar extracts and parses a UUID path variable.
func parseUUIDVar(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	return id, err == nil
}

// CreateBed handles bed creation
// @Summary Create a bed
// @Description Register a new bed in the inventory, starting clean
// @Tags Beds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBedRequest true "Create Bed Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /beds [post]
func (h *BedHandler) CreateBed(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bed, err := h.bedUsecase.CreateBed(r.Context(), &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Bed created successfully", bed)
}

// UpdateBed handles bed detail updates
// @Summary Update a bed
// @Description Update descriptive fields of a bed (not its status)
// @Tags Beds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bed ID"
// @Param request body dto.UpdateBedRequest true "Update Bed Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /beds/{id} [put]
func (h *BedHandler) UpdateBed(w http.ResponseWriter, r *http.Request) {
	bedID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid bed ID", nil)
		return
	}

	var req dto.UpdateBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bed, err := h.bedUsecase.UpdateBed(r.Context(), bedID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Bed updated successfully", bed)
}

// GetBed handles getting a single bed
// @Summary Get a bed
// @Tags Beds
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bed ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /beds/{id} [get]
func (h *BedHandler) GetBed(w http.ResponseWriter, r *http.Request) {
	bedID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid bed ID", nil)
		return
	}

	bed, err := h.bedUsecase.GetBed(r.Context(), bedID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Bed retrieved successfully", bed)
}

// ListBeds handles listing beds
// @Summary List beds
// @Description List all beds, optionally filtered by status
// @Tags Beds
// @Produce json
// @Security BearerAuth
// @Param status query string false "Bed status filter"
// @Success 200 {object} response.Response
// @Router /beds [get]
func (h *BedHandler) ListBeds(w http.ResponseWriter, r *http.Request) {
	status := entity.BedStatus(r.URL.Query().Get("status"))

	beds, err := h.bedUsecase.ListBeds(r.Context(), status)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Beds retrieved successfully", beds)
}

// MarkClean handles marking a bed as cleaned
// @Summary Mark a bed clean
// @Tags Beds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bed ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /beds/{id}/clean [post]
func (h *BedHandler) MarkClean(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, "Bed marked clean", h.bedUsecase.MarkClean)
}

// MarkDirty handles marking a bed as dirty
// @Summary Mark a bed dirty
// @Tags Beds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bed ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /beds/{id}/dirty [post]
func (h *BedHandler) MarkDirty(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, "Bed marked dirty", h.bedUsecase.MarkDirty)
}

// Block handles taking a bed out of inventory
// @Summary Block a bed
// @Tags Beds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bed ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /beds/{id}/block [post]
func (h *BedHandler) Block(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, "Bed blocked", h.bedUsecase.Block)
}

// Unblock handles returning a blocked bed to inventory
// @Summary Unblock a bed
// @Tags Beds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bed ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /beds/{id}/unblock [post]
func (h *BedHandler) Unblock(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, "Bed unblocked", h.bedUsecase.Unblock)
}

// CancelReservation handles releasing a reservation hold
// @Summary Cancel a bed reservation
// @Tags Beds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bed ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /beds/{id}/cancel-reservation [post]
func (h *BedHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, "Reservation cancelled", h.bedUsecase.CancelReservation)
}

// action is the shared body-parse-then-delegate path for the simple bed
// transitions that only take optional notes.
func (h *BedHandler) action(w http.ResponseWriter, r *http.Request, message string, fn func(ctx context.Context, bedID uuid.UUID, req *dto.BedActionRequest) (*dto.BedResponse, error)) {
	bedID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid bed ID", nil)
		return
	}

	var req dto.BedActionRequest
	json.NewDecoder(r.Body).Decode(&req)

	bed, err := fn(r.Context(), bedID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, message, bed)
}

// StartMaintenance handles putting a bed into maintenance
// @Summary Start maintenance on a bed
// @Tags Beds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bed ID"
// @Param request body dto.MaintenanceRequest true "Maintenance Request"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /beds/{id}/maintenance [post]
func (h *BedHandler) StartMaintenance(w http.ResponseWriter, r *http.Request) {
	bedID, ok := parseUUIDVar(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid bed ID", nil)
		return
	}

	var req dto.MaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bed, err := h.bedUsecase.StartMaintenance(r.Context(), bedID, &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Bed placed in maintenance", bed)
}

// BulkMarkClean handles marking several beds clean at once
// @Summary Bulk mark beds clean
// @Description Mark a batch of beds clean, reporting per-bed results
// @Tags Beds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkCleanRequest true "Bulk Clean Request"
// @Success 200 {object} response.Response
// @Router /beds/bulk-clean [post]
func (h *BedHandler) BulkMarkClean(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkCleanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.bedUsecase.BulkMarkClean(r.Context(), &req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Bulk clean processed", result)
}

// HousekeepingBoard handles the housekeeping view
// @Summary Housekeeping board
// @Description List dirty beds with how long each has waited since checkout
// @Tags Beds
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /beds/housekeeping [get]
func (h *BedHandler) HousekeepingBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.bedUsecase.HousekeepingBoard(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Housekeeping board retrieved", board)
}

// StatusBoard handles the live bed status view
// @Summary Bed status board
// @Description Current status of every bed from the cached snapshot
// @Tags Beds
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /beds/status-board [get]
func (h *BedHandler) StatusBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.bedUsecase.StatusBoard(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Status board retrieved", board)
}
