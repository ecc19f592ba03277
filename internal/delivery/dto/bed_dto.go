package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateBedRequest struct {
	Name         string          `json:"name" validate:"required,max=100"`
	Room         string          `json:"room" validate:"required,max=100"`
	NightlyPrice decimal.Decimal `json:"nightly_price"`
	Notes        string          `json:"notes"`
}

type UpdateBedRequest struct {
	Name         string           `json:"name" validate:"omitempty,max=100"`
	Room         string           `json:"room" validate:"omitempty,max=100"`
	NightlyPrice *decimal.Decimal `json:"nightly_price,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

type BedActionRequest struct {
	Notes string `json:"notes"`
}

type MaintenanceRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type ReserveBedRequest struct {
	GuestID *uuid.UUID `json:"guest_id,omitempty"`
	Until   string     `json:"until,omitempty"`
	Notes   string     `json:"notes"`
}

type BulkCleanRequest struct {
	BedIDs []uuid.UUID `json:"bed_ids" validate:"required,min=1"`
}

// Response DTOs

type BedResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Room               string          `json:"room"`
	NightlyPrice       decimal.Decimal `json:"nightly_price"`
	Notes              string          `json:"notes,omitempty"`
	Status             string          `json:"status"`
	GuestID            *uuid.UUID      `json:"guest_id,omitempty"`
	Guest              *GuestResponse  `json:"guest,omitempty"`
	ReservedForGuestID *uuid.UUID      `json:"reserved_for_guest_id,omitempty"`
	ReservedUntil      *time.Time      `json:"reserved_until,omitempty"`
	MaintenanceReason  string          `json:"maintenance_reason,omitempty"`
	LastCleanedAt      *time.Time      `json:"last_cleaned_at,omitempty"`
	LastCleanedBy      string          `json:"last_cleaned_by,omitempty"`
	LastStatusChange   time.Time       `json:"last_status_change"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type BedListResponse struct {
	Beds  []BedResponse `json:"beds"`
	Total int           `json:"total"`
}

// BulkCleanItemResult reports the outcome for one bed in a bulk clean. A batch
// is not all-or-nothing: independent beds succeed or fail on their own.
type BulkCleanItemResult struct {
	BedID     uuid.UUID `json:"bed_id"`
	Succeeded bool      `json:"succeeded"`
	Error     string    `json:"error,omitempty"`
}

type BulkCleanResponse struct {
	Results   []BulkCleanItemResult `json:"results"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
}

// HousekeepingItem is one dirty bed on the housekeeping board, ranked by how
// long it has been waiting since the last checkout.
type HousekeepingItem struct {
	Bed          BedResponse `json:"bed"`
	DirtySeconds *int64      `json:"dirty_seconds,omitempty"`
	LastCheckout *time.Time  `json:"last_checkout,omitempty"`
}

type HousekeepingBoardResponse struct {
	Items []HousekeepingItem `json:"items"`
	Total int                `json:"total"`
}

type StatusBoardResponse struct {
	Statuses map[string]string `json:"statuses"`
}
