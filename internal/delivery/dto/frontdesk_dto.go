package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CheckInRequest struct {
	BedID    uuid.UUID  `json:"bed_id" validate:"required"`
	Guest    GuestInput `json:"guest" validate:"required"`
	CheckIn  string     `json:"check_in" validate:"required"`
	CheckOut string     `json:"check_out" validate:"required"`
	Source   string     `json:"source" validate:"omitempty,max=100"`
	Notes    string     `json:"notes"`
}

type CreateBookingRequest struct {
	BedID    uuid.UUID  `json:"bed_id" validate:"required"`
	Guest    GuestInput `json:"guest" validate:"required"`
	CheckIn  string     `json:"check_in" validate:"required"`
	CheckOut string     `json:"check_out" validate:"required"`
	Source   string     `json:"source" validate:"omitempty,max=100"`
	Notes    string     `json:"notes"`
}

type CheckOutRequest struct {
	PaymentAmount *decimal.Decimal `json:"payment_amount,omitempty"`
	PaymentMethod string           `json:"payment_method" validate:"omitempty,max=50"`
	MarkClean     bool             `json:"mark_clean"`
}

type TransferRequest struct {
	FromBedID uuid.UUID `json:"from_bed_id" validate:"required"`
	ToBedID   uuid.UUID `json:"to_bed_id" validate:"required"`
	Notes     string    `json:"notes"`
}

type ExtendStayRequest struct {
	NewCheckOut string `json:"new_check_out" validate:"required"`
}

type NoShowRequest struct {
	Penalty *decimal.Decimal `json:"penalty,omitempty"`
}

type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Method      string          `json:"method" validate:"omitempty,max=50"`
	Description string          `json:"description"`
}

// Response DTOs

type BookingResponse struct {
	ID               uuid.UUID       `json:"id"`
	GuestID          uuid.UUID       `json:"guest_id"`
	BedID            uuid.UUID       `json:"bed_id"`
	CheckIn          string          `json:"check_in"`
	CheckOut         string          `json:"check_out"`
	Nights           int             `json:"nights"`
	Total            decimal.Decimal `json:"total"`
	Status           string          `json:"status"`
	Source           string          `json:"source"`
	ConfirmationCode string          `json:"confirmation_code"`
	Notes            string          `json:"notes,omitempty"`
	Guest            *GuestResponse  `json:"guest,omitempty"`
	Bed              *BedResponse    `json:"bed,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

type CheckInResponse struct {
	Booking BookingResponse `json:"booking"`
	Bed     BedResponse     `json:"bed"`
}

type CheckOutResponse struct {
	Booking BookingResponse `json:"booking"`
	Bed     BedResponse     `json:"bed"`
	Balance decimal.Decimal `json:"balance"`
}

type TransferResponse struct {
	Booking BookingResponse `json:"booking"`
	FromBed BedResponse     `json:"from_bed"`
	ToBed   BedResponse     `json:"to_bed"`
}

type ExtendStayResponse struct {
	Booking     BookingResponse `json:"booking"`
	AddedNights int             `json:"added_nights"`
	AddedCharge decimal.Decimal `json:"added_charge"`
}

type NoShowResponse struct {
	Booking BookingResponse  `json:"booking"`
	Penalty *decimal.Decimal `json:"penalty,omitempty"`
}
