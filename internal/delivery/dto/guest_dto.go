package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GuestInput identifies and describes a guest at check-in time. An existing
// guest is matched by document number; otherwise one is created.
type GuestInput struct {
	FullName       string `json:"full_name" validate:"required,max=255"`
	DocumentNumber string `json:"document_number" validate:"required,max=100"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty,max=50"`
	Email          string `json:"email" validate:"omitempty,email"`
	Nationality    string `json:"nationality" validate:"omitempty,max=100"`
}

type UpdateGuestRequest struct {
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=50"`
	Email       string `json:"email" validate:"omitempty,email"`
	Nationality string `json:"nationality" validate:"omitempty,max=100"`
	Notes       string `json:"notes"`
}

// Response DTOs

type GuestResponse struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	DocumentNumber string    `json:"document_number"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	Email          string    `json:"email,omitempty"`
	Nationality    string    `json:"nationality,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type GuestListResponse struct {
	Guests []GuestResponse `json:"guests"`
	Total  int             `json:"total"`
}

type GuestDetailResponse struct {
	Guest              GuestResponse     `json:"guest"`
	Bookings           []BookingResponse `json:"bookings"`
	OutstandingBalance decimal.Decimal   `json:"outstanding_balance"`
}
