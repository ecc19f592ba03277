package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type RecordChargeRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"required,max=255"`
}

type RecordRefundRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Method      string          `json:"method" validate:"omitempty,max=50"`
	Description string          `json:"description" validate:"omitempty,max=255"`
}

// Response DTOs

type TransactionResponse struct {
	ID          int64           `json:"id"`
	BookingID   uuid.UUID       `json:"booking_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Balance      decimal.Decimal       `json:"balance"`
	Total        int                   `json:"total"`
}
