package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of money event
type TransactionType string

const (
	TransactionTypeCharge  TransactionType = "charge"
	TransactionTypePayment TransactionType = "payment"
	TransactionTypeRefund  TransactionType = "refund"
)

// Transaction is an immutable money event tied to a stay. Rows are never
// updated or deleted; corrections are made by inserting an offsetting row
// (a refund against a charge, a charge against an over-refund).
type Transaction struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"booking_id"`
	Type        TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method      string          `gorm:"type:varchar(50)" json:"method,omitempty"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Booking Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// Signed returns the transaction's contribution to the booking balance:
// charges increase what the guest owes, payments and refunds decrease it.
// Addition over Signed is commutative, so insertion order never matters.
func (t *Transaction) Signed() decimal.Decimal {
	switch t.Type {
	case TransactionTypeCharge:
		return t.Amount
	case TransactionTypePayment, TransactionTypeRefund:
		return t.Amount.Neg()
	}
	return decimal.Zero
}
