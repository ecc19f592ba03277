package repository

import (
	"go-hostel-pms/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository is append-only: there is deliberately no Update or
// Delete. Corrections are new offsetting rows.
type TransactionRepository interface {
	Create(db *gorm.DB, transaction *entity.Transaction) error
	FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.Transaction, error)
	FindByGuestID(db *gorm.DB, guestID uuid.UUID) ([]entity.Transaction, error)
}
