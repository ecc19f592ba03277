package repository

import (
	"time"

	"go-hostel-pms/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByConfirmationCode(db *gorm.DB, code string) (*entity.Booking, error)
	// FindOverlapping returns bookings on the bed in the given statuses whose
	// [check_in, check_out) range intersects [checkIn, checkOut), excluding
	// excludeID when non-nil (the booking being modified).
	FindOverlapping(db *gorm.DB, bedID uuid.UUID, checkIn, checkOut time.Time, statuses []entity.BookingStatus, excludeID *uuid.UUID) ([]entity.Booking, error)
	FindActiveByBedID(db *gorm.DB, bedID uuid.UUID) (*entity.Booking, error)
	FindByGuestID(db *gorm.DB, guestID uuid.UUID) ([]entity.Booking, error)
	FindByStatus(db *gorm.DB, statuses []entity.BookingStatus) ([]entity.Booking, error)
	Update(db *gorm.DB, booking *entity.Booking) error
}
