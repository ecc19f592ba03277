package repository

import (
	"time"

	"go-hostel-pms/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExternalReservationRepository is read-only to the core. The table is
// populated by the OTA sync collaborator; the core only consults it when
// validating availability.
type ExternalReservationRepository interface {
	// FindOverlapping returns blocking (confirmed or tentative) reservations
	// on the bed whose range intersects [checkIn, checkOut).
	FindOverlapping(db *gorm.DB, bedID uuid.UUID, checkIn, checkOut time.Time) ([]entity.ExternalReservation, error)
	ListForBed(db *gorm.DB, bedID uuid.UUID, rangeStart, rangeEnd time.Time) ([]entity.ExternalReservation, error)
}
