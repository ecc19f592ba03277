package repository

import (
	"go-hostel-pms/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BedHistoryRepository is append-only: there is deliberately no Update or
// Delete. The history table is the sole source of truth for bed transitions.
type BedHistoryRepository interface {
	Create(db *gorm.DB, entry *entity.BedHistoryEntry) error
	FindByBedID(db *gorm.DB, bedID uuid.UUID, limit, offset int) ([]entity.BedHistoryEntry, int64, error)
	// FindLatestByBedAndAction returns the most recent entry of the given
	// action for the bed, or nil when none exists.
	FindLatestByBedAndAction(db *gorm.DB, bedID uuid.UUID, action string) (*entity.BedHistoryEntry, error)
}
