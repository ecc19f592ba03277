package service

import (
	"time"

	"go-hostel-pms/internal/domain/entity"
	"go-hostel-pms/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// HistoryService is the append-only recorder for bed status transitions.
// There is no update or delete: the trail is the authoritative answer to
// "what happened to this bed and when". Record must be called with the same
// *gorm.DB (transaction) as the status change it describes, so the two commit
// or roll back together.
type HistoryService interface {
	Record(db *gorm.DB, bedID uuid.UUID, guestID *uuid.UUID, action string, previousStatus, newStatus entity.BedStatus, notes, performedBy string) error
	ListForBed(db *gorm.DB, bedID uuid.UUID, limit, offset int) ([]entity.BedHistoryEntry, int64, error)
	// TimeSince returns how long ago the most recent entry of the given
	// action was recorded, or nil when the bed has no such entry. Used by
	// housekeeping to rank dirty beds by how long they have waited.
	TimeSince(db *gorm.DB, bedID uuid.UUID, action string) (*time.Duration, error)
}

type historyService struct {
	log         *logrus.Logger
	historyRepo repository.BedHistoryRepository
}

func NewHistoryService(log *logrus.Logger, historyRepo repository.BedHistoryRepository) HistoryService {
	return &historyService{
		log:         log,
		historyRepo: historyRepo,
	}
}

func (s *historyService) Record(db *gorm.DB, bedID uuid.UUID, guestID *uuid.UUID, action string, previousStatus, newStatus entity.BedStatus, notes, performedBy string) error {
	entry := &entity.BedHistoryEntry{
		BedID:          bedID,
		GuestID:        guestID,
		Action:         action,
		PreviousStatus: previousStatus,
		NewStatus:      newStatus,
		Notes:          notes,
		PerformedBy:    performedBy,
	}
	if err := s.historyRepo.Create(db, entry); err != nil {
		s.log.Warnf("Failed to record bed history %s for bed %s: %+v", action, bedID, err)
		return err
	}
	return nil
}

func (s *historyService) ListForBed(db *gorm.DB, bedID uuid.UUID, limit, offset int) ([]entity.BedHistoryEntry, int64, error) {
	return s.historyRepo.FindByBedID(db, bedID, limit, offset)
}

func (s *historyService) TimeSince(db *gorm.DB, bedID uuid.UUID, action string) (*time.Duration, error) {
	entry, err := s.historyRepo.FindLatestByBedAndAction(db, bedID, action)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	d := time.Since(entry.CreatedAt)
	return &d, nil
}
