package repository

import (
	"errors"

	"go-hostel-pms/internal/domain/entity"
	domainRepo "go-hostel-pms/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bedHistoryRepository struct{}

func NewBedHistoryRepository() domainRepo.BedHistoryRepository {
	return &bedHistoryRepository{}
}

func (r *bedHistoryRepository) Create(db *gorm.DB, entry *entity.BedHistoryEntry) error {
	return db.Create(entry).Error
}

func (r *bedHistoryRepository) FindByBedID(db *gorm.DB, bedID uuid.UUID, limit, offset int) ([]entity.BedHistoryEntry, int64, error) {
	var total int64
	if err := db.Model(&entity.BedHistoryEntry{}).Where("bed_id = ?", bedID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []entity.BedHistoryEntry
	query := db.Preload("Guest").
		Where("bed_id = ?", bedID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *bedHistoryRepository) FindLatestByBedAndAction(db *gorm.DB, bedID uuid.UUID, action string) (*entity.BedHistoryEntry, error) {
	var entry entity.BedHistoryEntry
	err := db.Where("bed_id = ? AND action = ?", bedID, action).
		Order("created_at DESC, id DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
