package repository

import (
	"errors"
	"sort"

	"go-hostel-pms/internal/domain/entity"
	domainRepo "go-hostel-pms/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bedRepository struct{}

func NewBedRepository() domainRepo.BedRepository {
	return &bedRepository{}
}

func (r *bedRepository) Create(db *gorm.DB, bed *entity.Bed) error {
	return db.Create(bed).Error
}

func (r *bedRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Bed, error) {
	var bed entity.Bed
	err := db.Preload("Guest").Where("id = ?", id).First(&bed).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bed, nil
}

func (r *bedRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Bed, error) {
	var bed entity.Bed
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&bed).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bed, nil
}

// FindByIDsForUpdate locks the rows in ascending id order. Two concurrent
// transfers touching the same pair of beds always lock in the same order,
// so neither can deadlock the other.
func (r *bedRepository) FindByIDsForUpdate(db *gorm.DB, ids []uuid.UUID) ([]entity.Bed, error) {
	sorted := make([]uuid.UUID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].String() < sorted[j].String()
	})

	beds := make([]entity.Bed, 0, len(sorted))
	for _, id := range sorted {
		var bed entity.Bed
		err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&bed).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		beds = append(beds, bed)
	}
	return beds, nil
}

func (r *bedRepository) FindAll(db *gorm.DB, status entity.BedStatus) ([]entity.Bed, error) {
	var beds []entity.Bed
	query := db.Preload("Guest").Order("room ASC, name ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&beds).Error; err != nil {
		return nil, err
	}
	return beds, nil
}

func (r *bedRepository) FindByStatus(db *gorm.DB, statuses []entity.BedStatus) ([]entity.Bed, error) {
	var beds []entity.Bed
	err := db.Where("status IN ?", statuses).
		Order("room ASC, name ASC").
		Find(&beds).Error
	if err != nil {
		return nil, err
	}
	return beds, nil
}

func (r *bedRepository) Update(db *gorm.DB, bed *entity.Bed) error {
	return db.Save(bed).Error
}
