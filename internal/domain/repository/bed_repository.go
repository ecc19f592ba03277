package repository

import (
	"go-hostel-pms/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BedRepository interface {
	Create(db *gorm.DB, bed *entity.Bed) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Bed, error)
	// FindByIDForUpdate locks the bed row for the duration of the enclosing
	// transaction. Every availability-check-then-mutate path must go through
	// this to serialize concurrent front-desk actions on the same bed.
	FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Bed, error)
	// FindByIDsForUpdate locks several bed rows in ascending id order so that
	// multi-bed operations (transfer) cannot deadlock each other.
	FindByIDsForUpdate(db *gorm.DB, ids []uuid.UUID) ([]entity.Bed, error)
	FindAll(db *gorm.DB, status entity.BedStatus) ([]entity.Bed, error)
	FindByStatus(db *gorm.DB, statuses []entity.BedStatus) ([]entity.Bed, error)
	Update(db *gorm.DB, bed *entity.Bed) error
}
