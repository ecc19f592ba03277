package repository

import (
	"go-hostel-pms/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuestRepository interface {
	Create(db *gorm.DB, guest *entity.Guest) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Guest, error)
	FindByDocumentNumber(db *gorm.DB, documentNumber string) (*entity.Guest, error)
	FindAll(db *gorm.DB, search string) ([]entity.Guest, error)
	Update(db *gorm.DB, guest *entity.Guest) error
}
