package repository

import (
	"errors"

	"go-hostel-pms/internal/domain/entity"
	domainRepo "go-hostel-pms/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type guestRepository struct{}

func NewGuestRepository() domainRepo.GuestRepository {
	return &guestRepository{}
}

func (r *guestRepository) Create(db *gorm.DB, guest *entity.Guest) error {
	return db.Create(guest).Error
}

func (r *guestRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Guest, error) {
	var guest entity.Guest
	err := db.Where("id = ?", id).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) FindByDocumentNumber(db *gorm.DB, documentNumber string) (*entity.Guest, error) {
	var guest entity.Guest
	err := db.Where("document_number = ?", documentNumber).First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) FindAll(db *gorm.DB, search string) ([]entity.Guest, error) {
	var guests []entity.Guest
	query := db.Order("full_name ASC")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR document_number ILIKE ?", pattern, pattern)
	}
	if err := query.Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *guestRepository) Update(db *gorm.DB, guest *entity.Guest) error {
	return db.Save(guest).Error
}
