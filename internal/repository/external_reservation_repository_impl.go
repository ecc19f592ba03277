package repository

import (
	"time"

	"go-hostel-pms/internal/domain/entity"
	domainRepo "go-hostel-pms/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type externalReservationRepository struct{}

func NewExternalReservationRepository() domainRepo.ExternalReservationRepository {
	return &externalReservationRepository{}
}

func (r *externalReservationRepository) FindOverlapping(db *gorm.DB, bedID uuid.UUID, checkIn, checkOut time.Time) ([]entity.ExternalReservation, error) {
	var reservations []entity.ExternalReservation
	err := db.Where("bed_id = ?", bedID).
		Where("status IN ?", []entity.ExternalReservationStatus{
			entity.ExternalReservationStatusConfirmed,
			entity.ExternalReservationStatusTentative,
		}).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *externalReservationRepository) ListForBed(db *gorm.DB, bedID uuid.UUID, rangeStart, rangeEnd time.Time) ([]entity.ExternalReservation, error) {
	var reservations []entity.ExternalReservation
	query := db.Where("bed_id = ?", bedID).Order("check_in ASC")
	if !rangeStart.IsZero() && !rangeEnd.IsZero() {
		query = query.Where("check_in < ? AND check_out > ?", rangeEnd, rangeStart)
	}
	if err := query.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}
