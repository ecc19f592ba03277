package repository

import (
	"errors"
	"time"

	"go-hostel-pms/internal/domain/entity"
	domainRepo "go-hostel-pms/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Guest").Preload("Bed").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByConfirmationCode(db *gorm.DB, code string) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Guest").Preload("Bed").Where("confirmation_code = ?", code).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// FindOverlapping applies the half-open interval test: a booking conflicts
// when its check_in is before the requested check_out AND its check_out is
// after the requested check_in.
func (r *bookingRepository) FindOverlapping(db *gorm.DB, bedID uuid.UUID, checkIn, checkOut time.Time, statuses []entity.BookingStatus, excludeID *uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	query := db.Preload("Guest").
		Where("bed_id = ?", bedID).
		Where("status IN ?", statuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindActiveByBedID(db *gorm.DB, bedID uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Guest").
		Where("bed_id = ? AND status = ?", bedID, entity.BookingStatusActive).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByGuestID(db *gorm.DB, guestID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Bed").
		Where("guest_id = ?", guestID).
		Order("check_in DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByStatus(db *gorm.DB, statuses []entity.BookingStatus) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Guest").Preload("Bed").
		Where("status IN ?", statuses).
		Order("check_in ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) Update(db *gorm.DB, booking *entity.Booking) error {
	return db.Save(booking).Error
}
