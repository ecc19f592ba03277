package service

import (
	"time"

	"go-hostel-pms/internal/domain/entity"
	"go-hostel-pms/internal/domain/repository"
	"go-hostel-pms/pkg/apperr"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ConflictSourceInternal labels conflicts caused by our own bookings, as
// opposed to reservations synced from a named external platform.
const ConflictSourceInternal = "internal"

// AvailabilityResult reports whether a date range is free on a bed and, when
// it is not, every record holding the conflicting dates. Callers surface the
// full list so staff can see which platform or guest blocks the range.
type AvailabilityResult struct {
	Available bool
	Conflicts []apperr.ConflictDetail
}

// AvailabilityService decides whether a bed is free for a half-open date
// range [checkIn, checkOut). Internal bookings and externally synced OTA
// reservations are equally authoritative: a free internal calendar does not
// imply availability.
//
// The caller must hold the bed row lock (SELECT ... FOR UPDATE) in the same
// transaction as this check; otherwise two concurrent check-ins can both
// observe "available" before either writes.
type AvailabilityService interface {
	IsAvailable(db *gorm.DB, bedID uuid.UUID, checkIn, checkOut time.Time, excludeBookingID *uuid.UUID) (*AvailabilityResult, error)
}

type availabilityService struct {
	log          *logrus.Logger
	bookingRepo  repository.BookingRepository
	externalRepo repository.ExternalReservationRepository
}

func NewAvailabilityService(
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	externalRepo repository.ExternalReservationRepository,
) AvailabilityService {
	return &availabilityService{
		log:          log,
		bookingRepo:  bookingRepo,
		externalRepo: externalRepo,
	}
}

func (s *availabilityService) IsAvailable(db *gorm.DB, bedID uuid.UUID, checkIn, checkOut time.Time, excludeBookingID *uuid.UUID) (*AvailabilityResult, error) {
	if !checkOut.After(checkIn) {
		return nil, apperr.Validation("check-out must be after check-in")
	}

	result := &AvailabilityResult{Available: true}

	bookings, err := s.bookingRepo.FindOverlapping(db, bedID, checkIn, checkOut, entity.BlockingStatuses(), excludeBookingID)
	if err != nil {
		s.log.Warnf("Failed to query overlapping bookings for bed %s: %+v", bedID, err)
		return nil, err
	}
	for _, b := range bookings {
		result.Conflicts = append(result.Conflicts, apperr.ConflictDetail{
			Source:   ConflictSourceInternal,
			Ref:      b.ConfirmationCode,
			CheckIn:  b.CheckIn,
			CheckOut: b.CheckOut,
		})
	}

	reservations, err := s.externalRepo.FindOverlapping(db, bedID, checkIn, checkOut)
	if err != nil {
		s.log.Warnf("Failed to query external reservations for bed %s: %+v", bedID, err)
		return nil, err
	}
	for _, r := range reservations {
		result.Conflicts = append(result.Conflicts, apperr.ConflictDetail{
			Source:   r.Source,
			Ref:      r.SourceID,
			CheckIn:  r.CheckIn,
			CheckOut: r.CheckOut,
		})
	}

	result.Available = len(result.Conflicts) == 0
	return result, nil
}

// Overlaps applies the half-open interval test to two date ranges.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
