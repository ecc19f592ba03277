package service

import (
	"testing"
	"time"

	"go-hostel-pms/internal/domain/entity"
	"go-hostel-pms/pkg/apperr"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	args := m.Called(db, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByConfirmationCode(db *gorm.DB, code string) (*entity.Booking, error) {
	args := m.Called(db, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindOverlapping(db *gorm.DB, bedID uuid.UUID, checkIn, checkOut time.Time, statuses []entity.BookingStatus, excludeID *uuid.UUID) ([]entity.Booking, error) {
	args := m.Called(db, bedID, checkIn, checkOut, statuses, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindActiveByBedID(db *gorm.DB, bedID uuid.UUID) (*entity.Booking, error) {
	args := m.Called(db, bedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByGuestID(db *gorm.DB, guestID uuid.UUID) ([]entity.Booking, error) {
	args := m.Called(db, guestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByStatus(db *gorm.DB, statuses []entity.BookingStatus) ([]entity.Booking, error) {
	args := m.Called(db, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(db *gorm.DB, booking *entity.Booking) error {
	args := m.Called(db, booking)
	return args.Error(0)
}

type MockExternalReservationRepository struct {
	mock.Mock
}

func (m *MockExternalReservationRepository) FindOverlapping(db *gorm.DB, bedID uuid.UUID, checkIn, checkOut time.Time) ([]entity.ExternalReservation, error) {
	args := m.Called(db, bedID, checkIn, checkOut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ExternalReservation), args.Error(1)
}

func (m *MockExternalReservationRepository) ListForBed(db *gorm.DB, bedID uuid.UUID, rangeStart, rangeEnd time.Time) ([]entity.ExternalReservation, error) {
	args := m.Called(db, bedID, rangeStart, rangeEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ExternalReservation), args.Error(1)
}

func day(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func TestAvailabilityService_NoConflicts(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	externalRepo := &MockExternalReservationRepository{}
	svc := NewAvailabilityService(logrus.New(), bookingRepo, externalRepo)
	bedID := uuid.New()

	bookingRepo.On("FindOverlapping", mock.Anything, bedID, day(1), day(5), entity.BlockingStatuses(), (*uuid.UUID)(nil)).
		Return([]entity.Booking{}, nil)
	externalRepo.On("FindOverlapping", mock.Anything, bedID, day(1), day(5)).
		Return([]entity.ExternalReservation{}, nil)

	result, err := svc.IsAvailable(nil, bedID, day(1), day(5), nil)

	assert.NoError(t, err)
	assert.True(t, result.Available)
	assert.Empty(t, result.Conflicts)
}

func TestAvailabilityService_InternalConflict(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	externalRepo := &MockExternalReservationRepository{}
	svc := NewAvailabilityService(logrus.New(), bookingRepo, externalRepo)
	bedID := uuid.New()

	bookingRepo.On("FindOverlapping", mock.Anything, bedID, day(1), day(5), entity.BlockingStatuses(), (*uuid.UUID)(nil)).
		Return([]entity.Booking{
			{ConfirmationCode: "HB-20260903-11AA22", CheckIn: day(3), CheckOut: day(7)},
		}, nil)
	externalRepo.On("FindOverlapping", mock.Anything, bedID, day(1), day(5)).
		Return([]entity.ExternalReservation{}, nil)

	result, err := svc.IsAvailable(nil, bedID, day(1), day(5), nil)

	assert.NoError(t, err)
	assert.False(t, result.Available)
	assert.Len(t, result.Conflicts, 1)
	assert.Equal(t, ConflictSourceInternal, result.Conflicts[0].Source)
	assert.Equal(t, "HB-20260903-11AA22", result.Conflicts[0].Ref)
}

func TestAvailabilityService_ExternalConflict(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	externalRepo := &MockExternalReservationRepository{}
	svc := NewAvailabilityService(logrus.New(), bookingRepo, externalRepo)
	bedID := uuid.New()

	bookingRepo.On("FindOverlapping", mock.Anything, bedID, day(1), day(5), entity.BlockingStatuses(), (*uuid.UUID)(nil)).
		Return([]entity.Booking{}, nil)
	externalRepo.On("FindOverlapping", mock.Anything, bedID, day(1), day(5)).
		Return([]entity.ExternalReservation{
			{Source: "Booking.com", SourceID: "BK-98765", CheckIn: day(4), CheckOut: day(6)},
		}, nil)

	result, err := svc.IsAvailable(nil, bedID, day(1), day(5), nil)

	assert.NoError(t, err)
	assert.False(t, result.Available)
	assert.Len(t, result.Conflicts, 1)
	assert.Equal(t, "Booking.com", result.Conflicts[0].Source)
	assert.Equal(t, "BK-98765", result.Conflicts[0].Ref)
}

func TestAvailabilityService_BothSourcesReported(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	externalRepo := &MockExternalReservationRepository{}
	svc := NewAvailabilityService(logrus.New(), bookingRepo, externalRepo)
	bedID := uuid.New()

	bookingRepo.On("FindOverlapping", mock.Anything, bedID, day(1), day(10), entity.BlockingStatuses(), (*uuid.UUID)(nil)).
		Return([]entity.Booking{{ConfirmationCode: "HB-20260902-33BB44", CheckIn: day(2), CheckOut: day(4)}}, nil)
	externalRepo.On("FindOverlapping", mock.Anything, bedID, day(1), day(10)).
		Return([]entity.ExternalReservation{{Source: "Hostelworld", SourceID: "HW-1", CheckIn: day(6), CheckOut: day(8)}}, nil)

	result, err := svc.IsAvailable(nil, bedID, day(1), day(10), nil)

	assert.NoError(t, err)
	assert.False(t, result.Available)
	assert.Len(t, result.Conflicts, 2)
}

func TestAvailabilityService_ExcludesOwnBooking(t *testing.T) {
	bookingRepo := &MockBookingRepository{}
	externalRepo := &MockExternalReservationRepository{}
	svc := NewAvailabilityService(logrus.New(), bookingRepo, externalRepo)
	bedID := uuid.New()
	bookingID := uuid.New()

	bookingRepo.On("FindOverlapping", mock.Anything, bedID, day(5), day(8), entity.BlockingStatuses(), &bookingID).
		Return([]entity.Booking{}, nil)
	externalRepo.On("FindOverlapping", mock.Anything, bedID, day(5), day(8)).
		Return([]entity.ExternalReservation{}, nil)

	result, err := svc.IsAvailable(nil, bedID, day(5), day(8), &bookingID)

	assert.NoError(t, err)
	assert.True(t, result.Available)
	bookingRepo.AssertExpectations(t)
}

func TestAvailabilityService_RejectsInvertedRange(t *testing.T) {
	svc := NewAvailabilityService(logrus.New(), &MockBookingRepository{}, &MockExternalReservationRepository{})

	_, err := svc.IsAvailable(nil, uuid.New(), day(5), day(5), nil)

	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestOverlaps_HalfOpen(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"distinct ranges", day(1), day(3), day(5), day(7), false},
		{"back to back is not a conflict", day(1), day(5), day(5), day(9), false},
		{"contained", day(1), day(10), day(3), day(5), true},
		{"partial overlap", day(1), day(5), day(4), day(9), true},
		{"identical", day(1), day(5), day(1), day(5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd), "overlap must be symmetric")
		})
	}
}
