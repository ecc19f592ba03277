package service

import (
	"testing"
	"time"

	"go-hostel-pms/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockBedHistoryRepository struct {
	mock.Mock
}

func (m *MockBedHistoryRepository) Create(db *gorm.DB, entry *entity.BedHistoryEntry) error {
	args := m.Called(db, entry)
	return args.Error(0)
}

func (m *MockBedHistoryRepository) FindByBedID(db *gorm.DB, bedID uuid.UUID, limit, offset int) ([]entity.BedHistoryEntry, int64, error) {
	args := m.Called(db, bedID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.BedHistoryEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockBedHistoryRepository) FindLatestByBedAndAction(db *gorm.DB, bedID uuid.UUID, action string) (*entity.BedHistoryEntry, error) {
	args := m.Called(db, bedID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BedHistoryEntry), args.Error(1)
}

func TestHistoryService_Record(t *testing.T) {
	repo := &MockBedHistoryRepository{}
	svc := NewHistoryService(logrus.New(), repo)
	bedID := uuid.New()
	guestID := uuid.New()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *entity.BedHistoryEntry) bool {
		return e.BedID == bedID &&
			*e.GuestID == guestID &&
			e.Action == entity.HistoryActionCheckIn &&
			e.PreviousStatus == entity.BedStatusClean &&
			e.NewStatus == entity.BedStatusOccupied &&
			e.PerformedBy == "reception@hostel.test"
	})).Return(nil)

	err := svc.Record(nil, bedID, &guestID, entity.HistoryActionCheckIn, entity.BedStatusClean, entity.BedStatusOccupied, "", "reception@hostel.test")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestHistoryService_TimeSince(t *testing.T) {
	repo := &MockBedHistoryRepository{}
	svc := NewHistoryService(logrus.New(), repo)
	bedID := uuid.New()

	repo.On("FindLatestByBedAndAction", mock.Anything, bedID, entity.HistoryActionCheckOut).
		Return(&entity.BedHistoryEntry{CreatedAt: time.Now().Add(-2 * time.Hour)}, nil)

	since, err := svc.TimeSince(nil, bedID, entity.HistoryActionCheckOut)

	assert.NoError(t, err)
	assert.NotNil(t, since)
	assert.InDelta(t, (2 * time.Hour).Seconds(), since.Seconds(), 5)
}

func TestHistoryService_TimeSince_NoEntry(t *testing.T) {
	repo := &MockBedHistoryRepository{}
	svc := NewHistoryService(logrus.New(), repo)
	bedID := uuid.New()

	repo.On("FindLatestByBedAndAction", mock.Anything, bedID, entity.HistoryActionCheckOut).
		Return(nil, nil)

	since, err := svc.TimeSince(nil, bedID, entity.HistoryActionCheckOut)

	assert.NoError(t, err)
	assert.Nil(t, since)
}
