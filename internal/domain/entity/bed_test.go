package entity

import (
	"testing"
	"time"

	"go-hostel-pms/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newBed(status BedStatus) *Bed {
	return &Bed{
		ID:     uuid.New(),
		Name:   "A-01",
		Room:   "Dorm A",
		Status: status,
	}
}

func TestBed_CheckIn_FromClean(t *testing.T) {
	bed := newBed(BedStatusClean)
	guestID := uuid.New()

	err := bed.CheckIn(guestID)

	assert.NoError(t, err)
	assert.Equal(t, BedStatusOccupied, bed.Status)
	assert.Equal(t, guestID, *bed.GuestID)
}

func TestBed_CheckIn_FromReservedSameGuest(t *testing.T) {
	guestID := uuid.New()
	bed := newBed(BedStatusReserved)
	bed.ReservedForGuestID = &guestID

	err := bed.CheckIn(guestID)

	assert.NoError(t, err)
	assert.Equal(t, BedStatusOccupied, bed.Status)
	assert.Nil(t, bed.ReservedForGuestID)
	assert.Nil(t, bed.ReservedUntil)
}

func TestBed_CheckIn_FromReservedOtherGuest(t *testing.T) {
	reservedFor := uuid.New()
	bed := newBed(BedStatusReserved)
	bed.ReservedForGuestID = &reservedFor

	err := bed.CheckIn(uuid.New())

	assert.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
	assert.Equal(t, BedStatusReserved, bed.Status)
}

func TestBed_CheckIn_FromReservedUnconditional(t *testing.T) {
	bed := newBed(BedStatusReserved)

	err := bed.CheckIn(uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, BedStatusOccupied, bed.Status)
}

func TestBed_CheckIn_InvalidStates(t *testing.T) {
	for _, status := range []BedStatus{BedStatusOccupied, BedStatusDirty, BedStatusMaintenance, BedStatusBlocked} {
		bed := newBed(status)

		err := bed.CheckIn(uuid.New())

		assert.True(t, apperr.IsKind(err, apperr.KindInvalidState), "check-in from %s should fail", status)
		assert.Equal(t, status, bed.Status, "failed transition must not change status")
	}
}

func TestBed_CheckOut_ToDirty(t *testing.T) {
	bed := newBed(BedStatusOccupied)
	guestID := uuid.New()
	bed.GuestID = &guestID

	err := bed.CheckOut(false)

	assert.NoError(t, err)
	assert.Equal(t, BedStatusDirty, bed.Status)
	assert.Nil(t, bed.GuestID)
}

func TestBed_CheckOut_MarkClean(t *testing.T) {
	bed := newBed(BedStatusOccupied)

	err := bed.CheckOut(true)

	assert.NoError(t, err)
	assert.Equal(t, BedStatusClean, bed.Status)
}

func TestBed_CheckOut_NotOccupied(t *testing.T) {
	bed := newBed(BedStatusClean)

	err := bed.CheckOut(false)

	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
}

func TestBed_MarkClean(t *testing.T) {
	bed := newBed(BedStatusDirty)

	err := bed.MarkClean("maria@hostel.test")

	assert.NoError(t, err)
	assert.Equal(t, BedStatusClean, bed.Status)
	assert.Equal(t, "maria@hostel.test", bed.LastCleanedBy)
	assert.NotNil(t, bed.LastCleanedAt)
}

func TestBed_MarkClean_WhileOccupied(t *testing.T) {
	bed := newBed(BedStatusOccupied)

	err := bed.MarkClean("maria@hostel.test")

	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
}

func TestBed_MarkDirty_WhileOccupied(t *testing.T) {
	bed := newBed(BedStatusOccupied)

	err := bed.MarkDirty()

	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
}

func TestBed_StartMaintenance_ReleasesReservation(t *testing.T) {
	guestID := uuid.New()
	bed := newBed(BedStatusReserved)
	bed.ReservedForGuestID = &guestID

	err := bed.StartMaintenance("broken slats")

	assert.NoError(t, err)
	assert.Equal(t, BedStatusMaintenance, bed.Status)
	assert.Equal(t, "broken slats", bed.MaintenanceReason)
	assert.Nil(t, bed.ReservedForGuestID)
}

func TestBed_StartMaintenance_WhileOccupied(t *testing.T) {
	bed := newBed(BedStatusOccupied)

	err := bed.StartMaintenance("broken slats")

	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
}

func TestBed_MaintenanceEndsClean(t *testing.T) {
	bed := newBed(BedStatusMaintenance)
	bed.MaintenanceReason = "repaint"

	// Maintenance ends through a cleaning pass, which also clears the reason.
	err := bed.MarkClean("maria@hostel.test")
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))

	assert.NoError(t, bed.MarkDirty())
	assert.NoError(t, bed.MarkClean("maria@hostel.test"))
	assert.Equal(t, BedStatusClean, bed.Status)
	assert.Empty(t, bed.MaintenanceReason)
}

func TestBed_Reserve(t *testing.T) {
	bed := newBed(BedStatusClean)
	guestID := uuid.New()
	until := time.Now().Add(48 * time.Hour)

	err := bed.Reserve(&guestID, &until)

	assert.NoError(t, err)
	assert.Equal(t, BedStatusReserved, bed.Status)
	assert.Equal(t, guestID, *bed.ReservedForGuestID)
	assert.Equal(t, until, *bed.ReservedUntil)
}

func TestBed_Reserve_NotClean(t *testing.T) {
	for _, status := range []BedStatus{BedStatusOccupied, BedStatusDirty, BedStatusMaintenance, BedStatusReserved, BedStatusBlocked} {
		bed := newBed(status)

		err := bed.Reserve(nil, nil)

		assert.True(t, apperr.IsKind(err, apperr.KindInvalidState), "reserve from %s should fail", status)
	}
}

func TestBed_CancelReservation(t *testing.T) {
	guestID := uuid.New()
	bed := newBed(BedStatusReserved)
	bed.ReservedForGuestID = &guestID

	err := bed.CancelReservation()

	assert.NoError(t, err)
	assert.Equal(t, BedStatusClean, bed.Status)
	assert.Nil(t, bed.ReservedForGuestID)
}

func TestBed_Block_WhileOccupied(t *testing.T) {
	bed := newBed(BedStatusOccupied)

	err := bed.Block("flood damage")

	assert.True(t, apperr.IsKind(err, apperr.KindInvalidState))
}

func TestBed_BlockUnblock(t *testing.T) {
	bed := newBed(BedStatusDirty)

	assert.NoError(t, bed.Block("flood damage"))
	assert.Equal(t, BedStatusBlocked, bed.Status)
	assert.Equal(t, "flood damage", bed.Notes)

	assert.NoError(t, bed.Unblock())
	assert.Equal(t, BedStatusClean, bed.Status)
}

func TestBed_Transfer(t *testing.T) {
	guestID := uuid.New()
	from := newBed(BedStatusOccupied)
	from.GuestID = &guestID
	to := newBed(BedStatusClean)

	assert.NoError(t, from.TransferOut())
	assert.NoError(t, to.TransferIn(guestID))

	assert.Equal(t, BedStatusDirty, from.Status)
	assert.Nil(t, from.GuestID)
	assert.Equal(t, BedStatusOccupied, to.Status)
	assert.Equal(t, guestID, *to.GuestID)
}

func TestBed_TransferIn_InvalidStates(t *testing.T) {
	for _, status := range []BedStatus{BedStatusOccupied, BedStatusDirty, BedStatusMaintenance, BedStatusBlocked} {
		bed := newBed(status)

		err := bed.TransferIn(uuid.New())

		assert.True(t, apperr.IsKind(err, apperr.KindInvalidState), "transfer in from %s should fail", status)
	}
}

func TestBed_TransitionUpdatesLastStatusChange(t *testing.T) {
	bed := newBed(BedStatusClean)
	before := bed.LastStatusChange

	assert.NoError(t, bed.MarkDirty())

	assert.True(t, bed.LastStatusChange.After(before))
}

func TestValidBedStatus(t *testing.T) {
	assert.True(t, ValidBedStatus(BedStatusClean))
	assert.True(t, ValidBedStatus(BedStatusBlocked))
	assert.False(t, ValidBedStatus("available"))
	assert.False(t, ValidBedStatus(""))
}
