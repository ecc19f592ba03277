package entity

import (
	"time"

	"github.com/google/uuid"
)

// BedHistoryEntry is an immutable audit record of one bed status transition.
// The table is append-only and is the sole source of truth for what happened
// to a bed and when; Bed.LastStatusChange is only a cached convenience.
type BedHistoryEntry struct {
	ID             int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	BedID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"bed_id"`
	GuestID        *uuid.UUID `gorm:"type:uuid;index" json:"guest_id,omitempty"`
	Action         string     `gorm:"type:varchar(50);not null;index" json:"action"`
	PreviousStatus BedStatus  `gorm:"type:varchar(20);not null" json:"previous_status"`
	NewStatus      BedStatus  `gorm:"type:varchar(20);not null" json:"new_status"`
	Notes          string     `gorm:"type:text" json:"notes,omitempty"`
	PerformedBy    string     `gorm:"type:varchar(255);not null" json:"performed_by"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Bed   Bed    `gorm:"foreignKey:BedID" json:"bed,omitempty"`
	Guest *Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}

func (BedHistoryEntry) TableName() string {
	return "bed_history"
}

// Closed vocabulary of history actions
const (
	HistoryActionCheckIn              = "checkin"
	HistoryActionCheckOut             = "checkout"
	HistoryActionCleaned              = "cleaned"
	HistoryActionMarkedDirty          = "marked_dirty"
	HistoryActionMaintenanceStart     = "maintenance_start"
	HistoryActionReserved             = "reserved"
	HistoryActionReservationCancelled = "reservation_cancelled"
	HistoryActionBlocked              = "blocked"
	HistoryActionUnblocked            = "unblocked"
	HistoryActionTransferIn           = "transfer_in"
	HistoryActionTransferOut          = "transfer_out"
	HistoryActionNoShowRelease        = "no_show_release"
	HistoryActionStayExtended         = "stay_extended"
)
