package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExternalReservationStatus represents the state reported by the OTA calendar
type ExternalReservationStatus string

const (
	ExternalReservationStatusConfirmed ExternalReservationStatus = "confirmed"
	ExternalReservationStatusTentative ExternalReservationStatus = "tentative"
	ExternalReservationStatusCancelled ExternalReservationStatus = "cancelled"
)

// ExternalReservation is a reservation synced from an external travel-agency
// calendar (e.g. Booking.com). The table is owned by the sync collaborator;
// the core only ever reads it when validating availability. Confirmed and
// tentative rows block the bed's calendar exactly like internal bookings.
type ExternalReservation struct {
	ID       int64                     `gorm:"primaryKey;autoIncrement" json:"id"`
	SourceID string                    `gorm:"type:varchar(100);not null;uniqueIndex:idx_external_source" json:"source_id"`
	Source   string                    `gorm:"type:varchar(100);not null;uniqueIndex:idx_external_source" json:"source"`
	BedID    uuid.UUID                 `gorm:"type:uuid;not null;index" json:"bed_id"`
	CheckIn  time.Time                 `gorm:"type:date;not null" json:"check_in"`
	CheckOut time.Time                 `gorm:"type:date;not null" json:"check_out"`
	Status   ExternalReservationStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	SyncedAt time.Time                 `gorm:"not null" json:"synced_at"`

	// Relationships
	Bed Bed `gorm:"foreignKey:BedID" json:"bed,omitempty"`
}

func (ExternalReservation) TableName() string {
	return "external_reservations"
}

// Blocks reports whether this reservation holds the bed's calendar.
func (r *ExternalReservation) Blocks() bool {
	return r.Status == ExternalReservationStatusConfirmed || r.Status == ExternalReservationStatusTentative
}
