package entity

import (
	"time"

	"go-hostel-pms/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BedStatus represents the physical state of a bed
type BedStatus string

const (
	BedStatusClean       BedStatus = "clean"
	BedStatusOccupied    BedStatus = "occupied"
	BedStatusDirty       BedStatus = "dirty"
	BedStatusMaintenance BedStatus = "maintenance"
	BedStatusReserved    BedStatus = "reserved"
	BedStatusBlocked     BedStatus = "blocked"
)

// ValidBedStatus reports whether s is a known status value.
func ValidBedStatus(s BedStatus) bool {
	switch s {
	case BedStatusClean, BedStatusOccupied, BedStatusDirty,
		BedStatusMaintenance, BedStatusReserved, BedStatusBlocked:
		return true
	}
	return false
}

// Bed represents a physical sleeping unit. Status transitions go through the
// methods below; every transition must be paired with one BedHistoryEntry in
// the same database transaction.
type Bed struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name               string          `gorm:"type:varchar(100);not null" json:"name"`
	Room               string          `gorm:"type:varchar(100);not null;index" json:"room"`
	NightlyPrice       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"nightly_price"`
	Notes              string          `gorm:"type:text" json:"notes"`
	Status             BedStatus       `gorm:"type:varchar(20);not null;default:'clean';index" json:"status"`
	GuestID            *uuid.UUID      `gorm:"type:uuid;index" json:"guest_id,omitempty"`
	ReservedForGuestID *uuid.UUID      `gorm:"type:uuid" json:"reserved_for_guest_id,omitempty"`
	ReservedUntil      *time.Time      `json:"reserved_until,omitempty"`
	MaintenanceReason  string          `gorm:"type:text" json:"maintenance_reason,omitempty"`
	LastCleanedAt      *time.Time      `json:"last_cleaned_at,omitempty"`
	LastCleanedBy      string          `gorm:"type:varchar(255)" json:"last_cleaned_by,omitempty"`
	LastStatusChange   time.Time       `gorm:"not null;default:now()" json:"last_status_change"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Guest *Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}

func (Bed) TableName() string {
	return "beds"
}

// IsOccupied checks if the bed currently holds a guest
func (b *Bed) IsOccupied() bool {
	return b.Status == BedStatusOccupied
}

func (b *Bed) transition(status BedStatus) {
	b.Status = status
	b.LastStatusChange = time.Now().UTC()
}

func (b *Bed) clearReservation() {
	b.ReservedForGuestID = nil
	b.ReservedUntil = nil
}

// CheckIn moves the bed to occupied. Allowed from clean, or from reserved
// when the reservation is unconditional or held by the same guest.
func (b *Bed) CheckIn(guestID uuid.UUID) error {
	switch b.Status {
	case BedStatusClean:
	case BedStatusReserved:
		if b.ReservedForGuestID != nil && *b.ReservedForGuestID != guestID {
			return apperr.InvalidState("bed %s is reserved for another guest", b.Name)
		}
	default:
		return apperr.InvalidState("cannot check in: bed %s is %s", b.Name, b.Status)
	}
	b.GuestID = &guestID
	b.clearReservation()
	b.transition(BedStatusOccupied)
	return nil
}

// CheckOut releases the occupying guest. The bed becomes dirty unless
// markClean is set (e.g. the guest barely used it and staff skips housekeeping).
func (b *Bed) CheckOut(markClean bool) error {
	if b.Status != BedStatusOccupied {
		return apperr.InvalidState("cannot check out: bed %s is %s", b.Name, b.Status)
	}
	b.GuestID = nil
	if markClean {
		b.transition(BedStatusClean)
	} else {
		b.transition(BedStatusDirty)
	}
	return nil
}

// MarkClean records a housekeeping pass. Allowed from clean or dirty.
func (b *Bed) MarkClean(cleanedBy string) error {
	if b.Status != BedStatusClean && b.Status != BedStatusDirty {
		return apperr.InvalidState("cannot mark clean: bed %s is %s", b.Name, b.Status)
	}
	now := time.Now().UTC()
	b.LastCleanedAt = &now
	b.LastCleanedBy = cleanedBy
	b.MaintenanceReason = ""
	b.transition(BedStatusClean)
	return nil
}

// MarkDirty flags the bed for housekeeping. Allowed from any non-occupied state.
func (b *Bed) MarkDirty() error {
	if b.Status == BedStatusOccupied {
		return apperr.InvalidState("cannot mark dirty: bed %s is occupied", b.Name)
	}
	b.transition(BedStatusDirty)
	return nil
}

// StartMaintenance takes the bed out of service.
func (b *Bed) StartMaintenance(reason string) error {
	switch b.Status {
	case BedStatusClean, BedStatusDirty, BedStatusReserved, BedStatusBlocked:
	default:
		return apperr.InvalidState("cannot start maintenance: bed %s is %s", b.Name, b.Status)
	}
	b.MaintenanceReason = reason
	b.GuestID = nil
	b.clearReservation()
	b.transition(BedStatusMaintenance)
	return nil
}

// Reserve holds a clean bed, optionally for a specific guest until a deadline.
func (b *Bed) Reserve(guestID *uuid.UUID, until *time.Time) error {
	if b.Status != BedStatusClean {
		return apperr.InvalidState("cannot reserve: bed %s is %s", b.Name, b.Status)
	}
	b.ReservedForGuestID = guestID
	b.ReservedUntil = until
	b.transition(BedStatusReserved)
	return nil
}

// CancelReservation releases a held bed back to clean.
func (b *Bed) CancelReservation() error {
	if b.Status != BedStatusReserved {
		return apperr.InvalidState("cannot cancel reservation: bed %s is %s", b.Name, b.Status)
	}
	b.clearReservation()
	b.transition(BedStatusClean)
	return nil
}

// Block takes the bed off sale (e.g. structural damage, long-term hold).
func (b *Bed) Block(notes string) error {
	switch b.Status {
	case BedStatusClean, BedStatusDirty, BedStatusMaintenance, BedStatusReserved:
	default:
		return apperr.InvalidState("cannot block: bed %s is %s", b.Name, b.Status)
	}
	if notes != "" {
		b.Notes = notes
	}
	b.GuestID = nil
	b.clearReservation()
	b.transition(BedStatusBlocked)
	return nil
}

// Unblock returns a blocked bed to clean.
func (b *Bed) Unblock() error {
	if b.Status != BedStatusBlocked {
		return apperr.InvalidState("cannot unblock: bed %s is %s", b.Name, b.Status)
	}
	b.transition(BedStatusClean)
	return nil
}

// TransferOut releases the guest from the source bed during a transfer.
func (b *Bed) TransferOut() error {
	if b.Status != BedStatusOccupied {
		return apperr.InvalidState("cannot transfer out: bed %s is %s", b.Name, b.Status)
	}
	b.GuestID = nil
	b.transition(BedStatusDirty)
	return nil
}

// TransferIn seats the guest on the destination bed during a transfer.
func (b *Bed) TransferIn(guestID uuid.UUID) error {
	if b.Status != BedStatusClean && b.Status != BedStatusReserved {
		return apperr.InvalidState("cannot transfer in: bed %s is %s", b.Name, b.Status)
	}
	b.GuestID = &guestID
	b.clearReservation()
	b.transition(BedStatusOccupied)
	return nil
}
