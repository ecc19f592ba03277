package entity

import (
	"time"

	"go-hostel-pms/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle state of a stay
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusActive     BookingStatus = "active"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusNoShow     BookingStatus = "no_show"
)

// BlockingStatuses are the booking states that hold the bed's calendar.
// No two bookings in these states may overlap on the same bed.
func BlockingStatuses() []BookingStatus {
	return []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusActive}
}

// Booking represents one stay: one guest on one bed for a contiguous
// half-open date range [CheckIn, CheckOut).
type Booking struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	GuestID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"guest_id"`
	BedID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"bed_id"`
	CheckIn          time.Time       `gorm:"type:date;not null;index" json:"check_in"`
	CheckOut         time.Time       `gorm:"type:date;not null" json:"check_out"`
	Nights           int             `gorm:"not null" json:"nights"`
	Total            decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total"`
	Status           BookingStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Source           string          `gorm:"type:varchar(100);not null;default:'walk-in'" json:"source"`
	ConfirmationCode string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"confirmation_code"`
	Notes            string          `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Guest Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Bed   Bed   `gorm:"foreignKey:BedID" json:"bed,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsActive checks if the guest is currently staying
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusActive
}

// Activate moves a pending or confirmed booking to active at check-in time.
func (b *Booking) Activate() error {
	if b.Status != BookingStatusPending && b.Status != BookingStatusConfirmed {
		return apperr.InvalidState("booking %s cannot be activated from %s", b.ConfirmationCode, b.Status)
	}
	b.Status = BookingStatusActive
	return nil
}

// Close ends an active stay.
func (b *Booking) Close() error {
	if b.Status != BookingStatusActive {
		return apperr.InvalidState("booking %s cannot be checked out from %s", b.ConfirmationCode, b.Status)
	}
	b.Status = BookingStatusCheckedOut
	return nil
}

// MarkNoShow flags a booking whose guest never arrived.
func (b *Booking) MarkNoShow() error {
	if b.Status != BookingStatusPending && b.Status != BookingStatusConfirmed {
		return apperr.InvalidState("booking %s cannot be marked no-show from %s", b.ConfirmationCode, b.Status)
	}
	b.Status = BookingStatusNoShow
	return nil
}

// Cancel voids a booking before the guest arrives.
func (b *Booking) Cancel() error {
	if b.Status != BookingStatusPending && b.Status != BookingStatusConfirmed {
		return apperr.InvalidState("booking %s cannot be cancelled from %s", b.ConfirmationCode, b.Status)
	}
	b.Status = BookingStatusCancelled
	return nil
}

// NightsBetween computes the number of billable nights in [checkIn, checkOut),
// rounding partial days up, with a minimum of one night.
func NightsBetween(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		nights++
	}
	if nights < 1 {
		nights = 1
	}
	return nights
}
