package entity

import (
	"time"

	"github.com/google/uuid"
)

// Guest represents a person associated with stays. Guests are identified by
// their document number: created on first stay, contact fields updated on
// repeat stays, never deleted.
type Guest struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName       string    `gorm:"type:varchar(255);not null" json:"full_name"`
	DocumentNumber string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"document_number"`
	PhoneNumber    string    `gorm:"type:varchar(50)" json:"phone_number"`
	Email          string    `gorm:"type:varchar(255)" json:"email"`
	Nationality    string    `gorm:"type:varchar(100)" json:"nationality"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Bookings []Booking `gorm:"foreignKey:GuestID" json:"bookings,omitempty"`
}

func (Guest) TableName() string {
	return "guests"
}

// UpdateContact refreshes the mutable contact fields on a repeat stay.
// Identity fields (name, document number) are never overwritten here.
func (g *Guest) UpdateContact(phone, email, nationality string) {
	if phone != "" {
		g.PhoneNumber = phone
	}
	if email != "" {
		g.Email = email
	}
	if nationality != "" {
		g.Nationality = nationality
	}
}
