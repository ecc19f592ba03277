package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type ExternalReservationResponse struct {
	ID       int64     `json:"id"`
	SourceID string    `json:"source_id"`
	Source   string    `json:"source"`
	BedID    uuid.UUID `json:"bed_id"`
	CheckIn  string    `json:"check_in"`
	CheckOut string    `json:"check_out"`
	Status   string    `json:"status"`
	SyncedAt time.Time `json:"synced_at"`
}

type ExternalReservationListResponse struct {
	Reservations []ExternalReservationResponse `json:"reservations"`
	Total        int                           `json:"total"`
}
