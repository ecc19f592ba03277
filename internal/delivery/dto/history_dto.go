package dto

import (
	"time"

	"github.com/google/uuid"
)

// Response DTOs

type HistoryEntryResponse struct {
	ID             int64          `json:"id"`
	BedID          uuid.UUID      `json:"bed_id"`
	GuestID        *uuid.UUID     `json:"guest_id,omitempty"`
	Guest          *GuestResponse `json:"guest,omitempty"`
	Action         string         `json:"action"`
	PreviousStatus string         `json:"previous_status"`
	NewStatus      string         `json:"new_status"`
	Notes          string         `json:"notes,omitempty"`
	PerformedBy    string         `json:"performed_by"`
	CreatedAt      time.Time      `json:"created_at"`
}

type HistoryListResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
	Total   int64                  `json:"total"`
}
