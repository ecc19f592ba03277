package converter

import (
	"go-hostel-pms/internal/delivery/dto"
	"go-hostel-pms/internal/domain/entity"
)

// HistoryEntryToResponse converts a BedHistoryEntry entity to HistoryEntryResponse DTO
func HistoryEntryToResponse(entry *entity.BedHistoryEntry) *dto.HistoryEntryResponse {
	if entry == nil {
		return nil
	}

	response := &dto.HistoryEntryResponse{
		ID:             entry.ID,
		BedID:          entry.BedID,
		GuestID:        entry.GuestID,
		Action:         entry.Action,
		PreviousStatus: string(entry.PreviousStatus),
		NewStatus:      string(entry.NewStatus),
		Notes:          entry.Notes,
		PerformedBy:    entry.PerformedBy,
		CreatedAt:      entry.CreatedAt,
	}

	if entry.Guest != nil {
		response.Guest = GuestToResponse(entry.Guest)
	}

	return response
}

// HistoryEntriesToResponses converts a slice of BedHistoryEntry entities to slice of HistoryEntryResponse DTOs
func HistoryEntriesToResponses(entries []entity.BedHistoryEntry) []dto.HistoryEntryResponse {
	responses := make([]dto.HistoryEntryResponse, len(entries))
	for i := range entries {
		resp := HistoryEntryToResponse(&entries[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
