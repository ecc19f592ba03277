package converter

import (
	"go-hostel-pms/internal/delivery/dto"
	"go-hostel-pms/internal/domain/entity"
)

// BedToResponse converts a Bed entity to BedResponse DTO
func BedToResponse(bed *entity.Bed) *dto.BedResponse {
	if bed == nil {
		return nil
	}

	response := &dto.BedResponse{
		ID:                 bed.ID,
		Name:               bed.Name,
		Room:               bed.Room,
		NightlyPrice:       bed.NightlyPrice,
		Notes:              bed.Notes,
		Status:             string(bed.Status),
		GuestID:            bed.GuestID,
		ReservedForGuestID: bed.ReservedForGuestID,
		ReservedUntil:      bed.ReservedUntil,
		MaintenanceReason:  bed.MaintenanceReason,
		LastCleanedAt:      bed.LastCleanedAt,
		LastCleanedBy:      bed.LastCleanedBy,
		LastStatusChange:   bed.LastStatusChange,
		CreatedAt:          bed.CreatedAt,
		UpdatedAt:          bed.UpdatedAt,
	}

	if bed.Guest != nil {
		response.Guest = GuestToResponse(bed.Guest)
	}

	return response
}

// BedsToResponses converts a slice of Bed entities to slice of BedResponse DTOs
func BedsToResponses(beds []entity.Bed) []dto.BedResponse {
	responses := make([]dto.BedResponse, len(beds))
	for i := range beds {
		resp := BedToResponse(&beds[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
