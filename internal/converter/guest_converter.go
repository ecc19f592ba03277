package converter

import (
	"go-hostel-pms/internal/delivery/dto"
	"go-hostel-pms/internal/domain/entity"
)

// GuestToResponse converts a Guest entity to GuestResponse DTO
func GuestToResponse(guest *entity.Guest) *dto.GuestResponse {
	if guest == nil {
		return nil
	}

	return &dto.GuestResponse{
		ID:             guest.ID,
		FullName:       guest.FullName,
		DocumentNumber: guest.DocumentNumber,
		PhoneNumber:    guest.PhoneNumber,
		Email:          guest.Email,
		Nationality:    guest.Nationality,
		Notes:          guest.Notes,
		CreatedAt:      guest.CreatedAt,
		UpdatedAt:      guest.UpdatedAt,
	}
}

// GuestsToResponses converts a slice of Guest entities to slice of GuestResponse DTOs
func GuestsToResponses(guests []entity.Guest) []dto.GuestResponse {
	responses := make([]dto.GuestResponse, len(guests))
	for i := range guests {
		resp := GuestToResponse(&guests[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
