package converter

import (
	"go-hostel-pms/internal/delivery/dto"
	"go-hostel-pms/internal/domain/entity"
)

// ExternalReservationToResponse converts an ExternalReservation entity to its DTO
func ExternalReservationToResponse(reservation *entity.ExternalReservation) *dto.ExternalReservationResponse {
	if reservation == nil {
		return nil
	}

	return &dto.ExternalReservationResponse{
		ID:       reservation.ID,
		SourceID: reservation.SourceID,
		Source:   reservation.Source,
		BedID:    reservation.BedID,
		CheckIn:  reservation.CheckIn.Format(dateLayout),
		CheckOut: reservation.CheckOut.Format(dateLayout),
		Status:   string(reservation.Status),
		SyncedAt: reservation.SyncedAt,
	}
}

// ExternalReservationsToResponses converts a slice of ExternalReservation entities to DTOs
func ExternalReservationsToResponses(reservations []entity.ExternalReservation) []dto.ExternalReservationResponse {
	responses := make([]dto.ExternalReservationResponse, len(reservations))
	for i := range reservations {
		resp := ExternalReservationToResponse(&reservations[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
