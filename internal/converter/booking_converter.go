package converter

import (
	"go-hostel-pms/internal/delivery/dto"
	"go-hostel-pms/internal/domain/entity"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:               booking.ID,
		GuestID:          booking.GuestID,
		BedID:            booking.BedID,
		CheckIn:          booking.CheckIn.Format(dateLayout),
		CheckOut:         booking.CheckOut.Format(dateLayout),
		Nights:           booking.Nights,
		Total:            booking.Total,
		Status:           string(booking.Status),
		Source:           booking.Source,
		ConfirmationCode: booking.ConfirmationCode,
		Notes:            booking.Notes,
		CreatedAt:        booking.CreatedAt,
		UpdatedAt:        booking.UpdatedAt,
	}

	// Include relations only when preloaded
	if booking.Guest.ID != uuid.Nil {
		response.Guest = GuestToResponse(&booking.Guest)
	}
	if booking.Bed.ID != uuid.Nil {
		response.Bed = BedToResponse(&booking.Bed)
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		resp := BookingToResponse(&bookings[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
