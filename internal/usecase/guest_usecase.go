package usecase

import (
	"context"

	"go-hostel-pms/internal/converter"
	"go-hostel-pms/internal/delivery/dto"
	"go-hostel-pms/internal/domain/repository"
	"go-hostel-pms/internal/service"
	"go-hostel-pms/pkg/apperr"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type GuestUsecase interface {
	ListGuests(ctx context.Context, search string) (*dto.GuestListResponse, error)
	GetGuest(ctx context.Context, guestID uuid.UUID) (*dto.GuestDetailResponse, error)
	UpdateGuest(ctx context.Context, guestID uuid.UUID, req *dto.UpdateGuestRequest) (*dto.GuestResponse, error)
}

type guestUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	guestRepo   repository.GuestRepository
	bookingRepo repository.BookingRepository
	ledger      service.LedgerService
}

func NewGuestUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	guestRepo repository.GuestRepository,
	bookingRepo repository.BookingRepository,
	ledger service.LedgerService,
) GuestUsecase {
	return &guestUsecase{
		db:          db,
		log:         log,
		guestRepo:   guestRepo,
		bookingRepo: bookingRepo,
		ledger:      ledger,
	}
}

func (u *guestUsecase) ListGuests(ctx context.Context, search string) (*dto.GuestListResponse, error) {
	guests, err := u.guestRepo.FindAll(u.db.WithContext(ctx), search)
	if err != nil {
		u.log.Warnf("Failed to list guests: %+v", err)
		return nil, err
	}
	return &dto.GuestListResponse{
		Guests: converter.GuestsToResponses(guests),
		Total:  len(guests),
	}, nil
}

// GetGuest returns the guest with their stay history and any balance still
// owed across past stays. Unsettled debt follows the guest, not the booking.
func (u *guestUsecase) GetGuest(ctx context.Context, guestID uuid.UUID) (*dto.GuestDetailResponse, error) {
	db := u.db.WithContext(ctx)

	guest, err := u.guestRepo.FindByID(db, guestID)
	if err != nil {
		u.log.Warnf("Failed to find guest %s: %+v", guestID, err)
		return nil, err
	}
	if guest == nil {
		return nil, apperr.NotFound("guest %s not found", guestID)
	}

	bookings, err := u.bookingRepo.FindByGuestID(db, guest.ID)
	if err != nil {
		u.log.Warnf("Failed to list bookings for guest %s: %+v", guest.ID, err)
		return nil, err
	}

	outstanding, err := u.ledger.OutstandingForGuest(db, guest.ID)
	if err != nil {
		u.log.Warnf("Failed to compute outstanding balance for guest %s: %+v", guest.ID, err)
		return nil, err
	}

	return &dto.GuestDetailResponse{
		Guest:              *converter.GuestToResponse(guest),
		Bookings:           converter.BookingsToResponses(bookings),
		OutstandingBalance: outstanding,
	}, nil
}

// UpdateGuest edits contact details only. Identity fields (name, document
// number) are fixed once the guest record exists.
func (u *guestUsecase) UpdateGuest(ctx context.Context, guestID uuid.UUID, req *dto.UpdateGuestRequest) (*dto.GuestResponse, error) {
	db := u.db.WithContext(ctx)

	guest, err := u.guestRepo.FindByID(db, guestID)
	if err != nil {
		u.log.Warnf("Failed to find guest %s: %+v", guestID, err)
		return nil, err
	}
	if guest == nil {
		return nil, apperr.NotFound("guest %s not found", guestID)
	}

	guest.UpdateContact(req.PhoneNumber, req.Email, req.Nationality)
	if req.Notes != "" {
		guest.Notes = req.Notes
	}
	if err := u.guestRepo.Update(db, guest); err != nil {
		u.log.Warnf("Failed to update guest %s: %+v", guest.ID, err)
		return nil, err
	}

	return converter.GuestToResponse(guest), nil
}
