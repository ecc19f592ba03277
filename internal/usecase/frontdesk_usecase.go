package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"go-hostel-pms/internal/converter"
	"go-hostel-pms/internal/delivery/dto"
	"go-hostel-pms/internal/delivery/http/middleware"
	"go-hostel-pms/internal/domain/entity"
	"go-hostel-pms/internal/domain/repository"
	"go-hostel-pms/internal/service"
	"go-hostel-pms/pkg/apperr"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	dateLayout    = "2006-01-02"
	defaultSource = "walk-in"
)

// FrontDeskUsecase owns the lifecycle of a stay from creation to terminal
// state. Every operation is a single database transaction: the availability
// check, the bed transition, the ledger row and the history entry commit or
// roll back together. The bed row is locked (SELECT ... FOR UPDATE) before
// the availability check so two concurrent check-ins for the same bed cannot
// both observe "available": the loser gets a Conflict, never corrupt state.
type FrontDeskUsecase interface {
	Reserve(ctx context.Context, bedID uuid.UUID, req *dto.ReserveBedRequest) (*dto.BedResponse, error)
	CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.CheckInResponse, error)
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	CheckInBooking(ctx context.Context, bookingID uuid.UUID) (*dto.CheckInResponse, error)
	CheckOut(ctx context.Context, bookingID uuid.UUID, req *dto.CheckOutRequest) (*dto.CheckOutResponse, error)
	Transfer(ctx context.Context, req *dto.TransferRequest) (*dto.TransferResponse, error)
	ExtendStay(ctx context.Context, bookingID uuid.UUID, req *dto.ExtendStayRequest) (*dto.ExtendStayResponse, error)
	MarkNoShow(ctx context.Context, bookingID uuid.UUID, req *dto.NoShowRequest) (*dto.NoShowResponse, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	RecordPayment(ctx context.Context, bookingID uuid.UUID, req *dto.RecordPaymentRequest) (*dto.TransactionResponse, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	ListBookings(ctx context.Context, status entity.BookingStatus) (*dto.BookingListResponse, error)
}

type frontDeskUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	bedRepo      repository.BedRepository
	guestRepo    repository.GuestRepository
	bookingRepo  repository.BookingRepository
	availability service.AvailabilityService
	ledger       service.LedgerService
	history      service.HistoryService
	pricing      service.PricingEngine
	notifier     service.NotificationDispatcher
	statusBoard  *service.StatusBoardService
}

func NewFrontDeskUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bedRepo repository.BedRepository,
	guestRepo repository.GuestRepository,
	bookingRepo repository.BookingRepository,
	availability service.AvailabilityService,
	ledger service.LedgerService,
	history service.HistoryService,
	pricing service.PricingEngine,
	notifier service.NotificationDispatcher,
	statusBoard *service.StatusBoardService,
) FrontDeskUsecase {
	return &frontDeskUsecase{
		db:           db,
		log:          log,
		bedRepo:      bedRepo,
		guestRepo:    guestRepo,
		bookingRepo:  bookingRepo,
		availability: availability,
		ledger:       ledger,
		history:      history,
		pricing:      pricing,
		notifier:     notifier,
		statusBoard:  statusBoard,
	}
}

// Reserve holds a clean bed for a guest without creating a stay. A
// reservation is a bed-state hold, not yet a booking.
func (u *frontDeskUsecase) Reserve(ctx context.Context, bedID uuid.UUID, req *dto.ReserveBedRequest) (*dto.BedResponse, error) {
	var until *time.Time
	if req.Until != "" {
		t, err := parseDate(req.Until)
		if err != nil {
			return nil, err
		}
		until = &t
	}

	if req.GuestID != nil {
		guest, err := u.guestRepo.FindByID(u.db.WithContext(ctx), *req.GuestID)
		if err != nil {
			u.log.Warnf("Failed to find guest %s: %+v", *req.GuestID, err)
			return nil, err
		}
		if guest == nil {
			return nil, apperr.NotFound("guest %s not found", *req.GuestID)
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	bed, err := u.bedRepo.FindByIDForUpdate(tx, bedID)
	if err != nil {
		u.log.Warnf("Failed to lock bed %s: %+v", bedID, err)
		return nil, err
	}
	if bed == nil {
		return nil, apperr.NotFound("bed %s not found", bedID)
	}

	previous := bed.Status
	if err := bed.Reserve(req.GuestID, until); err != nil {
		return nil, err
	}
	if err := u.bedRepo.Update(tx, bed); err != nil {
		u.log.Warnf("Failed to update bed %s: %+v", bedID, err)
		return nil, err
	}
	if err := u.history.Record(tx, bed.ID, req.GuestID, entity.HistoryActionReserved, previous, bed.Status, req.Notes, performedBy(ctx)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit reserve for bed %s: %+v", bedID, err)
		return nil, err
	}

	u.statusBoard.Publish(bed.ID, bed.Status)
	u.log.Infof("Bed reserved: bed=%s guest=%v until=%v", bed.ID, req.GuestID, until)
	return converter.BedToResponse(bed), nil
}

// CheckIn seats a walk-in guest on a bed and opens an active stay.
//
// Flow, all within one transaction:
//  1. Lock the bed row
//  2. Validate the date range against internal bookings and OTA reservations
//  3. Find or create the guest by document number
//  4. Transition the bed to occupied
//  5. Create the active booking with the priced total snapshot
//  6. Insert the stay charge
//  7. Append the history entry
func (u *frontDeskUsecase) CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.CheckInResponse, error) {
	checkIn, checkOut, err := parseStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	bed, err := u.bedRepo.FindByIDForUpdate(tx, req.BedID)
	if err != nil {
		u.log.Warnf("Failed to lock bed %s: %+v", req.BedID, err)
		return nil, err
	}
	if bed == nil {
		return nil, apperr.NotFound("bed %s not found", req.BedID)
	}

	avail, err := u.availability.IsAvailable(tx, bed.ID, checkIn, checkOut, nil)
	if err != nil {
		return nil, err
	}
	if !avail.Available {
		return nil, apperr.Conflict("requested dates are not available", avail.Conflicts)
	}

	guest, err := u.findOrCreateGuest(tx, &req.Guest)
	if err != nil {
		return nil, err
	}

	previous := bed.Status
	if err := bed.CheckIn(guest.ID); err != nil {
		return nil, err
	}

	quote, err := u.pricing.QuoteStay(bed, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	source := req.Source
	if source == "" {
		source = defaultSource
	}
	booking := &entity.Booking{
		GuestID:          guest.ID,
		BedID:            bed.ID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Nights:           quote.Nights,
		Total:            quote.Total,
		Status:           entity.BookingStatusActive,
		Source:           source,
		ConfirmationCode: generateConfirmationCode(checkIn),
		Notes:            req.Notes,
	}
	if err := u.bookingRepo.Create(tx, booking); err != nil {
		u.log.Warnf("Failed to create booking for bed %s: %+v", bed.ID, err)
		return nil, err
	}
	if err := u.bedRepo.Update(tx, bed); err != nil {
		u.log.Warnf("Failed to update bed %s: %+v", bed.ID, err)
		return nil, err
	}

	description := fmt.Sprintf("Stay charge: %d nights x %s", quote.Nights, quote.NightlyRate)
	if _, err := u.ledger.RecordCharge(tx, booking.ID, quote.Total, "", description); err != nil {
		return nil, err
	}
	if err := u.history.Record(tx, bed.ID, &guest.ID, entity.HistoryActionCheckIn, previous, bed.Status, req.Notes, performedBy(ctx)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit check-in for bed %s: %+v", bed.ID, err)
		return nil, err
	}

	u.statusBoard.Publish(bed.ID, bed.Status)
	u.notifier.Notify(ctx, service.NotificationEventCheckIn, guest, booking)
	u.log.Infof("Check-in: booking=%s bed=%s guest=%s nights=%d total=%s", booking.ID, bed.ID, guest.ID, booking.Nights, booking.Total)

	booking.Guest = *guest
	return &dto.CheckInResponse{
		Booking: *converter.BookingToResponse(booking),
		Bed:     *converter.BedToResponse(bed),
	}, nil
}

// CreateBooking registers a future stay (confirmed, not yet active). The bed
// calendar is held from now on, but the bed's physical state and the charge
// are untouched until the guest actually checks in.
func (u *frontDeskUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	checkIn, checkOut, err := parseStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	bed, err := u.bedRepo.FindByIDForUpdate(tx, req.BedID)
	if err != nil {
		u.log.Warnf("Failed to lock bed %s: %+v", req.BedID, err)
		return nil, err
	}
	if bed == nil {
		return nil, apperr.NotFound("bed %s not found", req.BedID)
	}

	avail, err := u.availability.IsAvailable(tx, bed.ID, checkIn, checkOut, nil)
	if err != nil {
		return nil, err
	}
	if !avail.Available {
		return nil, apperr.Conflict("requested dates are not available", avail.Conflicts)
	}

	guest, err := u.findOrCreateGuest(tx, &req.Guest)
	if err != nil {
		return nil, err
	}

	quote, err := u.pricing.QuoteStay(bed, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	source := req.Source
	if source == "" {
		source = defaultSource
	}
	booking := &entity.Booking{
		GuestID:          guest.ID,
		BedID:            bed.ID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Nights:           quote.Nights,
		Total:            quote.Total,
		Status:           entity.BookingStatusConfirmed,
		Source:           source,
		ConfirmationCode: generateConfirmationCode(checkIn),
		Notes:            req.Notes,
	}
	if err := u.bookingRepo.Create(tx, booking); err != nil {
		u.log.Warnf("Failed to create booking for bed %s: %+v", bed.ID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit booking for bed %s: %+v", bed.ID, err)
		return nil, err
	}

	u.log.Infof("Booking created: booking=%s bed=%s guest=%s code=%s", booking.ID, bed.ID, guest.ID, booking.ConfirmationCode)
	booking.Guest = *guest
	return converter.BookingToResponse(booking), nil
}

// CheckInBooking activates a previously created booking when the guest
// arrives. The stay charge is taken from the total snapshotted at creation.
func (u *frontDeskUsecase) CheckInBooking(ctx context.Context, bookingID uuid.UUID) (*dto.CheckInResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", bookingID)
	}

	bed, err := u.bedRepo.FindByIDForUpdate(tx, booking.BedID)
	if err != nil {
		u.log.Warnf("Failed to lock bed %s: %+v", booking.BedID, err)
		return nil, err
	}
	if bed == nil {
		return nil, apperr.NotFound("bed %s not found", booking.BedID)
	}

	if err := booking.Activate(); err != nil {
		return nil, err
	}
	previous := bed.Status
	if err := bed.CheckIn(booking.GuestID); err != nil {
		return nil, err
	}

	if err := u.bookingRepo.Update(tx, booking); err != nil {
		u.log.Warnf("Failed to update booking %s: %+v", booking.ID, err)
		return nil, err
	}
	if err := u.bedRepo.Update(tx, bed); err != nil {
		u.log.Warnf("Failed to update bed %s: %+v", bed.ID, err)
		return nil, err
	}

	description := fmt.Sprintf("Stay charge: %d nights", booking.Nights)
	if _, err := u.ledger.RecordCharge(tx, booking.ID, booking.Total, "", description); err != nil {
		return nil, err
	}
	if err := u.history.Record(tx, bed.ID, &booking.GuestID, entity.HistoryActionCheckIn, previous, bed.Status, booking.Notes, performedBy(ctx)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit check-in for booking %s: %+v", booking.ID, err)
		return nil, err
	}

	u.statusBoard.Publish(bed.ID, bed.Status)
	u.notifier.Notify(ctx, service.NotificationEventCheckIn, &booking.Guest, booking)
	u.log.Infof("Booking check-in: booking=%s bed=%s", booking.ID, bed.ID)

	return &dto.CheckInResponse{
		Booking: *converter.BookingToResponse(booking),
		Bed:     *converter.BedToResponse(bed),
	}, nil
}

// CheckOut closes an active stay. A positive remaining balance is reported
// back to the caller but never blocks the checkout; debt persists against
// the guest record.
func (u *frontDeskUsecase) CheckOut(ctx context.Context, bookingID uuid.UUID, req *dto.CheckOutRequest) (*dto.CheckOutResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", bookingID)
	}

	bed, err := u.bedRepo.FindByIDForUpdate(tx, booking.BedID)
	if err != nil {
		u.log.Warnf("Failed to lock bed %s: %+v", booking.BedID, err)
		return nil, err
	}
	if bed == nil {
		return nil, apperr.NotFound("bed %s not found", booking.BedID)
	}

	if err := booking.Close(); err != nil {
		return nil, err
	}
	previous := bed.Status
	if err := bed.CheckOut(req.MarkClean); err != nil {
		return nil, err
	}

	if req.PaymentAmount != nil {
		if _, err := u.ledger.RecordPayment(tx, booking.ID, *req.PaymentAmount, req.PaymentMethod, "Checkout payment"); err != nil {
			return nil, err
		}
	}

	if err := u.bookingRepo.Update(tx, booking); err != nil {
		u.log.Warnf("Failed to update booking %s: %+v", booking.ID, err)
		return nil, err
	}
	if err := u.bedRepo.Update(tx, bed); err != nil {
		u.log.Warnf("Failed to update bed %s: %+v", bed.ID, err)
		return nil, err
	}
	if err := u.history.Record(tx, bed.ID, &booking.GuestID, entity.HistoryActionCheckOut, previous, bed.Status, "", performedBy(ctx)); err != nil {
		return nil, err
	}

	balance, err := u.ledger.BalanceFor(tx, booking.ID)
	if err != nil {
		u.log.Warnf("Failed to compute balance for booking %s: %+v", booking.ID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit check-out for booking %s: %+v", booking.ID, err)
		return nil, err
	}

	u.statusBoard.Publish(bed.ID, bed.Status)
	u.notifier.Notify(ctx, service.NotificationEventCheckOut, &booking.Guest, booking)
	if balance.IsPositive() {
		u.log.Warnf("Check-out with outstanding balance: booking=%s balance=%s", booking.ID, balance)
	} else {
		u.log.Infof("Check-out: booking=%s bed=%s", booking.ID, bed.ID)
	}

	return &dto.CheckOutResponse{
		Booking: *converter.BookingToResponse(booking),
		Bed:     *converter.BedToResponse(bed),
		Balance: balance,
	}, nil
}

// Transfer moves the active stay from one bed to another. Both bed rows are
// locked in ascending id order before anything is read or written, so two
// crossing transfers cannot deadlock. Partial application is impossible: the
// booking move, both bed transitions and both history entries share one
// transaction.
func (u *frontDeskUsecase) Transfer(ctx context.Context, req *dto.TransferRequest) (*dto.TransferResponse, error) {
	if req.FromBedID == req.ToBedID {
		return nil, apperr.Validation("source and destination beds must differ")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	beds, err := u.bedRepo.FindByIDsForUpdate(tx, []uuid.UUID{req.FromBedID, req.ToBedID})
	if err != nil {
		u.log.Warnf("Failed to lock beds for transfer: %+v", err)
		return nil, err
	}
	var fromBed, toBed *entity.Bed
	for i := range beds {
		switch beds[i].ID {
		case req.FromBedID:
			fromBed = &beds[i]
		case req.ToBedID:
			toBed = &beds[i]
		}
	}
	if fromBed == nil {
		return nil, apperr.NotFound("bed %s not found", req.FromBedID)
	}
	if toBed == nil {
		return nil, apperr.NotFound("bed %s not found", req.ToBedID)
	}

	booking, err := u.bookingRepo.FindActiveByBedID(tx, fromBed.ID)
	if err != nil {
		u.log.Warnf("Failed to find active booking for bed %s: %+v", fromBed.ID, err)
		return nil, err
	}
	if booking == nil {
		return nil, apperr.InvalidState("bed %s has no active stay", fromBed.Name)
	}

	// Destination must be free for the remaining nights of the stay.
	remainingStart := booking.CheckIn
	if today := truncateToDay(time.Now().UTC()); today.After(remainingStart) {
		remainingStart = today
	}
	avail, err := u.availability.IsAvailable(tx, toBed.ID, remainingStart, booking.CheckOut, &booking.ID)
	if err != nil {
		return nil, err
	}
	if !avail.Available {
		return nil, apperr.Conflict("destination bed is not available for the remaining stay", avail.Conflicts)
	}

	fromPrevious := fromBed.Status
	toPrevious := toBed.Status
	if err := fromBed.TransferOut(); err != nil {
		return nil, err
	}
	if err := toBed.TransferIn(booking.GuestID); err != nil {
		return nil, err
	}

	booking.BedID = toBed.ID
	if err := u.bookingRepo.Update(tx, booking); err != nil {
		u.log.Warnf("Failed to update booking %s: %+v", booking.ID, err)
		return nil, err
	}
	if err := u.bedRepo.Update(tx, fromBed); err != nil {
		u.log.Warnf("Failed to update bed %s: %+v", fromBed.ID, err)
		return nil, err
	}
	if err := u.bedRepo.Update(tx, toBed); err != nil {
		u.log.Warnf("Failed to update bed %s: %+v", toBed.ID, err)
		return nil, err
	}

	performer := performedBy(ctx)
	if err := u.history.Record(tx, fromBed.ID, &booking.GuestID, entity.HistoryActionTransferOut, fromPrevious, fromBed.Status, req.Notes, performer); err != nil {
		return nil, err
	}
	if err := u.history.Record(tx, toBed.ID, &booking.GuestID, entity.HistoryActionTransferIn, toPrevious, toBed.Status, req.Notes, performer); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transfer %s -> %s: %+v", fromBed.ID, toBed.ID, err)
		return nil, err
	}

	u.statusBoard.Publish(fromBed.ID, fromBed.Status)
	u.statusBoard.Publish(toBed.ID, toBed.Status)
	u.notifier.Notify(ctx, service.NotificationEventTransfer, &booking.Guest, booking)
	u.log.Infof("Transfer: booking=%s from=%s to=%s", booking.ID, fromBed.ID, toBed.ID)

	return &dto.TransferResponse{
		Booking: *converter.BookingToResponse(booking),
		FromBed: *converter.BedToResponse(fromBed),
		ToBed:   *converter.BedToResponse(toBed),
	}, nil
}

// ExtendStay pushes the checkout date of an active stay. Only the delta range
// is re-validated, and only the incremental nights are charged. The original
// charge row is never rewritten.
func (u *frontDeskUsecase) ExtendStay(ctx context.Context, bookingID uuid.UUID, req *dto.ExtendStayRequest) (*dto.ExtendStayResponse, error) {
	newCheckOut, err := parseDate(req.NewCheckOut)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", bookingID)
	}
	if !booking.IsActive() {
		return nil, apperr.InvalidState("booking %s is %s, only active stays can be extended", booking.ConfirmationCode, booking.Status)
	}
	if !newCheckOut.After(booking.CheckOut) {
		return nil, apperr.Validation("new check-out must be after the current check-out %s", booking.CheckOut.Format(dateLayout))
	}

	bed, err := u.bedRepo.FindByIDForUpdate(tx, booking.BedID)
	if err != nil {
		u.log.Warnf("Failed to lock bed %s: %+v", booking.BedID, err)
		return nil, err
	}
	if bed == nil {
		return nil, apperr.NotFound("bed %s not found", booking.BedID)
	}

	avail, err := u.availability.IsAvailable(tx, bed.ID, booking.CheckOut, newCheckOut, &booking.ID)
	if err != nil {
		return nil, err
	}
	if !avail.Available {
		return nil, apperr.Conflict("extension dates are not available", avail.Conflicts)
	}

	quote, err := u.pricing.QuoteStay(bed, booking.CheckOut, newCheckOut)
	if err != nil {
		return nil, err
	}

	booking.CheckOut = newCheckOut
	booking.Nights += quote.Nights
	booking.Total = booking.Total.Add(quote.Total)
	if err := u.bookingRepo.Update(tx, booking); err != nil {
		u.log.Warnf("Failed to update booking %s: %+v", booking.ID, err)
		return nil, err
	}

	description := fmt.Sprintf("Stay extension: %d nights x %s", quote.Nights, quote.NightlyRate)
	if _, err := u.ledger.RecordCharge(tx, booking.ID, quote.Total, "", description); err != nil {
		return nil, err
	}
	if err := u.history.Record(tx, bed.ID, &booking.GuestID, entity.HistoryActionStayExtended, bed.Status, bed.Status, description, performedBy(ctx)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit extension for booking %s: %+v", booking.ID, err)
		return nil, err
	}

	u.notifier.Notify(ctx, service.NotificationEventExtended, &booking.Guest, booking)
	u.log.Infof("Stay extended: booking=%s nights=+%d charge=%s", booking.ID, quote.Nights, quote.Total)

	return &dto.ExtendStayResponse{
		Booking:     *converter.BookingToResponse(booking),
		AddedNights: quote.Nights,
		AddedCharge: quote.Total,
	}, nil
}

// MarkNoShow flags a booking whose guest never arrived and releases the bed
// if it was held in reserved for this guest. An optional penalty is charged.
func (u *frontDeskUsecase) MarkNoShow(ctx context.Context, bookingID uuid.UUID, req *dto.NoShowRequest) (*dto.NoShowResponse, error) {
	if req.Penalty != nil && !req.Penalty.IsPositive() {
		return nil, apperr.Validation("penalty must be positive")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", bookingID)
	}

	if err := booking.MarkNoShow(); err != nil {
		return nil, err
	}
	if err := u.bookingRepo.Update(tx, booking); err != nil {
		u.log.Warnf("Failed to update booking %s: %+v", booking.ID, err)
		return nil, err
	}

	bed, err := u.releaseReservedBed(ctx, tx, booking, entity.HistoryActionNoShowRelease)
	if err != nil {
		return nil, err
	}

	if req.Penalty != nil {
		if _, err := u.ledger.RecordCharge(tx, booking.ID, *req.Penalty, "", "No-show penalty"); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit no-show for booking %s: %+v", booking.ID, err)
		return nil, err
	}

	if bed != nil {
		u.statusBoard.Publish(bed.ID, bed.Status)
	}
	u.notifier.Notify(ctx, service.NotificationEventNoShow, &booking.Guest, booking)
	u.log.Infof("No-show: booking=%s penalty=%v", booking.ID, req.Penalty)

	return &dto.NoShowResponse{
		Booking: *converter.BookingToResponse(booking),
		Penalty: req.Penalty,
	}, nil
}

// CancelBooking voids a future stay before arrival and releases any
// reservation hold on the bed.
func (u *frontDeskUsecase) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", bookingID)
	}

	if err := booking.Cancel(); err != nil {
		return nil, err
	}
	if err := u.bookingRepo.Update(tx, booking); err != nil {
		u.log.Warnf("Failed to update booking %s: %+v", booking.ID, err)
		return nil, err
	}

	bed, err := u.releaseReservedBed(ctx, tx, booking, entity.HistoryActionReservationCancelled)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit cancellation for booking %s: %+v", booking.ID, err)
		return nil, err
	}

	if bed != nil {
		u.statusBoard.Publish(bed.ID, bed.Status)
	}
	u.log.Infof("Booking cancelled: booking=%s", booking.ID)
	return converter.BookingToResponse(booking), nil
}

// RecordPayment takes a mid-stay or post-stay payment against a booking.
func (u *frontDeskUsecase) RecordPayment(ctx context.Context, bookingID uuid.UUID, req *dto.RecordPaymentRequest) (*dto.TransactionResponse, error) {
	db := u.db.WithContext(ctx)

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", bookingID)
	}

	description := req.Description
	if description == "" {
		description = "Payment"
	}
	transaction, err := u.ledger.RecordPayment(db, booking.ID, req.Amount, req.Method, description)
	if err != nil {
		return nil, err
	}

	u.log.Infof("Payment recorded: booking=%s amount=%s", booking.ID, req.Amount)
	return converter.TransactionToResponse(transaction), nil
}

func (u *frontDeskUsecase) GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", bookingID)
	}
	return converter.BookingToResponse(booking), nil
}

func (u *frontDeskUsecase) ListBookings(ctx context.Context, status entity.BookingStatus) (*dto.BookingListResponse, error) {
	statuses := entity.BlockingStatuses()
	if status != "" {
		statuses = []entity.BookingStatus{status}
	}
	bookings, err := u.bookingRepo.FindByStatus(u.db.WithContext(ctx), statuses)
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}
	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// releaseReservedBed frees the bed hold when a pending/confirmed booking
// dies before arrival. Only reservations held for this booking's guest (or
// unconditional holds) are released.
func (u *frontDeskUsecase) releaseReservedBed(ctx context.Context, tx *gorm.DB, booking *entity.Booking, action string) (*entity.Bed, error) {
	bed, err := u.bedRepo.FindByIDForUpdate(tx, booking.BedID)
	if err != nil {
		u.log.Warnf("Failed to lock bed %s: %+v", booking.BedID, err)
		return nil, err
	}
	if bed == nil || bed.Status != entity.BedStatusReserved {
		return nil, nil
	}
	if bed.ReservedForGuestID != nil && *bed.ReservedForGuestID != booking.GuestID {
		return nil, nil
	}

	previous := bed.Status
	if err := bed.CancelReservation(); err != nil {
		return nil, err
	}
	if err := u.bedRepo.Update(tx, bed); err != nil {
		u.log.Warnf("Failed to update bed %s: %+v", bed.ID, err)
		return nil, err
	}
	if err := u.history.Record(tx, bed.ID, &booking.GuestID, action, previous, bed.Status, "", performedBy(ctx)); err != nil {
		return nil, err
	}
	return bed, nil
}

// findOrCreateGuest matches a guest by document number, refreshing contact
// fields on a repeat stay, or creates a new record on a first stay.
func (u *frontDeskUsecase) findOrCreateGuest(tx *gorm.DB, input *dto.GuestInput) (*entity.Guest, error) {
	guest, err := u.guestRepo.FindByDocumentNumber(tx, input.DocumentNumber)
	if err != nil {
		u.log.Warnf("Failed to find guest by document %s: %+v", input.DocumentNumber, err)
		return nil, err
	}
	if guest != nil {
		guest.UpdateContact(input.PhoneNumber, input.Email, input.Nationality)
		if err := u.guestRepo.Update(tx, guest); err != nil {
			u.log.Warnf("Failed to update guest %s: %+v", guest.ID, err)
			return nil, err
		}
		return guest, nil
	}

	guest = &entity.Guest{
		FullName:       input.FullName,
		DocumentNumber: input.DocumentNumber,
		PhoneNumber:    input.PhoneNumber,
		Email:          input.Email,
		Nationality:    input.Nationality,
	}
	if err := u.guestRepo.Create(tx, guest); err != nil {
		u.log.Warnf("Failed to create guest: %+v", err)
		return nil, err
	}
	return guest, nil
}

// performedBy resolves the acting staff member from the session, falling
// back to "system" for unauthenticated internal calls.
func performedBy(ctx context.Context) string {
	if email, ok := middleware.GetUserEmailFromContext(ctx); ok {
		return email
	}
	return "system"
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperr.Validation("invalid date %q, use YYYY-MM-DD", value)
	}
	return t.UTC(), nil
}

func parseStayRange(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := parseDate(checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := parseDate(checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, apperr.Validation("check-out must be after check-in")
	}
	return checkIn, checkOut, nil
}

func truncateToDay(t time.Time) time.Time {
	return t.Truncate(24 * time.Hour)
}

// generateConfirmationCode generates a unique human-readable code: HB-YYYYMMDD-XXXXXX
func generateConfirmationCode(checkIn time.Time) string {
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("HB-%s-%06X", checkIn.Format("20060102"), randomBytes)
}
