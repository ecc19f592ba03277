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

// TransactionUsecase exposes the financial trail of a stay. Rows are
// append-only: a wrong charge is corrected by a refund row, never by editing
// or deleting the original.
type TransactionUsecase interface {
	ListForBooking(ctx context.Context, bookingID uuid.UUID) (*dto.TransactionListResponse, error)
	RecordCharge(ctx context.Context, bookingID uuid.UUID, req *dto.RecordChargeRequest) (*dto.TransactionResponse, error)
	RecordRefund(ctx context.Context, bookingID uuid.UUID, req *dto.RecordRefundRequest) (*dto.TransactionResponse, error)
}

type transactionUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	ledger      service.LedgerService
}

func NewTransactionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	ledger service.LedgerService,
) TransactionUsecase {
	return &transactionUsecase{
		db:          db,
		log:         log,
		bookingRepo: bookingRepo,
		ledger:      ledger,
	}
}

func (u *transactionUsecase) ListForBooking(ctx context.Context, bookingID uuid.UUID) (*dto.TransactionListResponse, error) {
	db := u.db.WithContext(ctx)

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", bookingID)
	}

	transactions, err := u.ledger.ListForBooking(db, booking.ID)
	if err != nil {
		u.log.Warnf("Failed to list transactions for booking %s: %+v", booking.ID, err)
		return nil, err
	}

	return &dto.TransactionListResponse{
		Transactions: converter.TransactionsToResponses(transactions),
		Balance:      service.Balance(transactions),
		Total:        len(transactions),
	}, nil
}

// RecordCharge adds an extra charge (laundry, late checkout, damages) on top
// of the stay charge.
func (u *transactionUsecase) RecordCharge(ctx context.Context, bookingID uuid.UUID, req *dto.RecordChargeRequest) (*dto.TransactionResponse, error) {
	db := u.db.WithContext(ctx)

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", bookingID)
	}

	transaction, err := u.ledger.RecordCharge(db, booking.ID, req.Amount, "", req.Description)
	if err != nil {
		return nil, err
	}

	u.log.Infof("Charge recorded: booking=%s amount=%s", booking.ID, req.Amount)
	return converter.TransactionToResponse(transaction), nil
}

func (u *transactionUsecase) RecordRefund(ctx context.Context, bookingID uuid.UUID, req *dto.RecordRefundRequest) (*dto.TransactionResponse, error) {
	db := u.db.WithContext(ctx)

	booking, err := u.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", bookingID)
	}

	transaction, err := u.ledger.RecordRefund(db, booking.ID, req.Amount, req.Method, req.Description)
	if err != nil {
		return nil, err
	}

	u.log.Infof("Refund recorded: booking=%s amount=%s", booking.ID, req.Amount)
	return converter.TransactionToResponse(transaction), nil
}
