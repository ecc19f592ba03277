package service

import (
	"go-hostel-pms/internal/domain/entity"
	"go-hostel-pms/internal/domain/repository"
	"go-hostel-pms/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LedgerService owns the per-stay money trail. Transactions are append-only:
// a correction is always a new offsetting row, never an update, so the full
// trail stays replayable. Balance is derived by folding the rows; the fold is
// commutative, so backfilled corrections arriving out of order are harmless.
//
// Writes take the caller's *gorm.DB so a charge lands in the same database
// transaction as the booking/bed mutation that caused it.
type LedgerService interface {
	RecordCharge(db *gorm.DB, bookingID uuid.UUID, amount decimal.Decimal, method, description string) (*entity.Transaction, error)
	RecordPayment(db *gorm.DB, bookingID uuid.UUID, amount decimal.Decimal, method, description string) (*entity.Transaction, error)
	RecordRefund(db *gorm.DB, bookingID uuid.UUID, amount decimal.Decimal, method, description string) (*entity.Transaction, error)
	BalanceFor(db *gorm.DB, bookingID uuid.UUID) (decimal.Decimal, error)
	ListForBooking(db *gorm.DB, bookingID uuid.UUID) ([]entity.Transaction, error)
	OutstandingForGuest(db *gorm.DB, guestID uuid.UUID) (decimal.Decimal, error)
}

type ledgerService struct {
	log             *logrus.Logger
	transactionRepo repository.TransactionRepository
}

func NewLedgerService(log *logrus.Logger, transactionRepo repository.TransactionRepository) LedgerService {
	return &ledgerService{
		log:             log,
		transactionRepo: transactionRepo,
	}
}

func (s *ledgerService) record(db *gorm.DB, bookingID uuid.UUID, txType entity.TransactionType, amount decimal.Decimal, method, description string) (*entity.Transaction, error) {
	if !amount.IsPositive() {
		return nil, apperr.Validation("%s amount must be positive, got %s", txType, amount)
	}

	transaction := &entity.Transaction{
		BookingID:   bookingID,
		Type:        txType,
		Amount:      amount,
		Method:      method,
		Description: description,
	}
	if err := s.transactionRepo.Create(db, transaction); err != nil {
		s.log.Warnf("Failed to record %s for booking %s: %+v", txType, bookingID, err)
		return nil, err
	}
	return transaction, nil
}

func (s *ledgerService) RecordCharge(db *gorm.DB, bookingID uuid.UUID, amount decimal.Decimal, method, description string) (*entity.Transaction, error) {
	return s.record(db, bookingID, entity.TransactionTypeCharge, amount, method, description)
}

func (s *ledgerService) RecordPayment(db *gorm.DB, bookingID uuid.UUID, amount decimal.Decimal, method, description string) (*entity.Transaction, error) {
	return s.record(db, bookingID, entity.TransactionTypePayment, amount, method, description)
}

func (s *ledgerService) RecordRefund(db *gorm.DB, bookingID uuid.UUID, amount decimal.Decimal, method, description string) (*entity.Transaction, error) {
	return s.record(db, bookingID, entity.TransactionTypeRefund, amount, method, description)
}

// BalanceFor folds every transaction of the booking into what the guest still
// owes: sum(charges) - sum(payments) - sum(refunds).
func (s *ledgerService) BalanceFor(db *gorm.DB, bookingID uuid.UUID) (decimal.Decimal, error) {
	transactions, err := s.transactionRepo.FindByBookingID(db, bookingID)
	if err != nil {
		return decimal.Zero, err
	}
	return Balance(transactions), nil
}

func (s *ledgerService) ListForBooking(db *gorm.DB, bookingID uuid.UUID) ([]entity.Transaction, error) {
	return s.transactionRepo.FindByBookingID(db, bookingID)
}

func (s *ledgerService) OutstandingForGuest(db *gorm.DB, guestID uuid.UUID) (decimal.Decimal, error) {
	transactions, err := s.transactionRepo.FindByGuestID(db, guestID)
	if err != nil {
		return decimal.Zero, err
	}
	return Balance(transactions), nil
}

// Balance folds a transaction stream into a running balance. Addition is
// commutative, so the result is independent of insertion order.
func Balance(transactions []entity.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for i := range transactions {
		balance = balance.Add(transactions[i].Signed())
	}
	return balance
}
