package service

import (
	"errors"
	"testing"

	"go-hostel-pms/internal/domain/entity"
	"go-hostel-pms/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(db *gorm.DB, transaction *entity.Transaction) error {
	args := m.Called(db, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.Transaction, error) {
	args := m.Called(db, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByGuestID(db *gorm.DB, guestID uuid.UUID) ([]entity.Transaction, error) {
	args := m.Called(db, guestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Transaction), args.Error(1)
}

func amount(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestLedgerService_RecordCharge(t *testing.T) {
	repo := &MockTransactionRepository{}
	ledger := NewLedgerService(logrus.New(), repo)
	bookingID := uuid.New()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
		return tx.BookingID == bookingID &&
			tx.Type == entity.TransactionTypeCharge &&
			tx.Amount.Equal(amount("100"))
	})).Return(nil)

	tx, err := ledger.RecordCharge(nil, bookingID, amount("100"), "", "Stay charge: 4 nights x 25")

	assert.NoError(t, err)
	assert.Equal(t, entity.TransactionTypeCharge, tx.Type)
	repo.AssertExpectations(t)
}

func TestLedgerService_RejectsNonPositiveAmounts(t *testing.T) {
	repo := &MockTransactionRepository{}
	ledger := NewLedgerService(logrus.New(), repo)
	bookingID := uuid.New()

	_, err := ledger.RecordCharge(nil, bookingID, decimal.Zero, "", "zero")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = ledger.RecordPayment(nil, bookingID, amount("-10"), "cash", "negative")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLedgerService_BalanceFor(t *testing.T) {
	repo := &MockTransactionRepository{}
	ledger := NewLedgerService(logrus.New(), repo)
	bookingID := uuid.New()

	// 100 charge + 25 charge - 30 payment - 20 payment = 75 still owed.
	repo.On("FindByBookingID", mock.Anything, bookingID).Return([]entity.Transaction{
		{Type: entity.TransactionTypeCharge, Amount: amount("100")},
		{Type: entity.TransactionTypeCharge, Amount: amount("25")},
		{Type: entity.TransactionTypePayment, Amount: amount("30")},
		{Type: entity.TransactionTypePayment, Amount: amount("20")},
	}, nil)

	balance, err := ledger.BalanceFor(nil, bookingID)

	assert.NoError(t, err)
	assert.True(t, balance.Equal(amount("75")), "got %s", balance)
}

func TestLedgerService_BalanceFor_RepoError(t *testing.T) {
	repo := &MockTransactionRepository{}
	ledger := NewLedgerService(logrus.New(), repo)
	bookingID := uuid.New()

	repo.On("FindByBookingID", mock.Anything, bookingID).Return(nil, errors.New("connection reset"))

	_, err := ledger.BalanceFor(nil, bookingID)

	assert.Error(t, err)
}

func TestBalance_OrderIndependent(t *testing.T) {
	transactions := []entity.Transaction{
		{Type: entity.TransactionTypeCharge, Amount: amount("120.50")},
		{Type: entity.TransactionTypePayment, Amount: amount("50")},
		{Type: entity.TransactionTypeRefund, Amount: amount("20.50")},
		{Type: entity.TransactionTypeCharge, Amount: amount("15")},
	}
	want := Balance(transactions)

	reversed := []entity.Transaction{transactions[3], transactions[2], transactions[1], transactions[0]}

	assert.True(t, Balance(reversed).Equal(want))
	assert.True(t, want.Equal(amount("65")), "got %s", want)
}

func TestBalance_RefundReducesBalance(t *testing.T) {
	transactions := []entity.Transaction{
		{Type: entity.TransactionTypeCharge, Amount: amount("100")},
		{Type: entity.TransactionTypePayment, Amount: amount("100")},
		{Type: entity.TransactionTypeRefund, Amount: amount("40")},
	}

	// Fully paid then 40 refunded: the ledger owes the guest nothing, the
	// stay shows -40 (credit) until an offsetting charge lands.
	assert.True(t, Balance(transactions).Equal(amount("-40")))
}

func TestBalance_Empty(t *testing.T) {
	assert.True(t, Balance(nil).IsZero())
}
