package repository

import (
	"go-hostel-pms/internal/domain/entity"
	domainRepo "go-hostel-pms/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct{}

func NewTransactionRepository() domainRepo.TransactionRepository {
	return &transactionRepository{}
}

func (r *transactionRepository) Create(db *gorm.DB, transaction *entity.Transaction) error {
	return db.Create(transaction).Error
}

func (r *transactionRepository) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	err := db.Where("booking_id = ?", bookingID).
		Order("created_at ASC, id ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *transactionRepository) FindByGuestID(db *gorm.DB, guestID uuid.UUID) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	err := db.Joins("JOIN bookings ON bookings.id = transactions.booking_id").
		Where("bookings.guest_id = ?", guestID).
		Order("transactions.created_at ASC, transactions.id ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
