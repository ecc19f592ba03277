package converter

import (
	"go-hostel-pms/internal/delivery/dto"
	"go-hostel-pms/internal/domain/entity"
)

// TransactionToResponse converts a Transaction entity to TransactionResponse DTO
func TransactionToResponse(transaction *entity.Transaction) *dto.TransactionResponse {
	if transaction == nil {
		return nil
	}

	return &dto.TransactionResponse{
		ID:          transaction.ID,
		BookingID:   transaction.BookingID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Method:      transaction.Method,
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
	}
}

// TransactionsToResponses converts a slice of Transaction entities to slice of TransactionResponse DTOs
func TransactionsToResponses(transactions []entity.Transaction) []dto.TransactionResponse {
	responses := make([]dto.TransactionResponse, len(transactions))
	for i := range transactions {
		resp := TransactionToResponse(&transactions[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
