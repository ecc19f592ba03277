package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Signed(t *testing.T) {
	amount := decimal.NewFromInt(50)

	charge := Transaction{Type: TransactionTypeCharge, Amount: amount}
	payment := Transaction{Type: TransactionTypePayment, Amount: amount}
	refund := Transaction{Type: TransactionTypeRefund, Amount: amount}

	assert.True(t, charge.Signed().Equal(amount))
	assert.True(t, payment.Signed().Equal(amount.Neg()))
	assert.True(t, refund.Signed().Equal(amount.Neg()))
}
