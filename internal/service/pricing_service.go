package service

import (
	"time"

	"go-hostel-pms/internal/domain/entity"
	"go-hostel-pms/pkg/apperr"

	"github.com/shopspring/decimal"
)

// Quote is the pricing collaborator's answer for one stay. The core treats
// the numbers as opaque and stores Total as a snapshot on the booking.
type Quote struct {
	NightlyRate decimal.Decimal
	Nights      int
	Total       decimal.Decimal
}

// PricingEngine computes the price of a stay. Side-effect-free; the core
// never inspects how the rate was derived.
type PricingEngine interface {
	QuoteStay(bed *entity.Bed, checkIn, checkOut time.Time) (*Quote, error)
}

// basePricingEngine charges the bed's own nightly price, falling back to a
// configured default when the bed has no price set.
type basePricingEngine struct {
	defaultNightlyRate decimal.Decimal
}

func NewPricingEngine(defaultNightlyRate decimal.Decimal) PricingEngine {
	return &basePricingEngine{defaultNightlyRate: defaultNightlyRate}
}

func (e *basePricingEngine) QuoteStay(bed *entity.Bed, checkIn, checkOut time.Time) (*Quote, error) {
	if !checkOut.After(checkIn) {
		return nil, apperr.Validation("check-out must be after check-in")
	}

	rate := bed.NightlyPrice
	if rate.IsZero() {
		rate = e.defaultNightlyRate
	}

	nights := entity.NightsBetween(checkIn, checkOut)
	return &Quote{
		NightlyRate: rate,
		Nights:      nights,
		Total:       rate.Mul(decimal.NewFromInt(int64(nights))),
	}, nil
}
