package service

import (
	"testing"

	"go-hostel-pms/internal/domain/entity"
	"go-hostel-pms/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPricingEngine_QuoteStay(t *testing.T) {
	engine := NewPricingEngine(decimal.NewFromInt(25))
	bed := &entity.Bed{NightlyPrice: decimal.NewFromInt(30)}

	quote, err := engine.QuoteStay(bed, day(1), day(5))

	assert.NoError(t, err)
	assert.Equal(t, 4, quote.Nights)
	assert.True(t, quote.NightlyRate.Equal(decimal.NewFromInt(30)))
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(120)))
}

func TestPricingEngine_FallsBackToDefaultRate(t *testing.T) {
	engine := NewPricingEngine(decimal.NewFromInt(25))
	bed := &entity.Bed{}

	quote, err := engine.QuoteStay(bed, day(1), day(3))

	assert.NoError(t, err)
	assert.True(t, quote.NightlyRate.Equal(decimal.NewFromInt(25)))
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(50)))
}

func TestPricingEngine_ExtensionDeltaOnly(t *testing.T) {
	engine := NewPricingEngine(decimal.NewFromInt(25))
	bed := &entity.Bed{NightlyPrice: decimal.NewFromInt(30)}

	// Extending from the 5th to the 8th prices only the three added nights,
	// never the already-charged original range.
	quote, err := engine.QuoteStay(bed, day(5), day(8))

	assert.NoError(t, err)
	assert.Equal(t, 3, quote.Nights)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(90)))
}

func TestPricingEngine_RejectsInvertedRange(t *testing.T) {
	engine := NewPricingEngine(decimal.NewFromInt(25))
	bed := &entity.Bed{}

	_, err := engine.QuoteStay(bed, day(5), day(5))
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = engine.QuoteStay(bed, day(5), day(1))
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestPricingEngine_FractionalRate(t *testing.T) {
	engine := NewPricingEngine(decimal.NewFromInt(25))
	rate, _ := decimal.NewFromString("19.99")
	bed := &entity.Bed{NightlyPrice: rate}

	quote, err := engine.QuoteStay(bed, day(1), day(4))

	assert.NoError(t, err)
	want, _ := decimal.NewFromString("59.97")
	assert.True(t, quote.Total.Equal(want), "got %s", quote.Total)
}
