package apperr

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsSetKind(t *testing.T) {
	assert.Equal(t, KindNotFound, NotFound("bed %s not found", "x").Kind)
	assert.Equal(t, KindInvalidState, InvalidState("bed is %s", "dirty").Kind)
	assert.Equal(t, KindValidation, Validation("bad input").Kind)
	assert.Equal(t, KindConflict, Conflict("dates taken", nil).Kind)
}

func TestError_Message(t *testing.T) {
	err := NotFound("bed %s not found", "A-01")

	assert.Equal(t, "not_found: bed A-01 not found", err.Error())
}

func TestConflict_CarriesDetails(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	details := []ConflictDetail{
		{Source: "internal", Ref: "HB-20260901-AA11BB", CheckIn: checkIn, CheckOut: checkOut},
		{Source: "Booking.com", Ref: "BK-123", CheckIn: checkIn, CheckOut: checkOut},
	}

	err := Conflict("requested dates are not available", details)

	assert.Len(t, err.Conflicts, 2)
	assert.Equal(t, "Booking.com", err.Conflicts[1].Source)
}

func TestAsError_Wrapped(t *testing.T) {
	inner := InvalidState("cannot check out")
	wrapped := fmt.Errorf("closing stay: %w", inner)

	got := AsError(wrapped)

	assert.NotNil(t, got)
	assert.Equal(t, KindInvalidState, got.Kind)
}

func TestAsError_NotAnAppError(t *testing.T) {
	assert.Nil(t, AsError(fmt.Errorf("plain error")))
	assert.Nil(t, AsError(nil))
}

func TestIsKind(t *testing.T) {
	err := Validation("check-out must be after check-in")

	assert.True(t, IsKind(err, KindValidation))
	assert.False(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(nil, KindValidation))
}
