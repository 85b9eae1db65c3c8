package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidFilterError(t *testing.T) {
	err := NewInvalidFilterError("minPrice", "abc", "must be a number")

	assert.Equal(t, `invalid filter: field=minPrice, value="abc", reason=must be a number`, err.Error())
	assert.True(t, IsInvalidFilterError(fmt.Errorf("wrapped: %w", err)))
	assert.True(t, errors.Is(err, &InvalidFilterError{}))
	assert.False(t, IsInvalidFilterError(errors.New("other")))
	assert.False(t, IsValidationError(err))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("P1", "price", "must be at least 0", -1.0)

	assert.Equal(t, "invalid entity P1: field=price, reason=must be at least 0, value=-1", err.Error())
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", err)))
	assert.True(t, errors.Is(err, &ValidationError{}))
	assert.False(t, IsInvalidFilterError(err))
}

func TestLocation_Complete(t *testing.T) {
	var nilLoc *Location
	assert.False(t, nilLoc.Complete())
	assert.False(t, (&Location{Region: "Java", City: "Solo"}).Complete())
	assert.True(t, (&Location{Region: "Java", Subregion: "Central Java", City: "Solo"}).Complete())
}
