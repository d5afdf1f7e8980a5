package serviceerrs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsufficientFundsError(t *testing.T) {
	err := fmt.Errorf("on attempt #0 error occured: %w",
		&InsufficientFundsError{Balance: 10, Requested: 15})

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.NotErrorIs(t, err, ErrNotFound)

	var fundsErr *InsufficientFundsError
	require.True(t, errors.As(err, &fundsErr))
	assert.Equal(t, int64(5), fundsErr.Shortfall())
	assert.Equal(t, "insufficient funds: balance 10, requested 15", fundsErr.Error())
}
