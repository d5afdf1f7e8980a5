package serviceerrs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound                 = errors.New("not found")
	ErrAlreadyExists            = errors.New("already exists")
	ErrUnexpected               = errors.New("unexpected error")
	ErrInsufficientFunds        = errors.New("insufficient funds")
	ErrInvalidAmount            = errors.New("amount must be positive")
	ErrInvalidReason            = errors.New("unknown ledger reason")
	ErrEmptyUserID              = errors.New("user id must be not empty")
	ErrUnknownRewardEvent       = errors.New("unknown reward event")
	ErrInvalidRadius            = errors.New("radius must be positive")
	ErrBalanceOverflow          = errors.New("balance would overflow")
	ErrPageOutOfRange           = errors.New("page is out of range")
	ErrEmptyPlaceID             = errors.New("place id must be not empty")
	ErrTokenExpired             = errors.New("token expired")
	ErrSemaphoreTimeoutExceeded = errors.New("semaphore acquire timeout exceeded")
)

// InsufficientFundsError reports a rejected debit together with the balance
// it was checked against.
type InsufficientFundsError struct {
	Balance   int64
	Requested int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %d, requested %d", e.Balance, e.Requested)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

func (e *InsufficientFundsError) Shortfall() int64 {
	return e.Requested - e.Balance
}
