package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrDuplicateTransaction = errors.New("transaction already exists")
	ErrGatewayUnreachable   = errors.New("payment gateway unreachable")

	ErrGatewayTimeout = fmt.Errorf("%w: request timed out", ErrGatewayUnreachable)

	// ErrAlreadyTerminal is not a failure: it tells the caller that the
	// transaction was settled earlier and nothing was changed.
	ErrAlreadyTerminal = errors.New("transaction already in terminal state")
)

type InsufficientBalanceError struct {
	Requested int64
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient words: requested %d, available %d", e.Requested, e.Available)
}

type GatewayRejectedError struct {
	Message string
}

func (e *GatewayRejectedError) Error() string {
	return fmt.Sprintf("payment rejected by provider: %s", e.Message)
}
