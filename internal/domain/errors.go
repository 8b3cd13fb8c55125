package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is returned when a monetary amount is zero or negative
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrAccountNotFound is returned when the referenced account does not exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrSameAccount is returned when a transfer names the same account twice
	ErrSameAccount = errors.New("sender and receiver must differ")

	// ErrInsufficientFunds is returned when a debit would drive the balance negative
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDailyLimitExceeded is returned when an operation would exceed the
	// package's daily movement cap
	ErrDailyLimitExceeded = errors.New("daily limit exceeded")

	// ErrEntityNotFound is returned on customer or package lookups that match nothing
	ErrEntityNotFound = errors.New("entity not found")

	// ErrConstraintViolation is returned when the store rejects a write on a
	// referential or domain check
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrTransient is returned on lock or timeout contention; the operation had
	// no effect and is safe to retry
	ErrTransient = errors.New("transient storage error")
)

// AccountRole identifies which side of an operation an account sits on.
type AccountRole string

const (
	RoleSender   AccountRole = "sender"
	RoleReceiver AccountRole = "receiver"
)

// AccountNotFoundError reports a missing account together with its role, so a
// failed transfer can say which of the two accounts was unknown. It matches
// ErrAccountNotFound under errors.Is.
type AccountNotFoundError struct {
	Role AccountRole
	IBAN string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("%s account %s not found", e.Role, e.IBAN)
}

func (e *AccountNotFoundError) Unwrap() error {
	return ErrAccountNotFound
}

// NewAccountNotFound builds an AccountNotFoundError for the given role.
func NewAccountNotFound(role AccountRole, iban string) error {
	return &AccountNotFoundError{Role: role, IBAN: iban}
}
