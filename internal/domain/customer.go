package domain

import (
	"fmt"
	"strings"
	"time"
)

// Customer is an account holder. Deleting a customer cascades to its
// accounts, their packages and every transaction touching those accounts.
type Customer struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Address   string    `json:"address"`
	BirthDate time.Time `json:"birth_date"`
}

// NewCustomer validates and builds a customer record. Names and address must
// be non-empty after trimming, mirroring the store-level checks.
func NewCustomer(firstName, lastName, address string, birthDate time.Time) (*Customer, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	address = strings.TrimSpace(address)

	if firstName == "" {
		return nil, fmt.Errorf("%w: first name is required", ErrConstraintViolation)
	}
	if lastName == "" {
		return nil, fmt.Errorf("%w: last name is required", ErrConstraintViolation)
	}
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", ErrConstraintViolation)
	}
	if birthDate.IsZero() {
		return nil, fmt.Errorf("%w: birth date is required", ErrConstraintViolation)
	}

	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		Address:   address,
		BirthDate: birthDate,
	}, nil
}

// CustomerSummary is the admin overview row: a customer plus aggregate
// figures over its accounts.
type CustomerSummary struct {
	Customer
	AccountCount int64 `json:"account_count"`
	TotalBalance int64 `json:"total_balance"`
}
