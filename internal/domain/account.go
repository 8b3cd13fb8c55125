package domain

import "fmt"

// IBANLength is the fixed length of a Slovenian-format IBAN.
const IBANLength = 19

// Account holds an integer balance in cents. The balance is the sum of all
// committed credits minus debits and never goes negative through a
// withdrawal or transfer.
type Account struct {
	IBAN       string `json:"iban"`
	CustomerID int64  `json:"customer_id"`
	PackageID  int64  `json:"package_id"`
	Balance    int64  `json:"balance"`
}

// ValidateIBAN checks the fixed-length account identifier.
func ValidateIBAN(iban string) error {
	if len(iban) != IBANLength {
		return fmt.Errorf("%w: IBAN must be %d characters, got %d", ErrConstraintViolation, IBANLength, len(iban))
	}
	return nil
}

// NewAccount validates and builds an account record with a zero balance.
// Balances only ever change through the ledger operations.
func NewAccount(iban string, customerID int64) (*Account, error) {
	if err := ValidateIBAN(iban); err != nil {
		return nil, err
	}
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: account requires an owner", ErrConstraintViolation)
	}
	return &Account{IBAN: iban, CustomerID: customerID}, nil
}
