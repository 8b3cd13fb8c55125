package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionKind enumerates the four movement kinds.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
	KindTransfer   TransactionKind = "transfer"
	KindInterest   TransactionKind = "interest"
)

// Transaction is an immutable ledger record. Sender is nil for deposits and
// interest credits, Receiver is nil for withdrawals; transfers carry both.
// Rows are only ever written by the ledger engine and only ever removed as
// part of a customer cascade delete.
type Transaction struct {
	ID        int64           `json:"id"`
	Sender    *string         `json:"sender,omitempty"`
	Receiver  *string         `json:"receiver,omitempty"`
	Kind      TransactionKind `json:"kind"`
	Amount    int64           `json:"amount"`
	Reference uuid.UUID       `json:"reference"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewTransaction validates the kind/endpoint pattern and builds a record.
// The nullability rules mirror the store's CHECK constraint exactly.
func NewTransaction(kind TransactionKind, sender, receiver *string, amount int64) (*Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	switch kind {
	case KindDeposit, KindInterest:
		if sender != nil || receiver == nil {
			return nil, fmt.Errorf("%w: %s requires a receiver and no sender", ErrConstraintViolation, kind)
		}
	case KindWithdrawal:
		if sender == nil || receiver != nil {
			return nil, fmt.Errorf("%w: withdrawal requires a sender and no receiver", ErrConstraintViolation)
		}
	case KindTransfer:
		if sender == nil || receiver == nil {
			return nil, fmt.Errorf("%w: transfer requires both sender and receiver", ErrConstraintViolation)
		}
		if *sender == *receiver {
			return nil, ErrSameAccount
		}
	default:
		return nil, fmt.Errorf("%w: unknown transaction kind %q", ErrConstraintViolation, kind)
	}

	if sender != nil {
		if err := ValidateIBAN(*sender); err != nil {
			return nil, err
		}
	}
	if receiver != nil {
		if err := ValidateIBAN(*receiver); err != nil {
			return nil, err
		}
	}

	return &Transaction{
		Sender:    sender,
		Receiver:  receiver,
		Kind:      kind,
		Amount:    amount,
		Reference: uuid.New(),
	}, nil
}

// Statistics is the aggregate view across the whole store. TransactionsToday
// counts rows whose timestamp falls on the current calendar date in the
// store's timezone, the same date rule the daily limit uses.
type Statistics struct {
	TotalCustomers    int64   `json:"total_customers"`
	TotalAccounts     int64   `json:"total_accounts"`
	TotalBalance      int64   `json:"total_balance"`
	TotalTransactions int64   `json:"total_transactions"`
	TransactionsToday int64   `json:"transactions_today"`
	AverageBalance    float64 `json:"average_balance"`
}
