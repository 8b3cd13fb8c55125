package repository

import (
	"context"

	"bankledger-backend/internal/domain"

	"github.com/google/uuid"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	ListSummaries(ctx context.Context) ([]domain.CustomerSummary, error)

	// DeleteCascade removes the customer, its accounts, their packages and
	// every transaction touching those accounts as one transaction.
	DeleteCascade(ctx context.Context, id int64) error
}

type AccountRepository interface {
	// Create inserts the package instance row and the account referencing it
	// in one transaction.
	Create(ctx context.Context, account *domain.Account, pkg *domain.Package) error
	GetByIBAN(ctx context.Context, iban string) (*domain.Account, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error)
	GetPackage(ctx context.Context, iban string) (*domain.Package, error)
	ListFeeCharges(ctx context.Context) ([]domain.FeeCharge, error)
}

// LedgerRepository is the only write path for balances. Each operation runs
// as one store transaction: the row locks, the fresh daily-limit aggregate,
// the transaction insert and the balance updates commit together or not at
// all.
type LedgerRepository interface {
	Deposit(ctx context.Context, iban string, amount int64, ref uuid.UUID) (*domain.Transaction, error)
	CreditInterest(ctx context.Context, iban string, amount int64, ref uuid.UUID) (*domain.Transaction, error)
	Withdraw(ctx context.Context, iban string, amount int64, ref uuid.UUID) (*domain.Transaction, error)
	Transfer(ctx context.Context, from, to string, amount int64, ref uuid.UUID) (*domain.Transaction, error)
	GetBalance(ctx context.Context, iban string) (int64, error)
}

type TransactionRepository interface {
	ListByAccount(ctx context.Context, iban string, limit int) ([]domain.Transaction, error)
	ListByCustomer(ctx context.Context, customerID int64, limit int) ([]domain.Transaction, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Transaction, error)
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
