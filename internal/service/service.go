package service

import (
	"context"
	"time"

	"bankledger-backend/internal/domain"
)

// LedgerService is the only path by which account balances change. Every
// operation either fully commits or has no effect; failures come back as
// errors from the domain taxonomy, never as partial state.
type LedgerService interface {
	Deposit(ctx context.Context, iban string, amount int64) (*domain.Transaction, error)
	Withdraw(ctx context.Context, iban string, amount int64) (*domain.Transaction, error)
	Transfer(ctx context.Context, from, to string, amount int64) (*domain.Transaction, error)
	CreditInterest(ctx context.Context, iban string, amount int64) (*domain.Transaction, error)
}

// QueryService provides the side-effect-free read projections.
type QueryService interface {
	GetBalance(ctx context.Context, iban string) (int64, error)
	GetAccount(ctx context.Context, iban string) (*domain.Account, *domain.Package, error)
	ListAccountTransactions(ctx context.Context, iban string, limit int) ([]domain.Transaction, error)
	ListCustomerTransactions(ctx context.Context, customerID int64, limit int) ([]domain.Transaction, error)
	ListRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}

// AdminService covers the provisioning flows: onboarding customers and
// accounts, and the cascading customer delete. It never moves money.
type AdminService interface {
	CreateCustomer(ctx context.Context, firstName, lastName, address string, birthDate time.Time) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, firstName, lastName, address string, birthDate time.Time) error
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	ListCustomerSummaries(ctx context.Context) ([]domain.CustomerSummary, error)
	DeleteCustomer(ctx context.Context, id int64) error
	OpenAccount(ctx context.Context, iban string, customerID int64, pkg *domain.Package) (*domain.Account, error)
	ListAccounts(ctx context.Context, customerID int64) ([]domain.Account, error)
	GetPackageForAccount(ctx context.Context, iban string) (*domain.Package, error)
}
