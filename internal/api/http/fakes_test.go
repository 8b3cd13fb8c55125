package http_test

import (
	"context"
	"time"

	"bankledger-backend/internal/domain"

	"github.com/google/uuid"
)

// Fake services returning canned values, so the tests exercise only
// routing, parsing and the error-to-status mapping.

type fakeLedgerService struct {
	err error
}

func (f *fakeLedgerService) transaction(kind domain.TransactionKind, sender, receiver *string, amount int64) (*domain.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Transaction{
		ID:        1,
		Sender:    sender,
		Receiver:  receiver,
		Kind:      kind,
		Amount:    amount,
		Reference: uuid.New(),
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakeLedgerService) Deposit(_ context.Context, iban string, amount int64) (*domain.Transaction, error) {
	return f.transaction(domain.KindDeposit, nil, &iban, amount)
}

func (f *fakeLedgerService) Withdraw(_ context.Context, iban string, amount int64) (*domain.Transaction, error) {
	return f.transaction(domain.KindWithdrawal, &iban, nil, amount)
}

func (f *fakeLedgerService) Transfer(_ context.Context, from, to string, amount int64) (*domain.Transaction, error) {
	return f.transaction(domain.KindTransfer, &from, &to, amount)
}

func (f *fakeLedgerService) CreditInterest(_ context.Context, iban string, amount int64) (*domain.Transaction, error) {
	return f.transaction(domain.KindInterest, nil, &iban, amount)
}

type fakeQueryService struct {
	balance int64
	account *domain.Account
	pkg     *domain.Package
	txs     []domain.Transaction
	stats   *domain.Statistics
	limit   int
	err     error
}

func (f *fakeQueryService) GetBalance(context.Context, string) (int64, error) {
	return f.balance, f.err
}

func (f *fakeQueryService) GetAccount(context.Context, string) (*domain.Account, *domain.Package, error) {
	return f.account, f.pkg, f.err
}

func (f *fakeQueryService) ListAccountTransactions(_ context.Context, _ string, limit int) ([]domain.Transaction, error) {
	f.limit = limit
	return f.txs, f.err
}

func (f *fakeQueryService) ListCustomerTransactions(_ context.Context, _ int64, limit int) ([]domain.Transaction, error) {
	f.limit = limit
	return f.txs, f.err
}

func (f *fakeQueryService) ListRecentTransactions(_ context.Context, limit int) ([]domain.Transaction, error) {
	f.limit = limit
	return f.txs, f.err
}

func (f *fakeQueryService) GetStatistics(context.Context) (*domain.Statistics, error) {
	return f.stats, f.err
}

type fakeAdminService struct {
	customer  *domain.Customer
	summaries []domain.CustomerSummary
	account   *domain.Account
	accounts  []domain.Account
	pkg       *domain.Package
	deleted   []int64
	err       error
}

func (f *fakeAdminService) CreateCustomer(_ context.Context, firstName, lastName, address string, birthDate time.Time) (*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Customer{ID: 42, FirstName: firstName, LastName: lastName, Address: address, BirthDate: birthDate}, nil
}

func (f *fakeAdminService) UpdateCustomer(context.Context, int64, string, string, string, time.Time) error {
	return f.err
}

func (f *fakeAdminService) GetCustomer(context.Context, int64) (*domain.Customer, error) {
	return f.customer, f.err
}

func (f *fakeAdminService) ListCustomerSummaries(context.Context) ([]domain.CustomerSummary, error) {
	return f.summaries, f.err
}

func (f *fakeAdminService) DeleteCustomer(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAdminService) OpenAccount(context.Context, string, int64, *domain.Package) (*domain.Account, error) {
	return f.account, f.err
}

func (f *fakeAdminService) ListAccounts(context.Context, int64) ([]domain.Account, error) {
	return f.accounts, f.err
}

func (f *fakeAdminService) GetPackageForAccount(context.Context, string) (*domain.Package, error) {
	return f.pkg, f.err
}
