package service_test

import (
	"context"

	"bankledger-backend/internal/domain"

	"github.com/google/uuid"
)

// Hand-rolled fakes recording the calls that reach the repository layer.

type fakeLedgerRepo struct {
	calls   int
	lastRef uuid.UUID
	txn     *domain.Transaction
	balance int64
	err     error
}

func (f *fakeLedgerRepo) Deposit(_ context.Context, iban string, amount int64, ref uuid.UUID) (*domain.Transaction, error) {
	f.calls++
	f.lastRef = ref
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Transaction{Receiver: &iban, Kind: domain.KindDeposit, Amount: amount, Reference: ref}, nil
}

func (f *fakeLedgerRepo) CreditInterest(_ context.Context, iban string, amount int64, ref uuid.UUID) (*domain.Transaction, error) {
	f.calls++
	f.lastRef = ref
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Transaction{Receiver: &iban, Kind: domain.KindInterest, Amount: amount, Reference: ref}, nil
}

func (f *fakeLedgerRepo) Withdraw(_ context.Context, iban string, amount int64, ref uuid.UUID) (*domain.Transaction, error) {
	f.calls++
	f.lastRef = ref
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Transaction{Sender: &iban, Kind: domain.KindWithdrawal, Amount: amount, Reference: ref}, nil
}

func (f *fakeLedgerRepo) Transfer(_ context.Context, from, to string, amount int64, ref uuid.UUID) (*domain.Transaction, error) {
	f.calls++
	f.lastRef = ref
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Transaction{Sender: &from, Receiver: &to, Kind: domain.KindTransfer, Amount: amount, Reference: ref}, nil
}

func (f *fakeLedgerRepo) GetBalance(context.Context, string) (int64, error) {
	return f.balance, f.err
}

type fakeAccountRepo struct {
	account *domain.Account
	pkg     *domain.Package
	created *domain.Account
	charges []domain.FeeCharge
	err     error
}

func (f *fakeAccountRepo) Create(_ context.Context, account *domain.Account, pkg *domain.Package) error {
	if f.err != nil {
		return f.err
	}
	pkg.ID = 3
	f.created = account
	return nil
}

func (f *fakeAccountRepo) GetByIBAN(context.Context, string) (*domain.Account, error) {
	return f.account, f.err
}

func (f *fakeAccountRepo) ListByCustomer(context.Context, int64) ([]domain.Account, error) {
	if f.account == nil {
		return nil, f.err
	}
	return []domain.Account{*f.account}, f.err
}

func (f *fakeAccountRepo) GetPackage(context.Context, string) (*domain.Package, error) {
	return f.pkg, f.err
}

func (f *fakeAccountRepo) ListFeeCharges(context.Context) ([]domain.FeeCharge, error) {
	return f.charges, f.err
}

type fakeCustomerRepo struct {
	customer  *domain.Customer
	summaries []domain.CustomerSummary
	deleted   []int64
	updated   *domain.Customer
	err       error
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	if f.err != nil {
		return f.err
	}
	customer.ID = 42
	return nil
}

func (f *fakeCustomerRepo) GetByID(context.Context, int64) (*domain.Customer, error) {
	return f.customer, f.err
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	f.updated = customer
	return f.err
}

func (f *fakeCustomerRepo) ListSummaries(context.Context) ([]domain.CustomerSummary, error) {
	return f.summaries, f.err
}

func (f *fakeCustomerRepo) DeleteCascade(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

type fakeTransactionRepo struct {
	lastLimit int
	txs       []domain.Transaction
	stats     *domain.Statistics
	err       error
}

func (f *fakeTransactionRepo) ListByAccount(_ context.Context, _ string, limit int) ([]domain.Transaction, error) {
	f.lastLimit = limit
	return f.txs, f.err
}

func (f *fakeTransactionRepo) ListByCustomer(_ context.Context, _ int64, limit int) ([]domain.Transaction, error) {
	f.lastLimit = limit
	return f.txs, f.err
}

func (f *fakeTransactionRepo) ListRecent(_ context.Context, limit int) ([]domain.Transaction, error) {
	f.lastLimit = limit
	return f.txs, f.err
}

func (f *fakeTransactionRepo) GetStatistics(context.Context) (*domain.Statistics, error) {
	return f.stats, f.err
}
