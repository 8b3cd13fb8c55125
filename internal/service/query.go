package service

import (
	"context"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"
)

const (
	defaultAccountHistoryLimit  = 50
	defaultCustomerHistoryLimit = 10
	defaultRecentLimit          = 100
)

type queryService struct {
	accountRepo     repository.AccountRepository
	customerRepo    repository.CustomerRepository
	ledgerRepo      repository.LedgerRepository
	transactionRepo repository.TransactionRepository
}

func NewQueryService(
	accountRepo repository.AccountRepository,
	customerRepo repository.CustomerRepository,
	ledgerRepo repository.LedgerRepository,
	transactionRepo repository.TransactionRepository,
) QueryService {
	return &queryService{
		accountRepo:     accountRepo,
		customerRepo:    customerRepo,
		ledgerRepo:      ledgerRepo,
		transactionRepo: transactionRepo,
	}
}

func (s *queryService) GetBalance(ctx context.Context, iban string) (int64, error) {
	return s.ledgerRepo.GetBalance(ctx, iban)
}

func (s *queryService) GetAccount(ctx context.Context, iban string) (*domain.Account, *domain.Package, error) {
	account, err := s.accountRepo.GetByIBAN(ctx, iban)
	if err != nil {
		return nil, nil, err
	}
	pkg, err := s.accountRepo.GetPackage(ctx, iban)
	if err != nil {
		return nil, nil, err
	}
	return account, pkg, nil
}

func (s *queryService) ListAccountTransactions(ctx context.Context, iban string, limit int) ([]domain.Transaction, error) {
	if _, err := s.accountRepo.GetByIBAN(ctx, iban); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultAccountHistoryLimit
	}
	return s.transactionRepo.ListByAccount(ctx, iban, limit)
}

func (s *queryService) ListCustomerTransactions(ctx context.Context, customerID int64, limit int) ([]domain.Transaction, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultCustomerHistoryLimit
	}
	return s.transactionRepo.ListByCustomer(ctx, customerID, limit)
}

func (s *queryService) ListRecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.transactionRepo.ListRecent(ctx, limit)
}

func (s *queryService) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	return s.transactionRepo.GetStatistics(ctx)
}
