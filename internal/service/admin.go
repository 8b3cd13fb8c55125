package service

import (
	"context"
	"time"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"
)

type adminService struct {
	customerRepo repository.CustomerRepository
	accountRepo  repository.AccountRepository
}

func NewAdminService(
	customerRepo repository.CustomerRepository,
	accountRepo repository.AccountRepository,
) AdminService {
	return &adminService{
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
	}
}

func (s *adminService) CreateCustomer(ctx context.Context, firstName, lastName, address string, birthDate time.Time) (*domain.Customer, error) {
	customer, err := domain.NewCustomer(firstName, lastName, address, birthDate)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *adminService) UpdateCustomer(ctx context.Context, id int64, firstName, lastName, address string, birthDate time.Time) error {
	customer, err := domain.NewCustomer(firstName, lastName, address, birthDate)
	if err != nil {
		return err
	}
	customer.ID = id
	return s.customerRepo.Update(ctx, customer)
}

func (s *adminService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *adminService) ListCustomerSummaries(ctx context.Context) ([]domain.CustomerSummary, error) {
	return s.customerRepo.ListSummaries(ctx)
}

func (s *adminService) DeleteCustomer(ctx context.Context, id int64) error {
	return s.customerRepo.DeleteCascade(ctx, id)
}

func (s *adminService) OpenAccount(ctx context.Context, iban string, customerID int64, pkg *domain.Package) (*domain.Account, error) {
	account, err := domain.NewAccount(iban, customerID)
	if err != nil {
		return nil, err
	}
	validated, err := domain.NewPackage(pkg.Name, pkg.Fee, pkg.BaseLimit, pkg.DailyLimit)
	if err != nil {
		return nil, err
	}
	if err := s.accountRepo.Create(ctx, account, validated); err != nil {
		return nil, err
	}
	account.PackageID = validated.ID
	return account, nil
}

func (s *adminService) ListAccounts(ctx context.Context, customerID int64) ([]domain.Account, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.accountRepo.ListByCustomer(ctx, customerID)
}

func (s *adminService) GetPackageForAccount(ctx context.Context, iban string) (*domain.Package, error) {
	return s.accountRepo.GetPackage(ctx, iban)
}
