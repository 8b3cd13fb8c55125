package service

import (
	"context"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"

	"github.com/google/uuid"
)

type ledgerService struct {
	ledgerRepo repository.LedgerRepository
}

func NewLedgerService(ledgerRepo repository.LedgerRepository) LedgerService {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

func (s *ledgerService) Deposit(ctx context.Context, iban string, amount int64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return s.ledgerRepo.Deposit(ctx, iban, amount, uuid.New())
}

func (s *ledgerService) Withdraw(ctx context.Context, iban string, amount int64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return s.ledgerRepo.Withdraw(ctx, iban, amount, uuid.New())
}

func (s *ledgerService) Transfer(ctx context.Context, from, to string, amount int64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if from == to {
		return nil, domain.ErrSameAccount
	}
	return s.ledgerRepo.Transfer(ctx, from, to, amount, uuid.New())
}

func (s *ledgerService) CreditInterest(ctx context.Context, iban string, amount int64) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	return s.ledgerRepo.CreditInterest(ctx, iban, amount, uuid.New())
}
