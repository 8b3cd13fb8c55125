package domain_test

import (
	"errors"
	"testing"

	"bankledger-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ibanPtr(s string) *string { return &s }

const (
	testIBAN      = "SI56192001234567892"
	otherTestIBAN = "SI56192009876543217"
)

func TestNewTransaction(t *testing.T) {
	t.Run("ValidDeposit", func(t *testing.T) {
		txn, err := domain.NewTransaction(domain.KindDeposit, nil, ibanPtr(testIBAN), 5000)
		require.NoError(t, err)
		assert.Nil(t, txn.Sender)
		assert.Equal(t, testIBAN, *txn.Receiver)
		assert.Equal(t, int64(5000), txn.Amount)
		assert.NotEmpty(t, txn.Reference)
	})

	t.Run("ValidTransfer", func(t *testing.T) {
		txn, err := domain.NewTransaction(domain.KindTransfer, ibanPtr(testIBAN), ibanPtr(otherTestIBAN), 100)
		require.NoError(t, err)
		assert.Equal(t, testIBAN, *txn.Sender)
		assert.Equal(t, otherTestIBAN, *txn.Receiver)
	})

	t.Run("ZeroAmount", func(t *testing.T) {
		_, err := domain.NewTransaction(domain.KindDeposit, nil, ibanPtr(testIBAN), 0)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		_, err := domain.NewTransaction(domain.KindWithdrawal, ibanPtr(testIBAN), nil, -100)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("DepositWithSender", func(t *testing.T) {
		_, err := domain.NewTransaction(domain.KindDeposit, ibanPtr(testIBAN), ibanPtr(otherTestIBAN), 100)
		assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	})

	t.Run("InterestWithSender", func(t *testing.T) {
		_, err := domain.NewTransaction(domain.KindInterest, ibanPtr(testIBAN), ibanPtr(otherTestIBAN), 100)
		assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	})

	t.Run("WithdrawalWithReceiver", func(t *testing.T) {
		_, err := domain.NewTransaction(domain.KindWithdrawal, ibanPtr(testIBAN), ibanPtr(otherTestIBAN), 100)
		assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	})

	t.Run("TransferMissingReceiver", func(t *testing.T) {
		_, err := domain.NewTransaction(domain.KindTransfer, ibanPtr(testIBAN), nil, 100)
		assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	})

	t.Run("TransferSameAccount", func(t *testing.T) {
		_, err := domain.NewTransaction(domain.KindTransfer, ibanPtr(testIBAN), ibanPtr(testIBAN), 100)
		assert.ErrorIs(t, err, domain.ErrSameAccount)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := domain.NewTransaction(domain.TransactionKind("loan"), ibanPtr(testIBAN), nil, 100)
		assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	})

	t.Run("BadIBAN", func(t *testing.T) {
		_, err := domain.NewTransaction(domain.KindDeposit, nil, ibanPtr("SI56"), 100)
		assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	})
}

func TestAccountNotFoundError(t *testing.T) {
	err := domain.NewAccountNotFound(domain.RoleSender, testIBAN)

	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Contains(t, err.Error(), "sender")
	assert.Contains(t, err.Error(), testIBAN)

	var notFound *domain.AccountNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, domain.RoleSender, notFound.Role)
}
