package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"

	"github.com/google/uuid"
)

type ledgerRepository struct {
	db          *sql.DB
	lockTimeout string
}

func NewLedgerRepository(db *sql.DB, lockTimeout string) repository.LedgerRepository {
	return &ledgerRepository{db: db, lockTimeout: lockTimeout}
}

// begin opens a transaction with a bounded lock wait. A lock that cannot be
// acquired within the timeout surfaces as ErrTransient via mapError, with no
// side effect visible to anyone.
func (r *ledgerRepository) begin(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, mapError(err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%s'", r.lockTimeout)); err != nil {
		_ = tx.Rollback()
		return nil, mapError(err)
	}
	return tx, nil
}

func (r *ledgerRepository) Deposit(ctx context.Context, iban string, amount int64, ref uuid.UUID) (*domain.Transaction, error) {
	return r.credit(ctx, iban, amount, ref, domain.KindDeposit)
}

func (r *ledgerRepository) CreditInterest(ctx context.Context, iban string, amount int64, ref uuid.UUID) (*domain.Transaction, error) {
	return r.credit(ctx, iban, amount, ref, domain.KindInterest)
}

// credit handles the two sender-less kinds: lock the receiver row, append
// the transaction, bump the balance. The record is validated through the
// domain constructor before any transaction is opened.
func (r *ledgerRepository) credit(ctx context.Context, iban string, amount int64, ref uuid.UUID, kind domain.TransactionKind) (*domain.Transaction, error) {
	txn, err := domain.NewTransaction(kind, nil, &iban, amount)
	if err != nil {
		return nil, err
	}
	txn.Reference = ref

	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var balance int64
	err = tx.QueryRowContext(ctx, `SELECT balance FROM accounts WHERE iban = $1 FOR UPDATE`, iban).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewAccountNotFound(domain.RoleReceiver, iban)
	}
	if err != nil {
		return nil, mapError(err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO transactions (sender_iban, receiver_iban, kind, amount, reference)
		VALUES (NULL, $1, $2, $3, $4) RETURNING id, created_at`,
		iban, string(kind), amount, ref.String()).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE accounts SET balance = balance + $1 WHERE iban = $2`, amount, iban); err != nil {
		return nil, mapError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, mapError(err)
	}
	return txn, nil
}

func (r *ledgerRepository) Withdraw(ctx context.Context, iban string, amount int64, ref uuid.UUID) (*domain.Transaction, error) {
	txn, err := domain.NewTransaction(domain.KindWithdrawal, &iban, nil, amount)
	if err != nil {
		return nil, err
	}
	txn.Reference = ref

	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var balance int64
	var dailyLimit sql.NullInt64
	err = tx.QueryRowContext(ctx, `
		SELECT a.balance, p.daily_limit
		FROM accounts a
		JOIN packages p ON p.id = a.package_id
		WHERE a.iban = $1
		FOR UPDATE OF a`, iban).Scan(&balance, &dailyLimit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewAccountNotFound(domain.RoleSender, iban)
	}
	if err != nil {
		return nil, mapError(err)
	}

	if balance < amount {
		return nil, domain.ErrInsufficientFunds
	}

	if err := r.checkDailyLimit(ctx, tx, iban, amount, domain.KindWithdrawal, dailyLimit); err != nil {
		return nil, err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO transactions (sender_iban, receiver_iban, kind, amount, reference)
		VALUES ($1, NULL, $2, $3, $4) RETURNING id, created_at`,
		iban, string(domain.KindWithdrawal), amount, ref.String()).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE accounts SET balance = balance - $1 WHERE iban = $2`, amount, iban); err != nil {
		return nil, mapError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, mapError(err)
	}
	return txn, nil
}

func (r *ledgerRepository) Transfer(ctx context.Context, from, to string, amount int64, ref uuid.UUID) (*domain.Transaction, error) {
	txn, err := domain.NewTransaction(domain.KindTransfer, &from, &to, amount)
	if err != nil {
		return nil, err
	}
	txn.Reference = ref

	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Lock both rows in one statement, ordered by IBAN, so two opposing
	// transfers always take the locks in the same order.
	rows, err := tx.QueryContext(ctx, `
		SELECT iban, balance FROM accounts
		WHERE iban IN ($1, $2)
		ORDER BY iban
		FOR UPDATE`, from, to)
	if err != nil {
		return nil, mapError(err)
	}
	balances := make(map[string]int64, 2)
	for rows.Next() {
		var iban string
		var balance int64
		if err := rows.Scan(&iban, &balance); err != nil {
			rows.Close()
			return nil, mapError(err)
		}
		balances[iban] = balance
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	fromBalance, ok := balances[from]
	if !ok {
		return nil, domain.NewAccountNotFound(domain.RoleSender, from)
	}
	if _, ok := balances[to]; !ok {
		return nil, domain.NewAccountNotFound(domain.RoleReceiver, to)
	}

	if fromBalance < amount {
		return nil, domain.ErrInsufficientFunds
	}

	var dailyLimit sql.NullInt64
	err = tx.QueryRowContext(ctx, `
		SELECT p.daily_limit
		FROM packages p
		JOIN accounts a ON a.package_id = p.id
		WHERE a.iban = $1`, from).Scan(&dailyLimit)
	if err != nil {
		return nil, mapError(err)
	}

	if err := r.checkDailyLimit(ctx, tx, from, amount, domain.KindTransfer, dailyLimit); err != nil {
		return nil, err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO transactions (sender_iban, receiver_iban, kind, amount, reference)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		from, to, string(domain.KindTransfer), amount, ref.String()).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE accounts SET balance = balance - $1 WHERE iban = $2`, amount, from); err != nil {
		return nil, mapError(err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE accounts SET balance = balance + $1 WHERE iban = $2`, amount, to); err != nil {
		return nil, mapError(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, mapError(err)
	}
	return txn, nil
}

// checkDailyLimit sums today's already-committed outgoing movements of the
// same kind and rejects the operation if adding amount would exceed the cap.
// "Today" is the calendar date in the store's timezone. The sum is computed
// fresh inside the caller's transaction, after the sender row lock, so
// concurrent operations on the same account see each other's commits.
func (r *ledgerRepository) checkDailyLimit(ctx context.Context, tx *sql.Tx, iban string, amount int64, kind domain.TransactionKind, limit sql.NullInt64) error {
	if !limit.Valid {
		return nil
	}

	var spentToday int64
	err := tx.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE sender_iban = $1 AND kind = $2 AND created_at::date = CURRENT_DATE`,
		iban, string(kind)).Scan(&spentToday)
	if err != nil {
		return mapError(err)
	}

	if spentToday+amount > limit.Int64 {
		return fmt.Errorf("%w: %d of %d cents already moved today",
			domain.ErrDailyLimitExceeded, spentToday, limit.Int64)
	}
	return nil
}

func (r *ledgerRepository) GetBalance(ctx context.Context, iban string) (int64, error) {
	var balance int64
	err := r.db.QueryRowContext(ctx, `SELECT balance FROM accounts WHERE iban = $1`, iban).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("account %s: %w", iban, domain.ErrAccountNotFound)
	}
	if err != nil {
		return 0, mapError(err)
	}
	return balance, nil
}
