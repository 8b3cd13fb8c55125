package postgres

import (
	"context"
	"database/sql"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionColumns = `id, sender_iban, receiver_iban, kind, amount, reference, created_at`

func scanTransaction(rows *sql.Rows) (domain.Transaction, error) {
	var t domain.Transaction
	var sender, receiver sql.NullString
	err := rows.Scan(&t.ID, &sender, &receiver, &t.Kind, &t.Amount, &t.Reference, &t.CreatedAt)
	if err != nil {
		return t, err
	}
	if sender.Valid {
		t.Sender = &sender.String
	}
	if receiver.Valid {
		t.Receiver = &receiver.String
	}
	return t, nil
}

func (r *transactionRepository) list(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, mapError(err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func (r *transactionRepository) ListByAccount(ctx context.Context, iban string, limit int) ([]domain.Transaction, error) {
	return r.list(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE sender_iban = $1 OR receiver_iban = $1
		ORDER BY created_at DESC
		LIMIT $2`, iban, limit)
}

func (r *transactionRepository) ListByCustomer(ctx context.Context, customerID int64, limit int) ([]domain.Transaction, error) {
	return r.list(ctx, `
		SELECT t.id, t.sender_iban, t.receiver_iban, t.kind, t.amount, t.reference, t.created_at
		FROM transactions t
		LEFT JOIN accounts s ON t.sender_iban = s.iban
		LEFT JOIN accounts r ON t.receiver_iban = r.iban
		WHERE s.customer_id = $1 OR r.customer_id = $1
		ORDER BY t.created_at DESC
		LIMIT $2`, customerID, limit)
}

func (r *transactionRepository) ListRecent(ctx context.Context, limit int) ([]domain.Transaction, error) {
	return r.list(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		ORDER BY created_at DESC
		LIMIT $1`, limit)
}

func (r *transactionRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{}

	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&stats.TotalCustomers)
	if err != nil {
		return nil, mapError(err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(balance), 0) FROM accounts`).
		Scan(&stats.TotalAccounts, &stats.TotalBalance)
	if err != nil {
		return nil, mapError(err)
	}

	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&stats.TotalTransactions)
	if err != nil {
		return nil, mapError(err)
	}

	// Same calendar-date rule as the daily limit
	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM transactions WHERE created_at::date = CURRENT_DATE`).
		Scan(&stats.TransactionsToday)
	if err != nil {
		return nil, mapError(err)
	}

	if stats.TotalAccounts > 0 {
		stats.AverageBalance = float64(stats.TotalBalance) / float64(stats.TotalAccounts)
	}
	return stats, nil
}
