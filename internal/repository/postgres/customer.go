package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"

	"github.com/lib/pq"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO customers (first_name, last_name, address, birth_date)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		customer.FirstName, customer.LastName, customer.Address, customer.BirthDate).Scan(&customer.ID)
	return mapError(err)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, address, birth_date
		FROM customers WHERE id = $1`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.Address, &c.BirthDate)
	if err != nil {
		return nil, mapError(err)
	}
	return &c, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE customers SET first_name = $1, last_name = $2, address = $3, birth_date = $4
		WHERE id = $5`,
		customer.FirstName, customer.LastName, customer.Address, customer.BirthDate, customer.ID)
	if err != nil {
		return mapError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		return fmt.Errorf("customer %d: %w", customer.ID, domain.ErrEntityNotFound)
	}
	return nil
}

func (r *customerRepository) ListSummaries(ctx context.Context) ([]domain.CustomerSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.first_name, c.last_name, c.address, c.birth_date,
		       COUNT(a.iban) AS account_count,
		       COALESCE(SUM(a.balance), 0) AS total_balance
		FROM customers c
		LEFT JOIN accounts a ON a.customer_id = c.id
		GROUP BY c.id
		ORDER BY c.last_name, c.first_name`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var summaries []domain.CustomerSummary
	for rows.Next() {
		var s domain.CustomerSummary
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Address, &s.BirthDate,
			&s.AccountCount, &s.TotalBalance); err != nil {
			return nil, mapError(err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// DeleteCascade removes transactions first, then accounts, then the package
// rows the accounts referenced, then the customer. Any failure rolls the
// whole thing back, so a partial cascade is never visible.
func (r *customerRepository) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback()

	var exists int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM customers WHERE id = $1`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("customer %d: %w", id, domain.ErrEntityNotFound)
	}
	if err != nil {
		return mapError(err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM transactions
		WHERE sender_iban IN (SELECT iban FROM accounts WHERE customer_id = $1)
		   OR receiver_iban IN (SELECT iban FROM accounts WHERE customer_id = $1)`, id)
	if err != nil {
		return mapError(err)
	}

	rows, err := tx.QueryContext(ctx, `DELETE FROM accounts WHERE customer_id = $1 RETURNING package_id`, id)
	if err != nil {
		return mapError(err)
	}
	var packageIDs []int64
	for rows.Next() {
		var pkgID int64
		if err := rows.Scan(&pkgID); err != nil {
			rows.Close()
			return mapError(err)
		}
		packageIDs = append(packageIDs, pkgID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return mapError(err)
	}

	if len(packageIDs) > 0 {
		if _, err := tx.ExecContext(ctx, `DELETE FROM packages WHERE id = ANY($1)`, pq.Array(packageIDs)); err != nil {
			return mapError(err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id); err != nil {
		return mapError(err)
	}

	return mapError(tx.Commit())
}
