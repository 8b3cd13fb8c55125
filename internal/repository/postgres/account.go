package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create inserts the per-account package row and the account referencing it
// in one transaction; an invalid owner or duplicate IBAN rolls both back.
func (r *accountRepository) Create(ctx context.Context, account *domain.Account, pkg *domain.Package) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO packages (name, fee, base_limit, daily_limit)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		pkg.Name, pkg.Fee, pkg.BaseLimit, pkg.DailyLimit).Scan(&pkg.ID)
	if err != nil {
		return mapError(err)
	}

	account.PackageID = pkg.ID
	_, err = tx.ExecContext(ctx, `
		INSERT INTO accounts (iban, customer_id, package_id, balance)
		VALUES ($1, $2, $3, 0)`,
		account.IBAN, account.CustomerID, account.PackageID)
	if err != nil {
		return mapError(err)
	}

	return mapError(tx.Commit())
}

func (r *accountRepository) GetByIBAN(ctx context.Context, iban string) (*domain.Account, error) {
	var a domain.Account
	err := r.db.QueryRowContext(ctx, `
		SELECT iban, customer_id, package_id, balance
		FROM accounts WHERE iban = $1`, iban).
		Scan(&a.IBAN, &a.CustomerID, &a.PackageID, &a.Balance)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", iban, domain.ErrAccountNotFound)
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

func (r *accountRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT iban, customer_id, package_id, balance
		FROM accounts WHERE customer_id = $1 ORDER BY iban`, customerID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(&a.IBAN, &a.CustomerID, &a.PackageID, &a.Balance); err != nil {
			return nil, mapError(err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *accountRepository) GetPackage(ctx context.Context, iban string) (*domain.Package, error) {
	var p domain.Package
	var baseLimit, dailyLimit sql.NullInt64
	err := r.db.QueryRowContext(ctx, `
		SELECT p.id, p.name, p.fee, p.base_limit, p.daily_limit
		FROM packages p
		JOIN accounts a ON a.package_id = p.id
		WHERE a.iban = $1`, iban).
		Scan(&p.ID, &p.Name, &p.Fee, &baseLimit, &dailyLimit)
	if err != nil {
		return nil, mapError(err)
	}
	if baseLimit.Valid {
		p.BaseLimit = &baseLimit.Int64
	}
	if dailyLimit.Valid {
		p.DailyLimit = &dailyLimit.Int64
	}
	return &p, nil
}

func (r *accountRepository) ListFeeCharges(ctx context.Context) ([]domain.FeeCharge, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.iban, p.fee
		FROM accounts a
		JOIN packages p ON p.id = a.package_id
		WHERE p.fee > 0
		ORDER BY a.iban`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var charges []domain.FeeCharge
	for rows.Next() {
		var c domain.FeeCharge
		if err := rows.Scan(&c.IBAN, &c.Fee); err != nil {
			return nil, mapError(err)
		}
		charges = append(charges, c)
	}
	return charges, rows.Err()
}
