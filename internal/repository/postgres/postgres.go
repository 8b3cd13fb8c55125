package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.AccountRepository
	repository.LedgerRepository
	repository.TransactionRepository
}

// NewStore wires all repositories over one connection pool. lockTimeout
// bounds row-lock waits inside ledger transactions, e.g. "5s".
func NewStore(db *sql.DB, lockTimeout string) *Store {
	return &Store{
		db:                    db,
		CustomerRepository:    NewCustomerRepository(db),
		AccountRepository:     NewAccountRepository(db),
		LedgerRepository:      NewLedgerRepository(db, lockTimeout),
		TransactionRepository: NewTransactionRepository(db),
	}
}

// mapError translates driver-level failures into the domain taxonomy so
// nothing above the repository layer sees a pq error.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrEntityNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", // serialization_failure
			"40P01", // deadlock_detected
			"55P03", // lock_not_available
			"57014": // query_canceled (statement/lock timeout)
			return fmt.Errorf("%w: %s", domain.ErrTransient, pqErr.Message)
		case "23502", // not_null_violation
			"23503", // foreign_key_violation
			"23505", // unique_violation
			"23514": // check_violation
			return fmt.Errorf("%w: %s", domain.ErrConstraintViolation, pqErr.Message)
		}
	}
	return err
}
