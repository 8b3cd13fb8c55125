package jobs

import (
	"bankledger-backend/internal/config"
	"bankledger-backend/internal/logger"
	"bankledger-backend/internal/repository/postgres"
	"bankledger-backend/internal/service"
)

// JobRunner coordinates the scheduled back-office jobs. Jobs go through the
// ledger service like any other caller; they never touch balances directly.
type JobRunner struct {
	store     *postgres.Store
	ledgerSvc service.LedgerService
	config    *config.Config
}

func NewJobRunner(store *postgres.Store, ledgerSvc service.LedgerService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:     store,
		ledgerSvc: ledgerSvc,
		config:    cfg,
	}
}

// Config returns the loaded configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
