package jobs

import (
	"context"
	"errors"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/logger"
)

// ChargePackageFees posts each account's monthly package fee as a
// withdrawal through the ledger engine. Accounts that cannot cover the fee
// or would exceed their daily limit are skipped and logged; each charge is
// its own atomic operation, so one failure never taints the rest.
func (jr *JobRunner) ChargePackageFees() {
	jr.runWithRecovery("ChargePackageFees", func() {
		ctx := context.Background()

		charges, err := jr.store.AccountRepository.ListFeeCharges(ctx)
		if err != nil {
			logger.Error("Failed to list package fee charges", "error", err)
			return
		}

		charged, skipped := 0, 0
		for _, charge := range charges {
			_, err := jr.ledgerSvc.Withdraw(ctx, charge.IBAN, charge.Fee)
			switch {
			case err == nil:
				charged++
			case errors.Is(err, domain.ErrInsufficientFunds),
				errors.Is(err, domain.ErrDailyLimitExceeded):
				logger.Warn("Skipping package fee", "iban", charge.IBAN, "fee", charge.Fee, "reason", err)
				skipped++
			default:
				logger.Error("Failed to charge package fee", "iban", charge.IBAN, "fee", charge.Fee, "error", err)
				skipped++
			}
		}

		logger.Info("Package fee run finished", "charged", charged, "skipped", skipped)
	})
}
