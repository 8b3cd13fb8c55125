package domain

import (
	"fmt"
	"strings"
)

// Package is the fee/limit tier attached to exactly one account.
// BaseLimit and DailyLimit are caps in cents; nil means unconstrained.
// The original schema let a zero daily limit pass as "no limit"; here nil
// carries that meaning and zero means nothing may move.
type Package struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Fee        int64  `json:"fee"`
	BaseLimit  *int64 `json:"base_limit,omitempty"`
	DailyLimit *int64 `json:"daily_limit,omitempty"`
}

// FeeCharge pairs an account with the monthly fee its package carries.
type FeeCharge struct {
	IBAN string `json:"iban"`
	Fee  int64  `json:"fee"`
}

// NewPackage validates and builds a package tier.
func NewPackage(name string, fee int64, baseLimit, dailyLimit *int64) (*Package, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: package name is required", ErrConstraintViolation)
	}
	if fee < 0 {
		return nil, fmt.Errorf("%w: package fee must not be negative", ErrConstraintViolation)
	}
	if baseLimit != nil && *baseLimit < 0 {
		return nil, fmt.Errorf("%w: base limit must not be negative", ErrConstraintViolation)
	}
	if dailyLimit != nil && *dailyLimit < 0 {
		return nil, fmt.Errorf("%w: daily limit must not be negative", ErrConstraintViolation)
	}
	return &Package{Name: name, Fee: fee, BaseLimit: baseLimit, DailyLimit: dailyLimit}, nil
}
