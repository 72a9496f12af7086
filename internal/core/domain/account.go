package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/vporoshin/depositbook/internal/apperrors"
)

// AccountStatus is the lifecycle state of a settlement account.
type AccountStatus string

const (
	StatusOpen   AccountStatus = "OPEN"
	StatusClosed AccountStatus = "CLOSED"
)

// ParseAccountStatus resolves a status by name, case-insensitively.
func ParseAccountStatus(s string) (AccountStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(StatusOpen):
		return StatusOpen, nil
	case string(StatusClosed):
		return StatusClosed, nil
	}
	return "", fmt.Errorf("unknown account status %q", s)
}

// AccountCategory is the service tier of a settlement account.
type AccountCategory string

const (
	CategoryStandard     AccountCategory = "STANDARD"
	CategoryPreferential AccountCategory = "PREFERENTIAL"
	CategoryPremium      AccountCategory = "PREMIUM"
)

// ParseAccountCategory resolves a category by name, case-insensitively.
func ParseAccountCategory(s string) (AccountCategory, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(CategoryStandard):
		return CategoryStandard, nil
	case string(CategoryPreferential):
		return CategoryPreferential, nil
	case string(CategoryPremium):
		return CategoryPremium, nil
	}
	return "", fmt.Errorf("unknown account category %q", s)
}

// Account is the settlement entity through which a deposit's transactions
// flow. Each account backs exactly one deposit at creation time. CloseDate is
// the zero time while the account is OPEN.
type Account struct {
	AccountID string          `json:"accountID"` // Primary key (e.g. "A1234")
	Status    AccountStatus   `json:"status"`
	OpenDate  time.Time       `json:"openDate"`
	CloseDate time.Time       `json:"closeDate"`
	Category  AccountCategory `json:"category"`
}

// Close transitions the account OPEN -> CLOSED and stamps CloseDate.
// The transition is one-way: closing an already closed account fails and has
// no effect.
func (a *Account) Close(now time.Time) error {
	if a.Status != StatusOpen {
		return fmt.Errorf("account %s is already closed: %w", a.AccountID, apperrors.ErrValidation)
	}
	a.Status = StatusClosed
	a.CloseDate = now
	return nil
}
