package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vporoshin/depositbook/internal/apperrors"
)

// DepositType classifies a deposit product.
type DepositType string

const (
	Demand  DepositType = "DEMAND"
	Term    DepositType = "TERM"
	Savings DepositType = "SAVINGS"
)

// DepositTypes lists every known deposit type in declaration order.
var DepositTypes = []DepositType{Demand, Term, Savings}

// ParseDepositType resolves a deposit type by name, case-insensitively.
func ParseDepositType(s string) (DepositType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(Demand):
		return Demand, nil
	case string(Term):
		return Term, nil
	case string(Savings):
		return Savings, nil
	}
	return "", fmt.Errorf("unknown deposit type %q", s)
}

var (
	secondsPerDay = decimal.NewFromInt(86400)
	daysPerYear   = decimal.NewFromInt(365)
	oneHundred    = decimal.NewFromInt(100)
)

// Deposit is a customer's interest-bearing balance of a given type, linked to
// exactly one settlement account. Once Closed is set it stays set: no further
// credit, withdrawal, or interest is accepted.
type Deposit struct {
	DepositID    string          `json:"depositID"` // Primary key (e.g. "D1234")
	Type         DepositType     `json:"type"`
	OpenDate     time.Time       `json:"openDate"`
	Balance      decimal.Decimal `json:"balance"`      // Never negative
	InterestRate decimal.Decimal `json:"interestRate"` // Percent per annum, never negative
	Closed       bool            `json:"closed"`
	ClientID     string          `json:"clientID"`  // FK -> Client.ClientID
	AccountID    string          `json:"accountID"` // FK -> Account.AccountID
}

// Withdraw decreases the balance. It fails without side effects when the
// deposit is closed, the amount is not positive, or the amount exceeds the
// balance. Transaction logging is the caller's responsibility.
func (d *Deposit) Withdraw(amount decimal.Decimal) error {
	if d.Closed {
		return fmt.Errorf("deposit %s is closed: %w", d.DepositID, apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("withdrawal amount must be positive: %w", apperrors.ErrValidation)
	}
	if amount.GreaterThan(d.Balance) {
		return fmt.Errorf("withdrawal of %s exceeds balance %s: %w", amount, d.Balance, apperrors.ErrValidation)
	}
	d.Balance = d.Balance.Sub(amount)
	return nil
}

// Credit increases the balance unconditionally, with no upper bound.
// It is a no-op when the deposit is closed or the amount is not positive.
func (d *Deposit) Credit(amount decimal.Decimal) {
	if d.Closed || !amount.IsPositive() {
		return
	}
	d.Balance = d.Balance.Add(amount)
}

// InterestUntil returns simple interest accrued from OpenDate to the given
// date: balance * rate * elapsedDays/365 / 100. It returns zero for a closed
// deposit. The elapsed time is always measured from OpenDate, so repeated
// accruals over overlapping periods double-count it; that matches the original
// contract and is not silently fixed here. A date before OpenDate yields a
// negative result, which callers must treat as nothing to accrue.
func (d *Deposit) InterestUntil(to time.Time) decimal.Decimal {
	if d.Closed {
		return decimal.Zero
	}
	elapsedDays := decimal.NewFromFloat(to.Sub(d.OpenDate).Seconds()).Div(secondsPerDay)
	return d.Balance.Mul(d.InterestRate).Mul(elapsedDays.Div(daysPerYear)).Div(oneHundred)
}

// Close marks the deposit permanently closed. Closing an already closed
// deposit fails, so the transition can never fire twice.
func (d *Deposit) Close() error {
	if d.Closed {
		return fmt.Errorf("deposit %s is already closed: %w", d.DepositID, apperrors.ErrValidation)
	}
	d.Closed = true
	return nil
}
