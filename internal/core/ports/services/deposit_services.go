package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vporoshin/depositbook/internal/core/domain"
	"github.com/vporoshin/depositbook/internal/dto"
)

// DepositSvcFacade defines every lifecycle operation that touches deposits,
// their settlement accounts, and the audit trail. Keeping the cross-entity
// operations together avoids a dependency cycle between deposit and account
// closure, which each trigger the other.
type DepositSvcFacade interface {
	// OpenDeposit atomically creates a deposit plus its settlement account
	// and, for a positive initial balance, the opening DEPOSIT transaction.
	OpenDeposit(ctx context.Context, req dto.OpenDepositRequest) (*domain.Deposit, error)

	// DepositFunds credits a deposit and appends a DEPOSIT transaction.
	DepositFunds(ctx context.Context, depositID string, amount decimal.Decimal) (*domain.Deposit, error)

	// WithdrawFunds debits a deposit and appends a WITHDRAW transaction.
	WithdrawFunds(ctx context.Context, depositID string, amount decimal.Decimal) (*domain.Deposit, error)

	// AccrueInterest adds interest accrued up to toDate and appends an
	// INTEREST transaction. It fails when the computed interest is not
	// positive. The returned value is the accrued amount.
	AccrueInterest(ctx context.Context, depositID string, toDate time.Time) (decimal.Decimal, error)

	// CloseDeposit appends a CLOSE transaction for the balance at close
	// time, marks the deposit closed, and closes the linked account. A
	// failure to close the account does not fail the operation.
	CloseDeposit(ctx context.Context, depositID string) error

	// CloseAccount closes every open deposit on the account, then the
	// account itself. Any deposit-closure failure aborts the whole
	// operation with the account left open.
	CloseAccount(ctx context.Context, accountID string) error

	// AttachAccount re-points a deposit to a freshly opened account of the
	// requested category. The previously linked account is orphaned, not
	// reconciled.
	AttachAccount(ctx context.Context, req dto.AttachAccountRequest) (*domain.Account, error)

	// PurgeDeposit removes a deposit from the store. Only a closed deposit
	// whose linked account is also closed may be purged.
	PurgeDeposit(ctx context.Context, depositID string) error

	// GetDepositByID retrieves a single deposit.
	GetDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error)

	// ListDeposits retrieves every deposit in insertion order.
	ListDeposits(ctx context.Context) ([]domain.Deposit, error)

	// ListClientDeposits retrieves all deposits owned by a client.
	ListClientDeposits(ctx context.Context, clientID string) ([]domain.Deposit, error)
}
