package repositories

import (
	"context"

	"github.com/vporoshin/depositbook/internal/core/domain"
)

// DepositReader defines read operations for deposit data.
type DepositReader interface {
	// FindDepositByID retrieves a specific deposit by its unique identifier.
	FindDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error)

	// ListDeposits retrieves every deposit in insertion order.
	ListDeposits(ctx context.Context) ([]domain.Deposit, error)

	// FindDepositsByClientID retrieves all deposits, open or closed, owned by a client.
	FindDepositsByClientID(ctx context.Context, clientID string) ([]domain.Deposit, error)

	// FindDepositsByAccountID retrieves all deposits currently pointing at an account.
	FindDepositsByAccountID(ctx context.Context, accountID string) ([]domain.Deposit, error)
}

// DepositWriter defines write operations for deposit data.
// Every write persists the whole deposit collection before returning.
type DepositWriter interface {
	// NextDepositID generates a fresh deposit ID that collides with no stored deposit.
	NextDepositID(ctx context.Context) (string, error)

	// SaveDeposit appends a new deposit.
	SaveDeposit(ctx context.Context, deposit domain.Deposit) error

	// UpdateDeposit replaces an existing deposit's record.
	UpdateDeposit(ctx context.Context, deposit domain.Deposit) error

	// DeleteDeposit removes a deposit. Closure guards live in the service layer.
	DeleteDeposit(ctx context.Context, depositID string) error
}

// DepositRepositoryFacade combines all deposit-related repository interfaces.
type DepositRepositoryFacade interface {
	DepositReader
	DepositWriter
}
