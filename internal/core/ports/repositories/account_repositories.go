package repositories

import (
	"context"

	"github.com/vporoshin/depositbook/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves every account in insertion order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
// Every write persists the whole account collection before returning.
type AccountWriter interface {
	// NextAccountID generates a fresh account ID that collides with no stored account.
	NextAccountID(ctx context.Context) (string, error)

	// SaveAccount appends a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount replaces an existing account's record.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
