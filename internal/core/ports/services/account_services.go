package services

import (
	"context"

	"github.com/vporoshin/depositbook/internal/core/domain"
)

// AccountSvcFacade defines read-only account accessors. Account mutation
// happens through DepositSvcFacade, which owns the cross-entity rules.
type AccountSvcFacade interface {
	// GetAccountByID retrieves a single account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetDepositAccount retrieves the account currently backing a deposit.
	GetDepositAccount(ctx context.Context, depositID string) (*domain.Account, error)

	// ListAccounts retrieves every account in insertion order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
