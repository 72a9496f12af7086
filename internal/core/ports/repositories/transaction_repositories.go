package repositories

import (
	"context"

	"github.com/vporoshin/depositbook/internal/core/domain"
)

// TransactionReader defines read operations for the transaction audit trail.
// Listings are sorted by date descending; ties keep insertion order.
type TransactionReader interface {
	// ListTransactions retrieves every transaction.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// FindTransactionsByAccountID retrieves the transactions of one account.
	FindTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for the transaction audit trail.
// The trail is append-only: there is no update or delete.
type TransactionWriter interface {
	// SaveTransaction appends a new transaction and persists the collection.
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error
}

// TransactionRepositoryFacade combines the transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
