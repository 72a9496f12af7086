package flatfile

import (
	"context"
	"slices"
	"sort"

	"github.com/vporoshin/depositbook/internal/core/domain"
	portsrepo "github.com/vporoshin/depositbook/internal/core/ports/repositories"
)

type transactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a transaction repository backed by the
// shared store. The underlying collection stays in insertion order; readers
// get date-descending copies with ties kept stable.
func NewTransactionRepository(store *Store) portsrepo.TransactionRepositoryFacade {
	return &transactionRepository{store: store}
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

func sortedByDateDesc(transactions []domain.Transaction) []domain.Transaction {
	out := slices.Clone(transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func (r *transactionRepository) ListTransactions(_ context.Context) ([]domain.Transaction, error) {
	return sortedByDateDesc(r.store.transactions), nil
}

func (r *transactionRepository) FindTransactionsByAccountID(_ context.Context, accountID string) ([]domain.Transaction, error) {
	var matched []domain.Transaction
	for _, t := range r.store.transactions {
		if t.AccountID == accountID {
			matched = append(matched, t)
		}
	}
	return sortedByDateDesc(matched), nil
}

func (r *transactionRepository) SaveTransaction(_ context.Context, transaction domain.Transaction) error {
	r.store.transactions = append(r.store.transactions, transaction)
	return r.store.saveTransactions()
}
