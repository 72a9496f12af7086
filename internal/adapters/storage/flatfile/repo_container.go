package flatfile

import (
	portsrepo "github.com/vporoshin/depositbook/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository around one shared store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:      NewClientRepository(store),
		DepositRepo:     NewDepositRepository(store),
		AccountRepo:     NewAccountRepository(store),
		TransactionRepo: NewTransactionRepository(store),
	}
}
