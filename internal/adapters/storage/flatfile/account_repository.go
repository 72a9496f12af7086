package flatfile

import (
	"context"
	"fmt"
	"slices"

	"github.com/vporoshin/depositbook/internal/apperrors"
	"github.com/vporoshin/depositbook/internal/core/domain"
	portsrepo "github.com/vporoshin/depositbook/internal/core/ports/repositories"
	"github.com/vporoshin/depositbook/internal/utils"
)

type accountRepository struct {
	store *Store
}

// NewAccountRepository creates an account repository backed by the shared store.
func NewAccountRepository(store *Store) portsrepo.AccountRepositoryFacade {
	return &accountRepository{store: store}
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

func (r *accountRepository) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	if i := r.store.indexOfAccount(accountID); i >= 0 {
		account := r.store.accounts[i]
		return &account, nil
	}
	return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
}

func (r *accountRepository) ListAccounts(_ context.Context) ([]domain.Account, error) {
	return slices.Clone(r.store.accounts), nil
}

func (r *accountRepository) NextAccountID(_ context.Context) (string, error) {
	return utils.NewEntityID("A", r.store.hasAccount), nil
}

func (r *accountRepository) SaveAccount(_ context.Context, account domain.Account) error {
	r.store.accounts = append(r.store.accounts, account)
	return r.store.saveAccounts()
}

func (r *accountRepository) UpdateAccount(_ context.Context, account domain.Account) error {
	i := r.store.indexOfAccount(account.AccountID)
	if i < 0 {
		return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrNotFound)
	}
	r.store.accounts[i] = account
	return r.store.saveAccounts()
}
