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

type depositRepository struct {
	store *Store
}

// NewDepositRepository creates a deposit repository backed by the shared store.
func NewDepositRepository(store *Store) portsrepo.DepositRepositoryFacade {
	return &depositRepository{store: store}
}

var _ portsrepo.DepositRepositoryFacade = (*depositRepository)(nil)

func (r *depositRepository) FindDepositByID(_ context.Context, depositID string) (*domain.Deposit, error) {
	if i := r.store.indexOfDeposit(depositID); i >= 0 {
		deposit := r.store.deposits[i]
		return &deposit, nil
	}
	return nil, fmt.Errorf("deposit %s: %w", depositID, apperrors.ErrNotFound)
}

func (r *depositRepository) ListDeposits(_ context.Context) ([]domain.Deposit, error) {
	return slices.Clone(r.store.deposits), nil
}

func (r *depositRepository) FindDepositsByClientID(_ context.Context, clientID string) ([]domain.Deposit, error) {
	var out []domain.Deposit
	for _, d := range r.store.deposits {
		if d.ClientID == clientID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *depositRepository) FindDepositsByAccountID(_ context.Context, accountID string) ([]domain.Deposit, error) {
	var out []domain.Deposit
	for _, d := range r.store.deposits {
		if d.AccountID == accountID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *depositRepository) NextDepositID(_ context.Context) (string, error) {
	return utils.NewEntityID("D", r.store.hasDeposit), nil
}

func (r *depositRepository) SaveDeposit(_ context.Context, deposit domain.Deposit) error {
	r.store.deposits = append(r.store.deposits, deposit)
	return r.store.saveDeposits()
}

func (r *depositRepository) UpdateDeposit(_ context.Context, deposit domain.Deposit) error {
	i := r.store.indexOfDeposit(deposit.DepositID)
	if i < 0 {
		return fmt.Errorf("deposit %s: %w", deposit.DepositID, apperrors.ErrNotFound)
	}
	r.store.deposits[i] = deposit
	return r.store.saveDeposits()
}

func (r *depositRepository) DeleteDeposit(_ context.Context, depositID string) error {
	i := r.store.indexOfDeposit(depositID)
	if i < 0 {
		return fmt.Errorf("deposit %s: %w", depositID, apperrors.ErrNotFound)
	}
	r.store.deposits = slices.Delete(r.store.deposits, i, i+1)
	return r.store.saveDeposits()
}
