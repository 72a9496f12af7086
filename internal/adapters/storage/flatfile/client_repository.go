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

type clientRepository struct {
	store *Store
}

// NewClientRepository creates a client repository backed by the shared store.
func NewClientRepository(store *Store) portsrepo.ClientRepositoryFacade {
	return &clientRepository{store: store}
}

var _ portsrepo.ClientRepositoryFacade = (*clientRepository)(nil)

func (r *clientRepository) FindClientByID(_ context.Context, clientID string) (*domain.Client, error) {
	if i := r.store.indexOfClient(clientID); i >= 0 {
		client := r.store.clients[i]
		return &client, nil
	}
	return nil, fmt.Errorf("client %s: %w", clientID, apperrors.ErrNotFound)
}

func (r *clientRepository) ListClients(_ context.Context) ([]domain.Client, error) {
	return slices.Clone(r.store.clients), nil
}

func (r *clientRepository) NextClientID(_ context.Context) (string, error) {
	return utils.NewEntityID("C", r.store.hasClient), nil
}

func (r *clientRepository) SaveClient(_ context.Context, client domain.Client) error {
	r.store.clients = append(r.store.clients, client)
	return r.store.saveClients()
}

func (r *clientRepository) UpdateClient(_ context.Context, client domain.Client) error {
	i := r.store.indexOfClient(client.ClientID)
	if i < 0 {
		return fmt.Errorf("client %s: %w", client.ClientID, apperrors.ErrNotFound)
	}
	r.store.clients[i] = client
	return r.store.saveClients()
}

func (r *clientRepository) DeleteClient(_ context.Context, clientID string) error {
	i := r.store.indexOfClient(clientID)
	if i < 0 {
		return fmt.Errorf("client %s: %w", clientID, apperrors.ErrNotFound)
	}
	r.store.clients = slices.Delete(r.store.clients, i, i+1)
	return r.store.saveClients()
}
