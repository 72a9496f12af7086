package repositories

import (
	"context"

	"github.com/vporoshin/depositbook/internal/core/domain"
)

// ClientReader defines read operations for client data.
type ClientReader interface {
	// FindClientByID retrieves a specific client by its unique identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves every client in insertion order.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data.
// Every write persists the whole client collection before returning.
type ClientWriter interface {
	// NextClientID generates a fresh client ID that collides with no stored client.
	NextClientID(ctx context.Context) (string, error)

	// SaveClient appends a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient replaces an existing client's record.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client. Referential guards live in the service layer.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
