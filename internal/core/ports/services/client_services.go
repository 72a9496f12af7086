package services

import (
	"context"

	"github.com/vporoshin/depositbook/internal/core/domain"
	"github.com/vporoshin/depositbook/internal/dto"
)

// ClientSvcFacade defines client lifecycle and lookup operations.
type ClientSvcFacade interface {
	// CreateClient registers a new client with a generated ID.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)

	// RenameClient replaces a client's full name.
	RenameClient(ctx context.Context, clientID string, req dto.RenameClientRequest) (*domain.Client, error)

	// DeleteClient removes a client. It fails while any deposit, open or
	// closed, still references the client.
	DeleteClient(ctx context.Context, clientID string) error

	// GetClientByID retrieves a single client.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves every client in insertion order.
	ListClients(ctx context.Context) ([]domain.Client, error)
}
