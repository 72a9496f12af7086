package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/vporoshin/depositbook/internal/apperrors"
	"github.com/vporoshin/depositbook/internal/core/domain"
	portsrepo "github.com/vporoshin/depositbook/internal/core/ports/repositories"
	portssvc "github.com/vporoshin/depositbook/internal/core/ports/services"
	"github.com/vporoshin/depositbook/internal/dto"
)

// clientServiceImpl implements the ClientSvcFacade interface.
type clientServiceImpl struct {
	BaseService
	clientRepo  portsrepo.ClientRepositoryFacade
	depositRepo portsrepo.DepositReader
	validate    *validator.Validate
}

// NewClientService creates a new client service. The deposit reader is needed
// for the deletion guard: a client with any deposit, open or closed, cannot
// be removed.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, depositRepo portsrepo.DepositReader, validate *validator.Validate) portssvc.ClientSvcFacade {
	return &clientServiceImpl{
		clientRepo:  clientRepo,
		depositRepo: depositRepo,
		validate:    validate,
	}
}

// Ensure clientServiceImpl implements the ClientSvcFacade interface
var _ portssvc.ClientSvcFacade = (*clientServiceImpl)(nil)

func (s *clientServiceImpl) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("full name is required: %w", apperrors.ErrValidation)
	}

	clientID, err := s.clientRepo.NextClientID(ctx)
	if err != nil {
		return nil, err
	}

	client := domain.Client{
		ClientID: clientID,
		FullName: req.FullName,
	}
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client",
			slog.String("client_id", clientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client created",
		slog.String("client_id", clientID))
	return &client, nil
}

func (s *clientServiceImpl) RenameClient(ctx context.Context, clientID string, req dto.RenameClientRequest) (*domain.Client, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("full name is required: %w", apperrors.ErrValidation)
	}

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	client.FullName = req.FullName
	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client",
			slog.String("client_id", clientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client renamed",
		slog.String("client_id", clientID))
	return client, nil
}

func (s *clientServiceImpl) DeleteClient(ctx context.Context, clientID string) error {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return err
	}

	deposits, err := s.depositRepo.FindDepositsByClientID(ctx, clientID)
	if err != nil {
		return err
	}
	if len(deposits) > 0 {
		return fmt.Errorf("client %s still owns %d deposits: %w", clientID, len(deposits), apperrors.ErrValidation)
	}

	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to delete client",
			slog.String("client_id", clientID))
		return err
	}

	s.LogInfo(ctx, "Client deleted",
		slog.String("client_id", clientID))
	return nil
}

func (s *clientServiceImpl) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

func (s *clientServiceImpl) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.ListClients(ctx)
}
