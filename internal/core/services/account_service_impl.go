package services

import (
	"context"
	"log/slog"

	"github.com/vporoshin/depositbook/internal/core/domain"
	portsrepo "github.com/vporoshin/depositbook/internal/core/ports/repositories"
	portssvc "github.com/vporoshin/depositbook/internal/core/ports/services"
)

// accountServiceImpl implements the AccountSvcFacade interface. All account
// mutation flows through the deposit service, which owns the cross-entity
// closure rules, so this service is purely read-side.
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountReader
	depositRepo portsrepo.DepositReader
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountReader, depositRepo portsrepo.DepositReader) portssvc.AccountSvcFacade {
	return &accountServiceImpl{
		accountRepo: accountRepo,
		depositRepo: depositRepo,
	}
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountServiceImpl) GetDepositAccount(ctx context.Context, depositID string) (*domain.Account, error) {
	deposit, err := s.depositRepo.FindDepositByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, deposit.AccountID)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Deposit account resolved",
		slog.String("deposit_id", depositID),
		slog.String("account_id", account.AccountID))
	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}
