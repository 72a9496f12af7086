package services

import (
	"github.com/go-playground/validator/v10"

	portsrepo "github.com/vporoshin/depositbook/internal/core/ports/repositories"
	portssvc "github.com/vporoshin/depositbook/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. All services share one validator instance.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	validate := validator.New()

	return &portssvc.ServiceContainer{
		Client:    NewClientService(repos.ClientRepo, repos.DepositRepo, validate),
		Deposit:   NewDepositService(repos.DepositRepo, repos.AccountRepo, repos.TransactionRepo, repos.ClientRepo, validate),
		Account:   NewAccountService(repos.AccountRepo, repos.DepositRepo),
		Reporting: NewReportingService(repos.ClientRepo, repos.DepositRepo, repos.AccountRepo, repos.TransactionRepo),
	}
}
