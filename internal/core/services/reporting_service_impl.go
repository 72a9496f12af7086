package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vporoshin/depositbook/internal/apperrors"
	"github.com/vporoshin/depositbook/internal/core/domain"
	portsrepo "github.com/vporoshin/depositbook/internal/core/ports/repositories"
	portssvc "github.com/vporoshin/depositbook/internal/core/ports/services"
	"github.com/vporoshin/depositbook/internal/dto"
)

// reportingServiceImpl implements the ReportingSvcFacade interface. It only
// reads; the numbers it returns feed the external report rendering, which is
// outside this module's scope.
type reportingServiceImpl struct {
	BaseService
	clientRepo      portsrepo.ClientReader
	depositRepo     portsrepo.DepositReader
	accountRepo     portsrepo.AccountReader
	transactionRepo portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	clientRepo portsrepo.ClientReader,
	depositRepo portsrepo.DepositReader,
	accountRepo portsrepo.AccountReader,
	transactionRepo portsrepo.TransactionReader,
) portssvc.ReportingSvcFacade {
	return &reportingServiceImpl{
		clientRepo:      clientRepo,
		depositRepo:     depositRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Ensure reportingServiceImpl implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingServiceImpl)(nil)

func (s *reportingServiceImpl) AccountTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.transactionRepo.FindTransactionsByAccountID(ctx, accountID)
}

func (s *reportingServiceImpl) AllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.transactionRepo.ListTransactions(ctx)
}

func (s *reportingServiceImpl) TransactionSummary(ctx context.Context, accountID string, from, to time.Time) (*dto.TransactionSummary, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.FindTransactionsByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	summary := &dto.TransactionSummary{
		AccountID:      accountID,
		From:           from,
		To:             to,
		TotalDeposited: decimal.Zero,
		TotalWithdrawn: decimal.Zero,
		TotalInterest:  decimal.Zero,
	}
	for _, t := range transactions {
		if t.Date.Before(from) || t.Date.After(to) {
			continue
		}
		summary.Count++
		switch t.Type {
		case domain.TxDeposit:
			summary.TotalDeposited = summary.TotalDeposited.Add(t.Amount)
		case domain.TxWithdraw:
			summary.TotalWithdrawn = summary.TotalWithdrawn.Add(t.Amount)
		case domain.TxInterest:
			summary.TotalInterest = summary.TotalInterest.Add(t.Amount)
		}
	}
	summary.NetTurnover = summary.TotalDeposited.Sub(summary.TotalWithdrawn).Add(summary.TotalInterest)
	s.LogDebug(ctx, "Transaction summary computed",
		slog.String("account_id", accountID),
		slog.Int("count", summary.Count))
	return summary, nil
}

func (s *reportingServiceImpl) ClientSummaries(ctx context.Context) ([]dto.ClientSummary, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	deposits, err := s.depositRepo.ListDeposits(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ClientSummary, 0, len(clients))
	for _, c := range clients {
		summary := dto.ClientSummary{
			ClientID:     c.ClientID,
			FullName:     c.FullName,
			TotalBalance: decimal.Zero,
		}
		for _, d := range deposits {
			if d.ClientID != c.ClientID || d.Closed {
				continue
			}
			summary.OpenDeposits++
			summary.TotalBalance = summary.TotalBalance.Add(d.Balance)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func summarizeDepositType(deposits []domain.Deposit, depositType domain.DepositType) dto.DepositTypeSummary {
	summary := dto.DepositTypeSummary{
		Type:         depositType,
		TotalBalance: decimal.Zero,
		AverageRate:  decimal.Zero,
	}
	rateSum := decimal.Zero
	for _, d := range deposits {
		if d.Type != depositType || d.Closed {
			continue
		}
		summary.Count++
		summary.TotalBalance = summary.TotalBalance.Add(d.Balance)
		rateSum = rateSum.Add(d.InterestRate)
	}
	if summary.Count > 0 {
		summary.AverageRate = rateSum.Div(decimal.NewFromInt(int64(summary.Count)))
	}
	return summary
}

func (s *reportingServiceImpl) DepositTypeSummary(ctx context.Context, depositType domain.DepositType) (*dto.DepositTypeSummary, error) {
	if _, err := domain.ParseDepositType(string(depositType)); err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}
	deposits, err := s.depositRepo.ListDeposits(ctx)
	if err != nil {
		return nil, err
	}
	summary := summarizeDepositType(deposits, depositType)
	return &summary, nil
}

func (s *reportingServiceImpl) SystemSummary(ctx context.Context) (*dto.SystemSummary, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	deposits, err := s.depositRepo.ListDeposits(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.SystemSummary{
		ClientCount:      len(clients),
		DepositCount:     len(deposits),
		AccountCount:     len(accounts),
		TotalOpenBalance: decimal.Zero,
	}
	for _, depositType := range domain.DepositTypes {
		byType := summarizeDepositType(deposits, depositType)
		summary.ByType = append(summary.ByType, byType)
		summary.OpenDepositCount += byType.Count
		summary.TotalOpenBalance = summary.TotalOpenBalance.Add(byType.TotalBalance)
	}
	return summary, nil
}
