package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/vporoshin/depositbook/internal/apperrors"
	"github.com/vporoshin/depositbook/internal/core/domain"
	portsrepo "github.com/vporoshin/depositbook/internal/core/ports/repositories"
	portssvc "github.com/vporoshin/depositbook/internal/core/ports/services"
	"github.com/vporoshin/depositbook/internal/dto"
	"github.com/vporoshin/depositbook/internal/utils"
)

// depositServiceImpl implements the DepositSvcFacade interface. It owns every
// operation that has to keep deposits, accounts, and the audit trail
// consistent with each other.
type depositServiceImpl struct {
	BaseService
	depositRepo     portsrepo.DepositRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	clientRepo      portsrepo.ClientReader
	validate        *validator.Validate
}

// NewDepositService creates a new deposit service.
func NewDepositService(
	depositRepo portsrepo.DepositRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	validate *validator.Validate,
) portssvc.DepositSvcFacade {
	return &depositServiceImpl{
		depositRepo:     depositRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		clientRepo:      clientRepo,
		validate:        validate,
	}
}

// Ensure depositServiceImpl implements the DepositSvcFacade interface
var _ portssvc.DepositSvcFacade = (*depositServiceImpl)(nil)

// nowSecond returns the current time at whole-second precision, the
// granularity the record files store for every date.
func nowSecond() time.Time {
	return time.Unix(time.Now().Unix(), 0)
}

// appendTransaction writes one audit record against an account. Every
// balance-affecting operation goes through here exactly once.
func (s *depositServiceImpl) appendTransaction(ctx context.Context, accountID string, txType domain.TransactionType, amount decimal.Decimal, now time.Time) error {
	if amount.IsNegative() {
		return fmt.Errorf("transaction amount must not be negative: %w", apperrors.ErrValidation)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}
	transaction := domain.Transaction{
		TransactionID: utils.NewTransactionID(now),
		Date:          now,
		Type:          txType,
		Amount:        amount,
		AccountID:     accountID,
	}
	if err := s.transactionRepo.SaveTransaction(ctx, transaction); err != nil {
		s.LogError(ctx, err, "Failed to append transaction",
			slog.String("account_id", accountID),
			slog.String("transaction_type", string(txType)))
		return err
	}
	return nil
}

func (s *depositServiceImpl) OpenDeposit(ctx context.Context, req dto.OpenDepositRequest) (*domain.Deposit, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid open deposit request: %w", apperrors.ErrValidation)
	}
	if req.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("initial balance must not be negative: %w", apperrors.ErrValidation)
	}
	if req.InterestRate.IsNegative() {
		return nil, fmt.Errorf("interest rate must not be negative: %w", apperrors.ErrValidation)
	}
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	now := nowSecond()

	accountID, err := s.accountRepo.NextAccountID(ctx)
	if err != nil {
		return nil, err
	}
	account := domain.Account{
		AccountID: accountID,
		Status:    domain.StatusOpen,
		OpenDate:  now,
		Category:  domain.CategoryStandard,
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", accountID))
		return nil, err
	}

	depositID, err := s.depositRepo.NextDepositID(ctx)
	if err != nil {
		return nil, err
	}
	deposit := domain.Deposit{
		DepositID:    depositID,
		Type:         req.Type,
		OpenDate:     now,
		Balance:      req.InitialBalance,
		InterestRate: req.InterestRate,
		Closed:       false,
		ClientID:     req.ClientID,
		AccountID:    accountID,
	}
	if err := s.depositRepo.SaveDeposit(ctx, deposit); err != nil {
		s.LogError(ctx, err, "Failed to save deposit",
			slog.String("deposit_id", depositID))
		return nil, err
	}

	// The opening balance is logged only when it is actually positive.
	if req.InitialBalance.IsPositive() {
		if err := s.appendTransaction(ctx, accountID, domain.TxDeposit, req.InitialBalance, now); err != nil {
			return nil, err
		}
	}

	s.LogInfo(ctx, "Deposit opened",
		slog.String("deposit_id", depositID),
		slog.String("account_id", accountID),
		slog.String("client_id", req.ClientID))
	return &deposit, nil
}

func (s *depositServiceImpl) DepositFunds(ctx context.Context, depositID string, amount decimal.Decimal) (*domain.Deposit, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("deposit amount must be positive: %w", apperrors.ErrValidation)
	}
	deposit, err := s.depositRepo.FindDepositByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if deposit.Closed {
		return nil, fmt.Errorf("deposit %s is closed: %w", depositID, apperrors.ErrValidation)
	}

	deposit.Credit(amount)
	if err := s.depositRepo.UpdateDeposit(ctx, *deposit); err != nil {
		return nil, err
	}
	if err := s.appendTransaction(ctx, deposit.AccountID, domain.TxDeposit, amount, nowSecond()); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Funds deposited",
		slog.String("deposit_id", depositID),
		slog.String("amount", amount.String()))
	return deposit, nil
}

func (s *depositServiceImpl) WithdrawFunds(ctx context.Context, depositID string, amount decimal.Decimal) (*domain.Deposit, error) {
	deposit, err := s.depositRepo.FindDepositByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	// Withdraw covers the closed, non-positive, and insufficient-funds cases.
	if err := deposit.Withdraw(amount); err != nil {
		return nil, err
	}

	if err := s.depositRepo.UpdateDeposit(ctx, *deposit); err != nil {
		return nil, err
	}
	if err := s.appendTransaction(ctx, deposit.AccountID, domain.TxWithdraw, amount, nowSecond()); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Funds withdrawn",
		slog.String("deposit_id", depositID),
		slog.String("amount", amount.String()))
	return deposit, nil
}

func (s *depositServiceImpl) AccrueInterest(ctx context.Context, depositID string, toDate time.Time) (decimal.Decimal, error) {
	deposit, err := s.depositRepo.FindDepositByID(ctx, depositID)
	if err != nil {
		return decimal.Zero, err
	}
	if deposit.Closed {
		return decimal.Zero, fmt.Errorf("deposit %s is closed: %w", depositID, apperrors.ErrValidation)
	}

	interest := deposit.InterestUntil(toDate)
	if !interest.IsPositive() {
		return decimal.Zero, fmt.Errorf("no interest to accrue for deposit %s: %w", depositID, apperrors.ErrValidation)
	}

	deposit.Credit(interest)
	if err := s.depositRepo.UpdateDeposit(ctx, *deposit); err != nil {
		return decimal.Zero, err
	}
	if err := s.appendTransaction(ctx, deposit.AccountID, domain.TxInterest, interest, nowSecond()); err != nil {
		return decimal.Zero, err
	}

	s.LogInfo(ctx, "Interest accrued",
		slog.String("deposit_id", depositID),
		slog.String("interest", interest.String()))
	return interest, nil
}

func (s *depositServiceImpl) CloseDeposit(ctx context.Context, depositID string) error {
	deposit, err := s.depositRepo.FindDepositByID(ctx, depositID)
	if err != nil {
		return err
	}

	balanceAtClose := deposit.Balance
	if err := deposit.Close(); err != nil {
		return err
	}

	now := nowSecond()
	if err := s.depositRepo.UpdateDeposit(ctx, *deposit); err != nil {
		return err
	}
	if err := s.appendTransaction(ctx, deposit.AccountID, domain.TxClose, balanceAtClose, now); err != nil {
		return err
	}

	// Closing the linked account is best-effort: the deposit closure stands
	// even when the account turns out to be missing or already closed.
	account, err := s.accountRepo.FindAccountByID(ctx, deposit.AccountID)
	if err != nil {
		s.LogWarn(ctx, "Linked account not found while closing deposit",
			slog.String("deposit_id", depositID),
			slog.String("account_id", deposit.AccountID))
	} else if err := account.Close(now); err != nil {
		s.LogWarn(ctx, "Linked account already closed",
			slog.String("deposit_id", depositID),
			slog.String("account_id", account.AccountID))
	} else if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return err
	}

	s.LogInfo(ctx, "Deposit closed",
		slog.String("deposit_id", depositID),
		slog.String("balance_at_close", balanceAtClose.String()))
	return nil
}

func (s *depositServiceImpl) CloseAccount(ctx context.Context, accountID string) error {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return err
	}

	deposits, err := s.depositRepo.FindDepositsByAccountID(ctx, accountID)
	if err != nil {
		return err
	}
	for _, d := range deposits {
		if d.Closed {
			continue
		}
		if err := s.CloseDeposit(ctx, d.DepositID); err != nil {
			return fmt.Errorf("close deposit %s: %w", d.DepositID, err)
		}
	}

	// Closing the deposits above normally closes the account as a side
	// effect; only close it here if it is still open.
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.Status == domain.StatusOpen {
		if err := account.Close(nowSecond()); err != nil {
			return err
		}
		if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
			return err
		}
	}

	s.LogInfo(ctx, "Account closed",
		slog.String("account_id", accountID))
	return nil
}

func (s *depositServiceImpl) AttachAccount(ctx context.Context, req dto.AttachAccountRequest) (*domain.Account, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid attach account request: %w", apperrors.ErrValidation)
	}
	deposit, err := s.depositRepo.FindDepositByID(ctx, req.DepositID)
	if err != nil {
		return nil, err
	}

	now := nowSecond()
	accountID, err := s.accountRepo.NextAccountID(ctx)
	if err != nil {
		return nil, err
	}
	account := domain.Account{
		AccountID: accountID,
		Status:    domain.StatusOpen,
		OpenDate:  now,
		Category:  req.Category,
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	orphanedAccountID := deposit.AccountID
	deposit.AccountID = accountID
	if err := s.depositRepo.UpdateDeposit(ctx, *deposit); err != nil {
		return nil, err
	}

	// The previous account is left as-is: it is neither closed nor
	// reconciled, matching the historical re-pointing behavior.
	s.LogWarn(ctx, "Deposit re-pointed, previous account orphaned",
		slog.String("deposit_id", deposit.DepositID),
		slog.String("account_id", accountID),
		slog.String("orphaned_account_id", orphanedAccountID))
	return &account, nil
}

func (s *depositServiceImpl) PurgeDeposit(ctx context.Context, depositID string) error {
	deposit, err := s.depositRepo.FindDepositByID(ctx, depositID)
	if err != nil {
		return err
	}
	if !deposit.Closed {
		return fmt.Errorf("deposit %s must be closed before removal: %w", depositID, apperrors.ErrValidation)
	}
	account, err := s.accountRepo.FindAccountByID(ctx, deposit.AccountID)
	if err != nil || account.Status != domain.StatusClosed {
		return fmt.Errorf("linked account of deposit %s must be closed before removal: %w", depositID, apperrors.ErrValidation)
	}

	if err := s.depositRepo.DeleteDeposit(ctx, depositID); err != nil {
		return err
	}

	s.LogInfo(ctx, "Deposit removed",
		slog.String("deposit_id", depositID))
	return nil
}

func (s *depositServiceImpl) GetDepositByID(ctx context.Context, depositID string) (*domain.Deposit, error) {
	return s.depositRepo.FindDepositByID(ctx, depositID)
}

func (s *depositServiceImpl) ListDeposits(ctx context.Context) ([]domain.Deposit, error) {
	return s.depositRepo.ListDeposits(ctx)
}

func (s *depositServiceImpl) ListClientDeposits(ctx context.Context, clientID string) ([]domain.Deposit, error) {
	return s.depositRepo.FindDepositsByClientID(ctx, clientID)
}
