package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vporoshin/depositbook/internal/apperrors"
	"github.com/vporoshin/depositbook/internal/core/domain"
	portssvc "github.com/vporoshin/depositbook/internal/core/ports/services"
	"github.com/vporoshin/depositbook/internal/core/services"
	"github.com/vporoshin/depositbook/internal/dto"
)

// --- Mock DepositRepository ---

type MockDepositRepository struct {
	MockDepositReader
}

func (m *MockDepositRepository) NextDepositID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockDepositRepository) SaveDeposit(ctx context.Context, deposit domain.Deposit) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}

func (m *MockDepositRepository) UpdateDeposit(ctx context.Context, deposit domain.Deposit) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}

func (m *MockDepositRepository) DeleteDeposit(ctx context.Context, depositID string) error {
	args := m.Called(ctx, depositID)
	return args.Error(0)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) NextAccountID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	var transactions []domain.Transaction
	if args.Get(0) != nil {
		transactions = args.Get(0).([]domain.Transaction)
	}
	return transactions, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	var transactions []domain.Transaction
	if args.Get(0) != nil {
		transactions = args.Get(0).([]domain.Transaction)
	}
	return transactions, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

// --- Test Suite ---

type DepositServiceTestSuite struct {
	suite.Suite
	mockDepositRepo     *MockDepositRepository
	mockAccountRepo     *MockAccountRepository
	mockTransactionRepo *MockTransactionRepository
	mockClientRepo      *MockClientRepository
	service             portssvc.DepositSvcFacade
}

func (suite *DepositServiceTestSuite) SetupTest() {
	suite.mockDepositRepo = new(MockDepositRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTransactionRepo = new(MockTransactionRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewDepositService(
		suite.mockDepositRepo,
		suite.mockAccountRepo,
		suite.mockTransactionRepo,
		suite.mockClientRepo,
		validator.New(),
	)
}

func (suite *DepositServiceTestSuite) openAccount(accountID string) *domain.Account {
	return &domain.Account{
		AccountID: accountID,
		Status:    domain.StatusOpen,
		OpenDate:  time.Unix(1700000000, 0),
		Category:  domain.CategoryStandard,
	}
}

// --- OpenDeposit Tests ---

func (suite *DepositServiceTestSuite) TestOpenDeposit_Success() {
	ctx := context.Background()
	req := dto.OpenDepositRequest{
		ClientID:       "C1",
		Type:           domain.Demand,
		InitialBalance: decimal.RequireFromString("1000"),
		InterestRate:   decimal.RequireFromString("5"),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, "C1").Return(&domain.Client{ClientID: "C1"}, nil).Once()
	suite.mockAccountRepo.On("NextAccountID", ctx).Return("A1", nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID == "A1" && a.Status == domain.StatusOpen && a.Category == domain.CategoryStandard && a.CloseDate.IsZero()
	})).Return(nil).Once()
	suite.mockDepositRepo.On("NextDepositID", ctx).Return("D1", nil).Once()
	suite.mockDepositRepo.On("SaveDeposit", ctx, mock.MatchedBy(func(d domain.Deposit) bool {
		return d.DepositID == "D1" && d.AccountID == "A1" && !d.Closed && d.Balance.Equal(req.InitialBalance)
	})).Return(nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "A1").Return(suite.openAccount("A1"), nil).Once()
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.AccountID == "A1" && t.Type == domain.TxDeposit && t.Amount.Equal(req.InitialBalance)
	})).Return(nil).Once()

	deposit, err := suite.service.OpenDeposit(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(deposit)
	suite.Equal("D1", deposit.DepositID)
	suite.Equal("A1", deposit.AccountID)
	suite.True(deposit.OpenDate.Equal(time.Unix(deposit.OpenDate.Unix(), 0)), "open date carries no sub-second part")
	suite.mockDepositRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestOpenDeposit_ZeroBalanceLogsNoTransaction() {
	ctx := context.Background()
	req := dto.OpenDepositRequest{
		ClientID:       "C1",
		Type:           domain.Term,
		InitialBalance: decimal.Zero,
		InterestRate:   decimal.RequireFromString("7"),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, "C1").Return(&domain.Client{ClientID: "C1"}, nil).Once()
	suite.mockAccountRepo.On("NextAccountID", ctx).Return("A1", nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()
	suite.mockDepositRepo.On("NextDepositID", ctx).Return("D1", nil).Once()
	suite.mockDepositRepo.On("SaveDeposit", ctx, mock.AnythingOfType("domain.Deposit")).Return(nil).Once()

	deposit, err := suite.service.OpenDeposit(ctx, req)

	suite.Require().NoError(err)
	suite.True(deposit.Balance.IsZero())
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *DepositServiceTestSuite) TestOpenDeposit_UnknownClient() {
	ctx := context.Background()
	req := dto.OpenDepositRequest{
		ClientID:       "C404",
		Type:           domain.Demand,
		InitialBalance: decimal.RequireFromString("100"),
		InterestRate:   decimal.RequireFromString("5"),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, "C404").Return(nil, apperrors.ErrNotFound).Once()

	deposit, err := suite.service.OpenDeposit(ctx, req)

	suite.Require().Error(err)
	suite.Nil(deposit)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *DepositServiceTestSuite) TestOpenDeposit_NegativeRate() {
	ctx := context.Background()
	req := dto.OpenDepositRequest{
		ClientID:       "C1",
		Type:           domain.Demand,
		InitialBalance: decimal.RequireFromString("100"),
		InterestRate:   decimal.RequireFromString("-1"),
	}

	deposit, err := suite.service.OpenDeposit(ctx, req)

	suite.Require().Error(err)
	suite.Nil(deposit)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "SaveDeposit", mock.Anything, mock.Anything)
}

func (suite *DepositServiceTestSuite) TestOpenDeposit_UnknownType() {
	ctx := context.Background()
	req := dto.OpenDepositRequest{
		ClientID:       "C1",
		Type:           domain.DepositType("BONUS"),
		InitialBalance: decimal.RequireFromString("100"),
		InterestRate:   decimal.RequireFromString("5"),
	}

	deposit, err := suite.service.OpenDeposit(ctx, req)

	suite.Require().Error(err)
	suite.Nil(deposit)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- DepositFunds Tests ---

func (suite *DepositServiceTestSuite) TestDepositFunds_Success() {
	ctx := context.Background()
	existing := &domain.Deposit{
		DepositID: "D1",
		Type:      domain.Demand,
		OpenDate:  time.Unix(1700000000, 0),
		Balance:   decimal.RequireFromString("1000"),
		AccountID: "A1",
	}

	suite.mockDepositRepo.On("FindDepositByID", ctx, "D1").Return(existing, nil).Once()
	suite.mockDepositRepo.On("UpdateDeposit", ctx, mock.MatchedBy(func(d domain.Deposit) bool {
		return d.Balance.Equal(decimal.RequireFromString("1500"))
	})).Return(nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "A1").Return(suite.openAccount("A1"), nil).Once()
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.TxDeposit && t.Amount.Equal(decimal.RequireFromString("500"))
	})).Return(nil).Once()

	deposit, err := suite.service.DepositFunds(ctx, "D1", decimal.RequireFromString("500"))

	suite.Require().NoError(err)
	suite.True(deposit.Balance.Equal(decimal.RequireFromString("1500")))
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestDepositFunds_NonPositiveAmount() {
	ctx := context.Background()

	deposit, err := suite.service.DepositFunds(ctx, "D1", decimal.Zero)

	suite.Require().Error(err)
	suite.Nil(deposit)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "FindDepositByID", mock.Anything, mock.Anything)
}

func (suite *DepositServiceTestSuite) TestDepositFunds_ClosedDeposit() {
	ctx := context.Background()
	existing := &domain.Deposit{DepositID: "D1", Closed: true, AccountID: "A1"}

	suite.mockDepositRepo.On("FindDepositByID", ctx, "D1").Return(existing, nil).Once()

	deposit, err := suite.service.DepositFunds(ctx, "D1", decimal.RequireFromString("10"))

	suite.Require().Error(err)
	suite.Nil(deposit)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "UpdateDeposit", mock.Anything, mock.Anything)
}

// --- WithdrawFunds Tests ---

func (suite *DepositServiceTestSuite) TestWithdrawFunds_Success() {
	ctx := context.Background()
	existing := &domain.Deposit{
		DepositID: "D1",
		Balance:   decimal.RequireFromString("1000"),
		AccountID: "A1",
	}

	suite.mockDepositRepo.On("FindDepositByID", ctx, "D1").Return(existing, nil).Once()
	suite.mockDepositRepo.On("UpdateDeposit", ctx, mock.MatchedBy(func(d domain.Deposit) bool {
		return d.Balance.Equal(decimal.RequireFromString("400"))
	})).Return(nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "A1").Return(suite.openAccount("A1"), nil).Once()
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.TxWithdraw && t.Amount.Equal(decimal.RequireFromString("600"))
	})).Return(nil).Once()

	deposit, err := suite.service.WithdrawFunds(ctx, "D1", decimal.RequireFromString("600"))

	suite.Require().NoError(err)
	suite.True(deposit.Balance.Equal(decimal.RequireFromString("400")))
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestWithdrawFunds_InsufficientFunds() {
	ctx := context.Background()
	existing := &domain.Deposit{
		DepositID: "D1",
		Balance:   decimal.RequireFromString("100"),
		AccountID: "A1",
	}

	suite.mockDepositRepo.On("FindDepositByID", ctx, "D1").Return(existing, nil).Once()

	deposit, err := suite.service.WithdrawFunds(ctx, "D1", decimal.RequireFromString("200"))

	suite.Require().Error(err)
	suite.Nil(deposit)
	suite.ErrorIs(err, apperrors.ErrValidation)
	// The failed withdrawal leaves no trace: no update, no transaction.
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "UpdateDeposit", mock.Anything, mock.Anything)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

// --- AccrueInterest Tests ---

func (suite *DepositServiceTestSuite) TestAccrueInterest_Success() {
	ctx := context.Background()
	openDate := time.Unix(1700000000, 0)
	existing := &domain.Deposit{
		DepositID:    "D1",
		OpenDate:     openDate,
		Balance:      decimal.RequireFromString("1000"),
		InterestRate: decimal.RequireFromString("10"),
		AccountID:    "A1",
	}

	suite.mockDepositRepo.On("FindDepositByID", ctx, "D1").Return(existing, nil).Once()
	suite.mockDepositRepo.On("UpdateDeposit", ctx, mock.MatchedBy(func(d domain.Deposit) bool {
		return d.Balance.Equal(decimal.RequireFromString("1100"))
	})).Return(nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "A1").Return(suite.openAccount("A1"), nil).Once()
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.TxInterest && t.Amount.Equal(decimal.RequireFromString("100"))
	})).Return(nil).Once()

	// A full year at 10% per annum on 1000 accrues exactly 100.
	interest, err := suite.service.AccrueInterest(ctx, "D1", openDate.Add(365*24*time.Hour))

	suite.Require().NoError(err)
	suite.True(interest.Equal(decimal.RequireFromString("100")), "got %s", interest)
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestAccrueInterest_NothingToAccrue() {
	ctx := context.Background()
	openDate := time.Unix(1700000000, 0)
	existing := &domain.Deposit{
		DepositID:    "D1",
		OpenDate:     openDate,
		Balance:      decimal.RequireFromString("1000"),
		InterestRate: decimal.RequireFromString("10"),
		AccountID:    "A1",
	}

	suite.mockDepositRepo.On("FindDepositByID", ctx, "D1").Return(existing, nil).Once()

	interest, err := suite.service.AccrueInterest(ctx, "D1", openDate)

	suite.Require().Error(err)
	suite.True(interest.IsZero())
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "UpdateDeposit", mock.Anything, mock.Anything)
}

func (suite *DepositServiceTestSuite) TestAccrueInterest_ClosedDeposit() {
	ctx := context.Background()
	existing := &domain.Deposit{DepositID: "D1", Closed: true, AccountID: "A1"}

	suite.mockDepositRepo.On("FindDepositByID", ctx, "D1").Return(existing, nil).Once()

	_, err := suite.service.AccrueInterest(ctx, "D1", time.Now())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- CloseDeposit Tests ---

func (suite *DepositServiceTestSuite) TestCloseDeposit_Success() {
	ctx := context.Background()
	existing := &domain.Deposit{
		DepositID: "D1",
		Balance:   decimal.RequireFromString("1500"),
		AccountID: "A1",
	}
	account := suite.openAccount("A1")

	suite.mockDepositRepo.On("FindDepositByID", ctx, "D1").Return(existing, nil).Once()
	suite.mockDepositRepo.On("UpdateDeposit", ctx, mock.MatchedBy(func(d domain.Deposit) bool {
		return d.Closed
	})).Return(nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "A1").Return(account, nil)
	// The CLOSE transaction carries the balance the deposit held at close time.
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.TxClose && t.Amount.Equal(decimal.RequireFromString("1500"))
	})).Return(nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Status == domain.StatusClosed && !a.CloseDate.IsZero()
	})).Return(nil).Once()

	err := suite.service.CloseDeposit(ctx, "D1")

	suite.Require().NoError(err)
	suite.mockDepositRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTransactionRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestCloseDeposit_AlreadyClosed() {
	ctx := context.Background()
	existing := &domain.Deposit{DepositID: "D1", Closed: true, AccountID: "A1"}

	suite.mockDepositRepo.On("FindDepositByID", ctx, "D1").Return(existing, nil).Once()

	err := suite.service.CloseDeposit(ctx, "D1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTransactionRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *DepositServiceTestSuite) TestCloseDeposit_AccountAlreadyClosed() {
	// The deposit closure stands even when the linked account is already
	// closed; the account is simply left alone.
	ctx := context.Background()
	existing := &domain.Deposit{
		DepositID: "D1",
		Balance:   decimal.RequireFromString("10"),
		AccountID: "A1",
	}
	account := &domain.Account{
		AccountID: "A1",
		Status:    domain.StatusClosed,
		OpenDate:  time.Unix(1700000000, 0),
		CloseDate: time.Unix(1710000000, 0),
		Category:  domain.CategoryStandard,
	}

	suite.mockDepositRepo.On("FindDepositByID", ctx, "D1").Return(existing, nil).Once()
	suite.mockDepositRepo.On("UpdateDeposit", ctx, mock.AnythingOfType("domain.Deposit")).Return(nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "A1").Return(account, nil)
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	err := suite.service.CloseDeposit(ctx, "D1")

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

// --- CloseAccount Tests ---

func (suite *DepositServiceTestSuite) TestCloseAccount_ClosesOpenDepositsFirst() {
	ctx := context.Background()
	account := suite.openAccount("A1")
	open := domain.Deposit{
		DepositID: "D1",
		Balance:   decimal.RequireFromString("100"),
		AccountID: "A1",
	}
	alreadyClosed := domain.Deposit{DepositID: "D2", Closed: true, AccountID: "A1"}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "A1").Return(account, nil)
	suite.mockDepositRepo.On("FindDepositsByAccountID", ctx, "A1").Return([]domain.Deposit{open, alreadyClosed}, nil).Once()
	suite.mockDepositRepo.On("FindDepositByID", ctx, "D1").Return(&open, nil).Once()
	suite.mockDepositRepo.On("UpdateDeposit", ctx, mock.MatchedBy(func(d domain.Deposit) bool {
		return d.DepositID == "D1" && d.Closed
	})).Return(nil).Once()
	suite.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.TxClose
	})).Return(nil).Once()
	// Closing D1 closes the account as a side effect; the account must not be
	// closed a second time afterwards.
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Status == domain.StatusClosed
	})).Return(nil).Once()

	err := suite.service.CloseAccount(ctx, "A1")

	suite.Require().NoError(err)
	suite.mockDepositRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	// D2 was already closed and must not be touched.
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "FindDepositByID", ctx, "D2")
}

func (suite *DepositServiceTestSuite) TestCloseAccount_NotFound() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, "A404").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.CloseAccount(ctx, "A404")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- AttachAccount Tests ---

func (suite *DepositServiceTestSuite) TestAttachAccount_Success() {
	ctx := context.Background()
	existing := &domain.Deposit{DepositID: "D1", AccountID: "A1"}
	req := dto.AttachAccountRequest{DepositID: "D1", Category: domain.CategoryPremium}

	suite.mockDepositRepo.On("FindDepositByID", ctx, "D1").Return(existing, nil).Once()
	suite.mockAccountRepo.On("NextAccountID", ctx).Return("A2", nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountID == "A2" && a.Status == domain.StatusOpen && a.Category == domain.CategoryPremium
	})).Return(nil).Once()
	suite.mockDepositRepo.On("UpdateDeposit", ctx, mock.MatchedBy(func(d domain.Deposit) bool {
		return d.DepositID == "D1" && d.AccountID == "A2"
	})).Return(nil).Once()

	account, err := suite.service.AttachAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("A2", account.AccountID)
	suite.Equal(domain.CategoryPremium, account.Category)
	// The previous account is orphaned, not closed.
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *DepositServiceTestSuite) TestAttachAccount_UnknownCategory() {
	ctx := context.Background()
	req := dto.AttachAccountRequest{DepositID: "D1", Category: domain.AccountCategory("GOLD")}

	account, err := suite.service.AttachAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- PurgeDeposit Tests ---

func (suite *DepositServiceTestSuite) TestPurgeDeposit_Success() {
	ctx := context.Background()
	existing := &domain.Deposit{DepositID: "D1", Closed: true, AccountID: "A1"}
	account := &domain.Account{AccountID: "A1", Status: domain.StatusClosed}

	suite.mockDepositRepo.On("FindDepositByID", ctx, "D1").Return(existing, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "A1").Return(account, nil).Once()
	suite.mockDepositRepo.On("DeleteDeposit", ctx, "D1").Return(nil).Once()

	err := suite.service.PurgeDeposit(ctx, "D1")

	suite.Require().NoError(err)
	suite.mockDepositRepo.AssertExpectations(suite.T())
}

func (suite *DepositServiceTestSuite) TestPurgeDeposit_StillOpen() {
	ctx := context.Background()
	existing := &domain.Deposit{DepositID: "D1", AccountID: "A1"}

	suite.mockDepositRepo.On("FindDepositByID", ctx, "D1").Return(existing, nil).Once()

	err := suite.service.PurgeDeposit(ctx, "D1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "DeleteDeposit", mock.Anything, mock.Anything)
}

func (suite *DepositServiceTestSuite) TestPurgeDeposit_AccountStillOpen() {
	ctx := context.Background()
	existing := &domain.Deposit{DepositID: "D1", Closed: true, AccountID: "A1"}

	suite.mockDepositRepo.On("FindDepositByID", ctx, "D1").Return(existing, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, "A1").Return(suite.openAccount("A1"), nil).Once()

	err := suite.service.PurgeDeposit(ctx, "D1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDepositRepo.AssertNotCalled(suite.T(), "DeleteDeposit", mock.Anything, mock.Anything)
}

func TestDepositServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepositServiceTestSuite))
}
