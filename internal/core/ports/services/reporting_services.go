package services

import (
	"context"
	"time"

	"github.com/vporoshin/depositbook/internal/core/domain"
	"github.com/vporoshin/depositbook/internal/dto"
)

// ReportingSvcFacade defines the read-only aggregation queries consumed by
// the reporting layer. It returns data, never formatted text.
type ReportingSvcFacade interface {
	// AccountTransactions lists one account's transactions, newest first.
	AccountTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// AllTransactions lists every transaction, newest first.
	AllTransactions(ctx context.Context) ([]domain.Transaction, error)

	// TransactionSummary aggregates one account's transactions within an
	// inclusive date range.
	TransactionSummary(ctx context.Context, accountID string, from, to time.Time) (*dto.TransactionSummary, error)

	// ClientSummaries aggregates open deposits per client.
	ClientSummaries(ctx context.Context) ([]dto.ClientSummary, error)

	// DepositTypeSummary aggregates the open deposits of one product type.
	DepositTypeSummary(ctx context.Context, depositType domain.DepositType) (*dto.DepositTypeSummary, error)

	// SystemSummary aggregates the whole registry.
	SystemSummary(ctx context.Context) (*dto.SystemSummary, error)
}
