package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vporoshin/depositbook/internal/core/domain"
)

// TransactionSummary aggregates one account's transactions over an inclusive
// date range. NetTurnover is deposited - withdrawn + interest.
type TransactionSummary struct {
	AccountID      string          `json:"accountID"`
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	Count          int             `json:"count"`
	TotalDeposited decimal.Decimal `json:"totalDeposited"`
	TotalWithdrawn decimal.Decimal `json:"totalWithdrawn"`
	TotalInterest  decimal.Decimal `json:"totalInterest"`
	NetTurnover    decimal.Decimal `json:"netTurnover"`
}

// ClientSummary aggregates one client's open deposits.
type ClientSummary struct {
	ClientID     string          `json:"clientID"`
	FullName     string          `json:"fullName"`
	OpenDeposits int             `json:"openDeposits"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
}

// DepositTypeSummary aggregates the open deposits of one product type.
// AverageRate is zero when there are no open deposits of the type.
type DepositTypeSummary struct {
	Type         domain.DepositType `json:"type"`
	Count        int                `json:"count"`
	TotalBalance decimal.Decimal    `json:"totalBalance"`
	AverageRate  decimal.Decimal    `json:"averageRate"`
}

// SystemSummary is the registry-wide aggregate consumed by the summary report.
type SystemSummary struct {
	ClientCount      int                  `json:"clientCount"`
	DepositCount     int                  `json:"depositCount"`
	OpenDepositCount int                  `json:"openDepositCount"`
	AccountCount     int                  `json:"accountCount"`
	ByType           []DepositTypeSummary `json:"byType"`
	TotalOpenBalance decimal.Decimal      `json:"totalOpenBalance"`
}
