package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vporoshin/depositbook/internal/core/domain"
)

// TransactionResponse defines the data returned for an audit record.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Date          time.Time              `json:"date"`
	Type          domain.TransactionType `json:"type"`
	Amount        decimal.Decimal        `json:"amount"`
	AccountID     string                 `json:"accountID"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date,
		Type:          t.Type,
		Amount:        t.Amount,
		AccountID:     t.AccountID,
	}
}
