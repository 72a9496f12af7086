package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType names the balance-affecting event a transaction records.
type TransactionType string

const (
	TxDeposit  TransactionType = "DEPOSIT"
	TxWithdraw TransactionType = "WITHDRAW"
	TxInterest TransactionType = "INTEREST"
	TxClose    TransactionType = "CLOSE"
)

// ParseTransactionType resolves a transaction type by name, case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(TxDeposit):
		return TxDeposit, nil
	case string(TxWithdraw):
		return TxWithdraw, nil
	case string(TxInterest):
		return TxInterest, nil
	case string(TxClose):
		return TxClose, nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// Transaction is an immutable audit record of a single balance-affecting
// event on an account. Transactions are append-only: they are never updated
// or deleted after creation.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary key, time-seeded (e.g. "T1748354301042")
	Date          time.Time       `json:"date"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // Never negative
	AccountID     string          `json:"accountID"` // FK -> Account.AccountID
}
