package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vporoshin/depositbook/internal/core/domain"
)

// OpenDepositRequest defines the data needed to open a deposit together with
// its settlement account. Sign checks on the decimal fields stay in the
// service layer; the validator covers presence and enum membership.
type OpenDepositRequest struct {
	ClientID       string             `json:"clientID" validate:"required"`
	Type           domain.DepositType `json:"type" validate:"required,oneof=DEMAND TERM SAVINGS"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	InterestRate   decimal.Decimal    `json:"interestRate"`
}

// DepositResponse defines the data returned for a deposit.
type DepositResponse struct {
	DepositID    string             `json:"depositID"`
	Type         domain.DepositType `json:"type"`
	OpenDate     time.Time          `json:"openDate"`
	Balance      decimal.Decimal    `json:"balance"`
	InterestRate decimal.Decimal    `json:"interestRate"`
	Closed       bool               `json:"closed"`
	ClientID     string             `json:"clientID"`
	AccountID    string             `json:"accountID"`
}

// ToDepositResponse converts a domain.Deposit to its response DTO.
func ToDepositResponse(d *domain.Deposit) DepositResponse {
	return DepositResponse{
		DepositID:    d.DepositID,
		Type:         d.Type,
		OpenDate:     d.OpenDate,
		Balance:      d.Balance,
		InterestRate: d.InterestRate,
		Closed:       d.Closed,
		ClientID:     d.ClientID,
		AccountID:    d.AccountID,
	}
}
