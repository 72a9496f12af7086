package dto

import (
	"time"

	"github.com/vporoshin/depositbook/internal/core/domain"
)

// AttachAccountRequest defines the data needed to re-point a deposit to a
// freshly opened settlement account.
type AttachAccountRequest struct {
	DepositID string                 `json:"depositID" validate:"required"`
	Category  domain.AccountCategory `json:"category" validate:"required,oneof=STANDARD PREFERENTIAL PREMIUM"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID string                 `json:"accountID"`
	Status    domain.AccountStatus   `json:"status"`
	OpenDate  time.Time              `json:"openDate"`
	CloseDate *time.Time             `json:"closeDate,omitempty"` // nil while the account is open
	Category  domain.AccountCategory `json:"category"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	resp := AccountResponse{
		AccountID: a.AccountID,
		Status:    a.Status,
		OpenDate:  a.OpenDate,
		Category:  a.Category,
	}
	if !a.CloseDate.IsZero() {
		closeDate := a.CloseDate
		resp.CloseDate = &closeDate
	}
	return resp
}
