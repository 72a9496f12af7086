package flatfile

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vporoshin/depositbook/internal/apperrors"
	"github.com/vporoshin/depositbook/internal/core/domain"
)

// Fixed field counts per record kind. A row with any other arity is a hard
// decode failure for the whole file.
const (
	clientArity      = 2
	depositArity     = 8
	accountArity     = 5
	transactionArity = 5
)

func arityError(kind string, got, want int) error {
	return fmt.Errorf("%s record has %d fields, want %d: %w", kind, got, want, apperrors.ErrMalformedRecord)
}

func fieldError(kind, field string, err error) error {
	return fmt.Errorf("%s record field %s: %v: %w", kind, field, err, apperrors.ErrMalformedRecord)
}

// formatEpoch renders a time as float epoch seconds the way the files store
// every date. The zero time renders as "0" (used for the close date of an
// open account).
func formatEpoch(t time.Time) string {
	if t.IsZero() {
		return "0"
	}
	f := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseEpoch(s string) (time.Time, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid epoch seconds %q", s)
	}
	if f == 0 {
		return time.Time{}, nil
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))), nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid number %q", s)
	}
	return d, nil
}

// parseClosedFlag mirrors the historical file format: "1" and "true" (any
// case) mean closed, anything else means open.
func parseClosedFlag(s string) bool {
	s = strings.TrimSpace(s)
	return s == "1" || strings.EqualFold(s, "true")
}

func formatClosedFlag(closed bool) string {
	if closed {
		return "1"
	}
	return "0"
}

func encodeClient(c domain.Client) []string {
	return []string{c.ClientID, c.FullName}
}

func decodeClient(row []string) (domain.Client, error) {
	if len(row) != clientArity {
		return domain.Client{}, arityError("client", len(row), clientArity)
	}
	return domain.Client{
		ClientID: row[0],
		FullName: row[1],
	}, nil
}

func encodeDeposit(d domain.Deposit) []string {
	return []string{
		d.DepositID,
		string(d.Type),
		formatEpoch(d.OpenDate),
		d.Balance.String(),
		d.InterestRate.String(),
		formatClosedFlag(d.Closed),
		d.ClientID,
		d.AccountID,
	}
}

func decodeDeposit(row []string) (domain.Deposit, error) {
	if len(row) != depositArity {
		return domain.Deposit{}, arityError("deposit", len(row), depositArity)
	}
	depositType, err := domain.ParseDepositType(row[1])
	if err != nil {
		return domain.Deposit{}, fieldError("deposit", "type", err)
	}
	openDate, err := parseEpoch(row[2])
	if err != nil {
		return domain.Deposit{}, fieldError("deposit", "open_date", err)
	}
	balance, err := parseAmount(row[3])
	if err != nil {
		return domain.Deposit{}, fieldError("deposit", "balance", err)
	}
	rate, err := parseAmount(row[4])
	if err != nil {
		return domain.Deposit{}, fieldError("deposit", "interest_rate", err)
	}
	return domain.Deposit{
		DepositID:    row[0],
		Type:         depositType,
		OpenDate:     openDate,
		Balance:      balance,
		InterestRate: rate,
		Closed:       parseClosedFlag(row[5]),
		ClientID:     row[6],
		AccountID:    row[7],
	}, nil
}

func encodeAccount(a domain.Account) []string {
	return []string{
		a.AccountID,
		string(a.Status),
		formatEpoch(a.OpenDate),
		formatEpoch(a.CloseDate),
		string(a.Category),
	}
}

func decodeAccount(row []string) (domain.Account, error) {
	if len(row) != accountArity {
		return domain.Account{}, arityError("account", len(row), accountArity)
	}
	status, err := domain.ParseAccountStatus(row[1])
	if err != nil {
		return domain.Account{}, fieldError("account", "status", err)
	}
	openDate, err := parseEpoch(row[2])
	if err != nil {
		return domain.Account{}, fieldError("account", "open_date", err)
	}
	closeDate, err := parseEpoch(row[3])
	if err != nil {
		return domain.Account{}, fieldError("account", "close_date", err)
	}
	category, err := domain.ParseAccountCategory(row[4])
	if err != nil {
		return domain.Account{}, fieldError("account", "category", err)
	}
	return domain.Account{
		AccountID: row[0],
		Status:    status,
		OpenDate:  openDate,
		CloseDate: closeDate,
		Category:  category,
	}, nil
}

func encodeTransaction(t domain.Transaction) []string {
	return []string{
		t.TransactionID,
		formatEpoch(t.Date),
		string(t.Type),
		t.Amount.String(),
		t.AccountID,
	}
}

func decodeTransaction(row []string) (domain.Transaction, error) {
	if len(row) != transactionArity {
		return domain.Transaction{}, arityError("transaction", len(row), transactionArity)
	}
	date, err := parseEpoch(row[1])
	if err != nil {
		return domain.Transaction{}, fieldError("transaction", "date", err)
	}
	txType, err := domain.ParseTransactionType(row[2])
	if err != nil {
		return domain.Transaction{}, fieldError("transaction", "type", err)
	}
	amount, err := parseAmount(row[3])
	if err != nil {
		return domain.Transaction{}, fieldError("transaction", "amount", err)
	}
	return domain.Transaction{
		TransactionID: row[0],
		Date:          date,
		Type:          txType,
		Amount:        amount,
		AccountID:     row[4],
	}, nil
}
