// Package ui is the interactive menu collaborator over the core services.
// It only prompts, parses input, and prints plain values; every rule lives
// behind the service facades.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vporoshin/depositbook/internal/core/domain"
	portssvc "github.com/vporoshin/depositbook/internal/core/ports/services"
	"github.com/vporoshin/depositbook/internal/dto"
)

const dateLayout = "02.01.2006"

// Menu drives the interactive session.
type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	services *portssvc.ServiceContainer
}

// New creates a menu reading from in and writing to out.
func New(in io.Reader, out io.Writer, services *portssvc.ServiceContainer) *Menu {
	return &Menu{
		in:       bufio.NewScanner(in),
		out:      out,
		services: services,
	}
}

// Run loops until the user quits or input ends.
func (m *Menu) Run(ctx context.Context) {
	for {
		m.printf("\n==== DEPOSIT REGISTRY ====\n")
		m.printf(" 1. Add client          2. Rename client      3. Delete client\n")
		m.printf(" 4. List clients        5. Open deposit       6. Deposit funds\n")
		m.printf(" 7. Withdraw funds      8. Accrue interest    9. Close deposit\n")
		m.printf("10. Client deposits    11. Close account     12. Attach new account\n")
		m.printf("13. Remove deposit     14. Account activity  15. System summary\n")
		m.printf("16. Client summaries   17. Type summary      18. Full journal\n")
		m.printf(" 0. Quit\n")

		choice, ok := m.prompt("Choice: ")
		if !ok || choice == "0" {
			m.printf("Bye.\n")
			return
		}

		if err := m.dispatch(ctx, choice); err != nil {
			m.printf("Error: %v\n", err)
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return m.addClient(ctx)
	case "2":
		return m.renameClient(ctx)
	case "3":
		return m.deleteClient(ctx)
	case "4":
		return m.listClients(ctx)
	case "5":
		return m.openDeposit(ctx)
	case "6":
		return m.moveFunds(ctx, true)
	case "7":
		return m.moveFunds(ctx, false)
	case "8":
		return m.accrueInterest(ctx)
	case "9":
		return m.closeDeposit(ctx)
	case "10":
		return m.listClientDeposits(ctx)
	case "11":
		return m.closeAccount(ctx)
	case "12":
		return m.attachAccount(ctx)
	case "13":
		return m.purgeDeposit(ctx)
	case "14":
		return m.accountActivity(ctx)
	case "15":
		return m.systemSummary(ctx)
	case "16":
		return m.clientSummaries(ctx)
	case "17":
		return m.depositTypeSummary(ctx)
	case "18":
		return m.fullJournal(ctx)
	}
	m.printf("Unknown choice %q\n", choice)
	return nil
}

func (m *Menu) addClient(ctx context.Context) error {
	name, ok := m.prompt("Full name: ")
	if !ok {
		return nil
	}
	client, err := m.services.Client.CreateClient(ctx, dto.CreateClientRequest{FullName: name})
	if err != nil {
		return err
	}
	m.printf("Created client %s\n", client.ClientID)
	return nil
}

func (m *Menu) renameClient(ctx context.Context) error {
	clientID, ok := m.prompt("Client ID: ")
	if !ok {
		return nil
	}
	name, ok := m.prompt("New full name: ")
	if !ok {
		return nil
	}
	_, err := m.services.Client.RenameClient(ctx, clientID, dto.RenameClientRequest{FullName: name})
	return err
}

func (m *Menu) deleteClient(ctx context.Context) error {
	clientID, ok := m.prompt("Client ID: ")
	if !ok {
		return nil
	}
	return m.services.Client.DeleteClient(ctx, clientID)
}

func (m *Menu) listClients(ctx context.Context) error {
	clients, err := m.services.Client.ListClients(ctx)
	if err != nil {
		return err
	}
	for i := range clients {
		resp := dto.ToClientResponse(&clients[i])
		m.printf("%s  %s\n", resp.ClientID, resp.FullName)
	}
	m.printf("%d client(s)\n", len(clients))
	return nil
}

func (m *Menu) openDeposit(ctx context.Context) error {
	clientID, ok := m.prompt("Client ID: ")
	if !ok {
		return nil
	}
	rawType, ok := m.prompt("Type (DEMAND/TERM/SAVINGS): ")
	if !ok {
		return nil
	}
	depositType, err := domain.ParseDepositType(rawType)
	if err != nil {
		return err
	}
	balance, err := m.promptDecimal("Initial balance: ")
	if err != nil {
		return err
	}
	rate, err := m.promptDecimal("Interest rate (% p.a.): ")
	if err != nil {
		return err
	}
	deposit, err := m.services.Deposit.OpenDeposit(ctx, dto.OpenDepositRequest{
		ClientID:       clientID,
		Type:           depositType,
		InitialBalance: balance,
		InterestRate:   rate,
	})
	if err != nil {
		return err
	}
	m.printf("Opened deposit %s with account %s\n", deposit.DepositID, deposit.AccountID)
	return nil
}

func (m *Menu) moveFunds(ctx context.Context, credit bool) error {
	depositID, ok := m.prompt("Deposit ID: ")
	if !ok {
		return nil
	}
	amount, err := m.promptDecimal("Amount: ")
	if err != nil {
		return err
	}
	var deposit *domain.Deposit
	if credit {
		deposit, err = m.services.Deposit.DepositFunds(ctx, depositID, amount)
	} else {
		deposit, err = m.services.Deposit.WithdrawFunds(ctx, depositID, amount)
	}
	if err != nil {
		return err
	}
	m.printf("New balance: %s\n", deposit.Balance)
	return nil
}

func (m *Menu) accrueInterest(ctx context.Context) error {
	depositID, ok := m.prompt("Deposit ID: ")
	if !ok {
		return nil
	}
	toDate, err := m.promptDate("Accrue until (dd.mm.yyyy): ")
	if err != nil {
		return err
	}
	interest, err := m.services.Deposit.AccrueInterest(ctx, depositID, toDate)
	if err != nil {
		return err
	}
	m.printf("Accrued interest: %s\n", interest)
	return nil
}

func (m *Menu) closeDeposit(ctx context.Context) error {
	depositID, ok := m.prompt("Deposit ID: ")
	if !ok {
		return nil
	}
	return m.services.Deposit.CloseDeposit(ctx, depositID)
}

func (m *Menu) listClientDeposits(ctx context.Context) error {
	clientID, ok := m.prompt("Client ID: ")
	if !ok {
		return nil
	}
	deposits, err := m.services.Deposit.ListClientDeposits(ctx, clientID)
	if err != nil {
		return err
	}
	for i := range deposits {
		resp := dto.ToDepositResponse(&deposits[i])
		status := "open"
		if resp.Closed {
			status = "closed"
		}
		m.printf("%s  %-8s %s  balance=%s  rate=%s%%  %s\n",
			resp.DepositID, resp.Type, resp.OpenDate.Format(dateLayout), resp.Balance, resp.InterestRate, status)
	}
	m.printf("%d deposit(s)\n", len(deposits))
	return nil
}

func (m *Menu) closeAccount(ctx context.Context) error {
	accountID, ok := m.prompt("Account ID: ")
	if !ok {
		return nil
	}
	return m.services.Deposit.CloseAccount(ctx, accountID)
}

func (m *Menu) attachAccount(ctx context.Context) error {
	depositID, ok := m.prompt("Deposit ID: ")
	if !ok {
		return nil
	}
	rawCategory, ok := m.prompt("Category (STANDARD/PREFERENTIAL/PREMIUM): ")
	if !ok {
		return nil
	}
	category, err := domain.ParseAccountCategory(rawCategory)
	if err != nil {
		return err
	}
	account, err := m.services.Deposit.AttachAccount(ctx, dto.AttachAccountRequest{
		DepositID: depositID,
		Category:  category,
	})
	if err != nil {
		return err
	}
	m.printf("Attached account %s\n", account.AccountID)
	m.printAccount(account)
	return nil
}

// printAccount renders one account line; an open account shows "-" for the
// close date, driven by the response DTO's nil CloseDate.
func (m *Menu) printAccount(a *domain.Account) {
	resp := dto.ToAccountResponse(a)
	closeDate := "-"
	if resp.CloseDate != nil {
		closeDate = resp.CloseDate.Format(dateLayout)
	}
	m.printf("%s  %-6s %-12s opened=%s closed=%s\n",
		resp.AccountID, resp.Status, resp.Category, resp.OpenDate.Format(dateLayout), closeDate)
}

func (m *Menu) purgeDeposit(ctx context.Context) error {
	depositID, ok := m.prompt("Deposit ID: ")
	if !ok {
		return nil
	}
	return m.services.Deposit.PurgeDeposit(ctx, depositID)
}

func (m *Menu) accountActivity(ctx context.Context) error {
	accountID, ok := m.prompt("Account ID: ")
	if !ok {
		return nil
	}
	account, err := m.services.Account.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	m.printAccount(account)
	from, err := m.promptDate("From (dd.mm.yyyy): ")
	if err != nil {
		return err
	}
	to, err := m.promptDate("To (dd.mm.yyyy): ")
	if err != nil {
		return err
	}
	// Make the range inclusive of the whole end day.
	to = to.Add(24*time.Hour - time.Second)

	summary, err := m.services.Reporting.TransactionSummary(ctx, accountID, from, to)
	if err != nil {
		return err
	}
	transactions, err := m.services.Reporting.AccountTransactions(ctx, accountID)
	if err != nil {
		return err
	}
	for i := range transactions {
		if transactions[i].Date.Before(from) || transactions[i].Date.After(to) {
			continue
		}
		resp := dto.ToTransactionResponse(&transactions[i])
		m.printf("%s  %s  %-8s %s\n", resp.TransactionID, resp.Date.Format(dateLayout), resp.Type, resp.Amount)
	}
	m.printf("operations=%d deposited=%s withdrawn=%s interest=%s turnover=%s\n",
		summary.Count, summary.TotalDeposited, summary.TotalWithdrawn, summary.TotalInterest, summary.NetTurnover)
	return nil
}

func (m *Menu) systemSummary(ctx context.Context) error {
	summary, err := m.services.Reporting.SystemSummary(ctx)
	if err != nil {
		return err
	}
	m.printf("clients=%d deposits=%d (open %d) accounts=%d total=%s\n",
		summary.ClientCount, summary.DepositCount, summary.OpenDepositCount,
		summary.AccountCount, summary.TotalOpenBalance)
	for _, byType := range summary.ByType {
		m.printf("  %-8s count=%d balance=%s avg_rate=%s%%\n",
			byType.Type, byType.Count, byType.TotalBalance, byType.AverageRate)
	}
	return nil
}

func (m *Menu) clientSummaries(ctx context.Context) error {
	summaries, err := m.services.Reporting.ClientSummaries(ctx)
	if err != nil {
		return err
	}
	for _, s := range summaries {
		m.printf("%s  %-24s open=%d balance=%s\n", s.ClientID, s.FullName, s.OpenDeposits, s.TotalBalance)
	}
	m.printf("%d client(s)\n", len(summaries))
	return nil
}

func (m *Menu) depositTypeSummary(ctx context.Context) error {
	rawType, ok := m.prompt("Type (DEMAND/TERM/SAVINGS): ")
	if !ok {
		return nil
	}
	depositType, err := domain.ParseDepositType(rawType)
	if err != nil {
		return err
	}
	summary, err := m.services.Reporting.DepositTypeSummary(ctx, depositType)
	if err != nil {
		return err
	}
	m.printf("%s: count=%d balance=%s avg_rate=%s%%\n",
		summary.Type, summary.Count, summary.TotalBalance, summary.AverageRate)
	return nil
}

func (m *Menu) fullJournal(ctx context.Context) error {
	transactions, err := m.services.Reporting.AllTransactions(ctx)
	if err != nil {
		return err
	}
	for i := range transactions {
		resp := dto.ToTransactionResponse(&transactions[i])
		m.printf("%s  %s  %-8s %s  %s\n",
			resp.TransactionID, resp.Date.Format(dateLayout), resp.Type, resp.Amount, resp.AccountID)
	}
	m.printf("%d transaction(s)\n", len(transactions))
	return nil
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

// prompt reads one trimmed line; ok is false when input has ended.
func (m *Menu) prompt(label string) (string, bool) {
	m.printf("%s", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptDecimal(label string) (decimal.Decimal, error) {
	raw, ok := m.prompt(label)
	if !ok {
		return decimal.Zero, fmt.Errorf("input ended")
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	return value, nil
}

func (m *Menu) promptDate(label string) (time.Time, error) {
	raw, ok := m.prompt(label)
	if !ok {
		return time.Time{}, fmt.Errorf("input ended")
	}
	date, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use dd.mm.yyyy", raw)
	}
	return date, nil
}
