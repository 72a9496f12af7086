// Package flatfile persists the four registry collections as flat CSV files,
// one record per line, no header, with a full-rewrite-per-collection
// lifecycle: every mutating repository method rewrites its whole file before
// returning. The package assumes single-process, single-threaded access and
// deliberately performs no file locking or temp-file-and-rename writes,
// matching the documented storage contract.
package flatfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/vporoshin/depositbook/internal/core/domain"
)

const (
	clientsFilename      = "clients.csv"
	depositsFilename     = "deposits.csv"
	accountsFilename     = "accounts.csv"
	transactionsFilename = "transactions.csv"
)

// Store owns the four ordered in-memory collections and their backing files.
// Collections keep insertion order; lookups scan linearly, which is fine for
// the registry sizes this serves. The filesystem is injected so tests run on
// an in-memory Fs.
type Store struct {
	fs  afero.Fs
	dir string

	clients      []domain.Client
	deposits     []domain.Deposit
	accounts     []domain.Account
	transactions []domain.Transaction
}

// Open creates the data directory if needed and loads all four collections.
// A missing file reads as an empty collection; a malformed record fails the
// load of its whole file.
func Open(fsys afero.Fs, dir string) (*Store, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	s := &Store{fs: fsys, dir: dir}
	if err := s.loadAll(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) loadAll() error {
	if err := s.loadClients(); err != nil {
		return err
	}
	if err := s.loadDeposits(); err != nil {
		return err
	}
	if err := s.loadAccounts(); err != nil {
		return err
	}
	return s.loadTransactions()
}

func (s *Store) readRows(name string) ([][]string, error) {
	f, err := s.fs.Open(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			// Missing file - empty collection, created on first write.
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.path(name), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Arity is enforced per record kind by the codec, not by the reader.
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path(name), err)
	}
	return rows, nil
}

func (s *Store) writeRows(name string, rows [][]string) error {
	f, err := s.fs.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("rewrite %s: %w", s.path(name), err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("rewrite %s: %w", s.path(name), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("rewrite %s: %w", s.path(name), err)
	}
	return nil
}

func (s *Store) loadClients() error {
	rows, err := s.readRows(clientsFilename)
	if err != nil {
		return err
	}
	s.clients = s.clients[:0]
	for i, row := range rows {
		client, err := decodeClient(row)
		if err != nil {
			return fmt.Errorf("%s line %d: %w", clientsFilename, i+1, err)
		}
		s.clients = append(s.clients, client)
	}
	return nil
}

func (s *Store) loadDeposits() error {
	rows, err := s.readRows(depositsFilename)
	if err != nil {
		return err
	}
	s.deposits = s.deposits[:0]
	for i, row := range rows {
		deposit, err := decodeDeposit(row)
		if err != nil {
			return fmt.Errorf("%s line %d: %w", depositsFilename, i+1, err)
		}
		s.deposits = append(s.deposits, deposit)
	}
	return nil
}

func (s *Store) loadAccounts() error {
	rows, err := s.readRows(accountsFilename)
	if err != nil {
		return err
	}
	s.accounts = s.accounts[:0]
	for i, row := range rows {
		account, err := decodeAccount(row)
		if err != nil {
			return fmt.Errorf("%s line %d: %w", accountsFilename, i+1, err)
		}
		s.accounts = append(s.accounts, account)
	}
	return nil
}

func (s *Store) loadTransactions() error {
	rows, err := s.readRows(transactionsFilename)
	if err != nil {
		return err
	}
	s.transactions = s.transactions[:0]
	for i, row := range rows {
		transaction, err := decodeTransaction(row)
		if err != nil {
			return fmt.Errorf("%s line %d: %w", transactionsFilename, i+1, err)
		}
		s.transactions = append(s.transactions, transaction)
	}
	return nil
}

func (s *Store) saveClients() error {
	rows := make([][]string, 0, len(s.clients))
	for _, c := range s.clients {
		rows = append(rows, encodeClient(c))
	}
	return s.writeRows(clientsFilename, rows)
}

func (s *Store) saveDeposits() error {
	rows := make([][]string, 0, len(s.deposits))
	for _, d := range s.deposits {
		rows = append(rows, encodeDeposit(d))
	}
	return s.writeRows(depositsFilename, rows)
}

func (s *Store) saveAccounts() error {
	rows := make([][]string, 0, len(s.accounts))
	for _, a := range s.accounts {
		rows = append(rows, encodeAccount(a))
	}
	return s.writeRows(accountsFilename, rows)
}

func (s *Store) saveTransactions() error {
	rows := make([][]string, 0, len(s.transactions))
	for _, t := range s.transactions {
		rows = append(rows, encodeTransaction(t))
	}
	return s.writeRows(transactionsFilename, rows)
}

func (s *Store) indexOfClient(clientID string) int {
	for i, c := range s.clients {
		if c.ClientID == clientID {
			return i
		}
	}
	return -1
}

func (s *Store) indexOfDeposit(depositID string) int {
	for i, d := range s.deposits {
		if d.DepositID == depositID {
			return i
		}
	}
	return -1
}

func (s *Store) indexOfAccount(accountID string) int {
	for i, a := range s.accounts {
		if a.AccountID == accountID {
			return i
		}
	}
	return -1
}

func (s *Store) hasClient(clientID string) bool {
	return s.indexOfClient(clientID) >= 0
}

func (s *Store) hasDeposit(depositID string) bool {
	return s.indexOfDeposit(depositID) >= 0
}

func (s *Store) hasAccount(accountID string) bool {
	return s.indexOfAccount(accountID) >= 0
}
