package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/segmental-dev/segmental/internal/model"
	"github.com/segmental-dev/segmental/internal/rfm"
)

// File names within the data directory.
const (
	CustomersFile    = "customers.csv"
	TransactionsFile = "transactions.csv"
	ScoresFile       = "rfm-scores.csv"
)

// Store reads and writes the CSV dataset rooted at a data directory.
type Store struct {
	dataDir string
}

// NewStore creates a Store for the given data directory.
func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dataDir
}

// SaveCustomers writes customers.csv, creating the data directory if needed.
func (s *Store) SaveCustomers(customers []model.Customer) error {
	return s.save(CustomersFile, func(f *os.File) error {
		return WriteCustomers(f, customers)
	})
}

// LoadCustomers reads customers.csv.
func (s *Store) LoadCustomers() ([]model.Customer, error) {
	path := filepath.Join(s.dataDir, CustomersFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	customers, err := ReadCustomers(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return customers, nil
}

// SaveTransactions writes transactions.csv, creating the data directory
// if needed.
func (s *Store) SaveTransactions(txns []model.Transaction) error {
	return s.save(TransactionsFile, func(f *os.File) error {
		return WriteTransactions(f, txns)
	})
}

// LoadTransactions reads transactions.csv.
func (s *Store) LoadTransactions() ([]model.Transaction, error) {
	path := filepath.Join(s.dataDir, TransactionsFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return txns, nil
}

// SaveScores writes rfm-scores.csv, creating the data directory if needed.
func (s *Store) SaveScores(scores []rfm.Score) error {
	return s.save(ScoresFile, func(f *os.File) error {
		return WriteScores(f, scores)
	})
}

func (s *Store) save(name string, write func(*os.File) error) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(s.dataDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
