// Package store holds the in-memory transaction collection.
package store

import (
	"sync"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
)

// TransactionStore owns the ordered list of transactions. Insertion order is
// the display order. The list is only changed through Add and Remove;
// Snapshot hands out copies.
type TransactionStore struct {
	mu           sync.RWMutex
	transactions []*models.Transaction
	logger       logging.Logger
}

// NewTransactionStore creates an empty store.
func NewTransactionStore(logger logging.Logger) *TransactionStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &TransactionStore{
		transactions: make([]*models.Transaction, 0),
		logger:       logger,
	}
}

// Add appends tx. The store does not validate; nil is ignored.
func (s *TransactionStore) Add(tx *models.Transaction) {
	if tx == nil {
		return
	}
	s.mu.Lock()
	s.transactions = append(s.transactions, tx)
	count := len(s.transactions)
	s.mu.Unlock()

	s.logger.Debug("Transaction stored",
		logging.F(logging.FieldTransactionID, tx.ID()),
		logging.F(logging.FieldCount, count))
}

// Remove deletes the first entry that is the same instance as tx and reports
// whether one was found. A missing transaction is not an error.
func (s *TransactionStore) Remove(tx *models.Transaction) bool {
	if tx == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.transactions {
		if t == tx {
			copy(s.transactions[i:], s.transactions[i+1:])
			s.transactions[len(s.transactions)-1] = nil
			s.transactions = s.transactions[:len(s.transactions)-1]
			s.logger.Debug("Transaction removed",
				logging.F(logging.FieldTransactionID, tx.ID()),
				logging.F(logging.FieldCount, len(s.transactions)))
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current list. Later changes to the store are
// not reflected in it and changes to it do not reach the store.
func (s *TransactionStore) Snapshot() []*models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Find returns the stored transaction with the given id.
func (s *TransactionStore) Find(id string) (*models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, tx := range s.transactions {
		if tx.ID() == id {
			return tx, true
		}
	}
	return nil, false
}

// Len returns the number of stored transactions.
func (s *TransactionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}
