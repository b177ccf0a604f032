package ledger

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryStore keeps transactions in process memory. It is safe for
// concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	txs    []Transaction
	nextID int64
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, now: time.Now}
}

func (s *MemoryStore) AddTransaction(ctx context.Context, kind Kind, description string, amount float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := Validate(kind, description, amount); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, Transaction{
		ID:          s.nextID,
		Kind:        kind,
		Description: strings.TrimSpace(description),
		Amount:      amount,
		CreatedAt:   s.now().UTC(),
	})
	s.nextID++
	return nil
}

func (s *MemoryStore) Transactions(ctx context.Context) ([]Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Transaction(nil), s.txs...), nil
}

// Clear drops every transaction and restarts IDs at 1.
func (s *MemoryStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = nil
	s.nextID = 1
	return nil
}
