package ledger

import (
	"sync"
	"time"

	"temani/internal/models"
)

// MemoryStore is a mutex-guarded Store for tests and local development.
// The database-backed store lives in internal/repository.
type MemoryStore struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*models.Transaction
	byRef  map[string]uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		byID:   make(map[uint]*models.Transaction),
		byRef:  make(map[string]uint),
	}
}

func (s *MemoryStore) Create(tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.nextID
	s.nextID++
	now := time.Now()
	tx.CreatedAt = now
	tx.UpdatedAt = now
	cp := *tx
	s.byID[tx.ID] = &cp
	s.byRef[tx.GatewayRef] = tx.ID
	return nil
}

func (s *MemoryStore) GetByID(id uint) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *tx
	return &cp, nil
}

func (s *MemoryStore) GetByGatewayRef(ref string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byRef[ref]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s.byID[id]
	return &cp, nil
}

func (s *MemoryStore) CompareAndSwapState(id uint, from, to string, paidAt *time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.byID[id]
	if !ok {
		return false, ErrNotFound
	}
	if tx.State != from {
		return false, nil
	}
	tx.State = to
	if paidAt != nil {
		tx.PaidAt = paidAt
	}
	tx.UpdatedAt = time.Now()
	return true, nil
}
