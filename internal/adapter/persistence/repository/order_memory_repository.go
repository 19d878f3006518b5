package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"tracker_orders/internal/domain/entities"
	"tracker_orders/internal/usecase/interfaces"
)

// OrderMemoryRepository keeps orders in process memory, for local runs and
// tests. Records are stored serialized so callers never share nested maps or
// pointers with the store.
type OrderMemoryRepository struct {
	mu          sync.RWMutex
	byID        map[string][]byte
	byUsername  map[string]string
	byPseudonym map[string]string
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{
		byID:        make(map[string][]byte),
		byUsername:  make(map[string]string),
		byPseudonym: make(map[string]string),
	}
}

func (r *OrderMemoryRepository) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	record, err := json.Marshal(o)
	if err != nil {
		return entities.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[o.ID]; ok {
		return entities.Order{}, interfaces.ErrOrderAlreadyExists
	}
	if _, ok := r.byUsername[o.Username]; ok {
		return entities.Order{}, interfaces.ErrOrderAlreadyExists
	}
	if _, ok := r.byPseudonym[o.PseudonymousID]; ok && o.PseudonymousID != "" {
		return entities.Order{}, interfaces.ErrOrderAlreadyExists
	}
	r.byID[o.ID] = record
	r.byUsername[o.Username] = o.ID
	if o.PseudonymousID != "" {
		r.byPseudonym[o.PseudonymousID] = o.ID
	}
	return o, nil
}

func (r *OrderMemoryRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.load(id)
}

func (r *OrderMemoryRepository) GetByUsername(_ context.Context, username string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.load(r.byUsername[username])
}

func (r *OrderMemoryRepository) GetByPseudonymousID(_ context.Context, pseudonymousID string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.load(r.byPseudonym[pseudonymousID])
}

func (r *OrderMemoryRepository) Update(_ context.Context, o entities.Order, expectedUpdatedAt time.Time) (entities.Order, error) {
	record, err := json.Marshal(o)
	if err != nil {
		return entities.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	current, err := r.load(o.ID)
	if err != nil {
		return entities.Order{}, err
	}
	if current.ID == "" || !current.UpdatedAt.Equal(expectedUpdatedAt) {
		return entities.Order{}, interfaces.ErrOrderVersionConflict
	}
	r.byID[o.ID] = record
	return o, nil
}

// load expects the caller to hold the lock.
func (r *OrderMemoryRepository) load(id string) (entities.Order, error) {
	record, ok := r.byID[id]
	if !ok {
		return entities.Order{}, nil
	}
	return decodeRecord(record)
}
