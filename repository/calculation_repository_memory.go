package repository

import (
	"context"
	"sync"

	"alimony-calculator/domain"
)

// CalculationRepositoryMemory keeps the most recent calculations in memory.
// Once capacity is reached the oldest record is evicted.
type CalculationRepositoryMemory struct {
	mu       sync.RWMutex
	capacity int
	order    []string
	data     map[string]domain.CalculationRecord
}

// NewCalculationRepositoryMemory creates an in-memory history holding at most
// capacity records.
func NewCalculationRepositoryMemory(capacity int) *CalculationRepositoryMemory {
	if capacity <= 0 {
		capacity = 1
	}
	return &CalculationRepositoryMemory{
		capacity: capacity,
		order:    make([]string, 0, capacity),
		data:     make(map[string]domain.CalculationRecord, capacity),
	}
}

// Save stores the record, replacing any record with the same ID.
func (r *CalculationRepositoryMemory) Save(
	_ context.Context,
	record domain.CalculationRecord,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[record.ID]; exists {
		r.data[record.ID] = record
		return nil
	}

	if len(r.order) >= r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.data, oldest)
	}

	r.order = append(r.order, record.ID)
	r.data[record.ID] = record
	return nil
}

func (r *CalculationRepositoryMemory) FindByID(
	_ context.Context,
	id string,
) (domain.CalculationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.data[id]
	if !ok {
		return domain.CalculationRecord{}, ErrNotFound
	}
	return record, nil
}

// Len returns the number of stored records.
func (r *CalculationRepositoryMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
