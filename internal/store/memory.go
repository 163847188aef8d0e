package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gyaneshwarpardhi/evochain/internal/species"
)

// Memory is an in-process Store. Details are kept encoded so callers never
// share mutable state with the store.
type Memory struct {
	mu      sync.RWMutex
	entries map[int][]byte
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[int][]byte)}
}

func (m *Memory) Put(_ context.Context, d *species.Detail) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode species %d: %w", d.ID, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[d.ID] = data
	return nil
}

func (m *Memory) Get(_ context.Context, id int) (*species.Detail, error) {
	m.mu.RLock()
	data, ok := m.entries[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	var d species.Detail
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode species %d: %w", id, err)
	}
	return &d, nil
}

func (m *Memory) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

// Len returns the number of stored details.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memory) Close() error { return nil }
