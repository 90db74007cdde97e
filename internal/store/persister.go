package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Persister reads and writes the full store state under a fixed
// namespace. Load returns (nil, nil) when nothing has been written yet.
type Persister interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
	Close() error
}

// MemoryPersister keeps the snapshot in memory. It is used by tests and
// by deployments that explicitly opt out of durability.
type MemoryPersister struct {
	mu      sync.Mutex
	payload []byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

func (p *MemoryPersister) Load(_ context.Context) (*State, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.payload == nil {
		return nil, nil
	}
	var state State
	if err := json.Unmarshal(p.payload, &state); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}
	return &state, nil
}

func (p *MemoryPersister) Save(_ context.Context, state *State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	p.mu.Lock()
	p.payload = payload
	p.mu.Unlock()
	return nil
}

func (p *MemoryPersister) Close() error {
	return nil
}
