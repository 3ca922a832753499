package store

import (
	"sort"
	"sync"

	"nine-mens-morris/internal/shared"
)

type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]*shared.Room
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: map[string]*shared.Room{},
	}
}

func (m *MemoryStore) GetRoom(code string) (*shared.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[code]
	return r, ok
}

func (m *MemoryStore) SaveRoom(r *shared.Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[r.Code] = r
}

func (m *MemoryStore) DeleteRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, code)
}

// Codes lists the stored room codes in sorted order.
func (m *MemoryStore) Codes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.rooms))
	for code := range m.rooms {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
