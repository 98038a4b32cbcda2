package sessions

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"route-roster-service/internal/ports"
	"route-roster-service/internal/services"
)

type memorySession struct {
	drivers    *services.SelectionSet
	recipients *services.SelectionSet
}

func (s *memorySession) set(kind ports.SelectionKind) *services.SelectionSet {
	if kind == ports.SelectionDrivers {
		return s.drivers
	}
	return s.recipients
}

// MemoryStore keeps composition sessions in process memory. Suitable for a
// single instance; multi-instance deployments use the Redis store.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*memorySession)}
}

func (m *MemoryStore) Create(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.sessions[id] = &memorySession{
		drivers:    services.NewSelectionSet(),
		recipients: services.NewSelectionSet(),
	}
	return id, nil
}

func (m *MemoryStore) Toggle(ctx context.Context, sessionID string, kind ports.SelectionKind, id int, deselect bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return ports.ErrSessionNotFound
	}

	s.set(kind).Toggle(id, deselect)
	return nil
}

func (m *MemoryStore) Selections(ctx context.Context, sessionID string, kind ports.SelectionKind) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ports.ErrSessionNotFound
	}

	return s.set(kind).Current(), nil
}

// Clear ends the session: the construction workflow is done once the draft
// has been submitted successfully.
func (m *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[sessionID]; !ok {
		return ports.ErrSessionNotFound
	}

	delete(m.sessions, sessionID)
	return nil
}
