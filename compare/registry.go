package compare

import "sync"

// Registry hands out one Manager per session. Sets live for the app session
// only; they are not persisted.
type Registry struct {
	mu       sync.Mutex
	managers map[string]*Manager
}

func NewRegistry() *Registry {
	return &Registry{managers: make(map[string]*Manager)}
}

// Manager returns the session's comparison set, creating it on first use.
func (r *Registry) Manager(sessionID string) *Manager {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.managers[sessionID]
	if !ok {
		m = NewManager()
		r.managers[sessionID] = m
	}
	return m
}
