package server

import (
	"container/list"
	"strings"
	"sync"

	"mindease/backend/internal/wellness"
)

const sessionIDMaxLen = 128

// SessionRegistry hands out one conversation memory per session id. Requests
// without a session id share the default memory. At most limit sessions are
// kept; the least recently used one is evicted first.
type SessionRegistry struct {
	mu       sync.Mutex
	limit    int
	shared   *wellness.Memory
	order    *list.List
	sessions map[string]*list.Element
}

type sessionEntry struct {
	id     string
	memory *wellness.Memory
}

func NewSessionRegistry(limit int) *SessionRegistry {
	if limit <= 0 {
		limit = 1
	}
	return &SessionRegistry{
		limit:    limit,
		shared:   wellness.NewMemory(),
		order:    list.New(),
		sessions: make(map[string]*list.Element),
	}
}

// Memory returns the memory for sessionID, creating it on first use.
func (r *SessionRegistry) Memory(sessionID string) *wellness.Memory {
	id := normalizeSessionID(sessionID)
	if id == "" {
		return r.shared
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if elem, ok := r.sessions[id]; ok {
		r.order.MoveToFront(elem)
		return elem.Value.(*sessionEntry).memory
	}

	entry := &sessionEntry{id: id, memory: wellness.NewMemory()}
	r.sessions[id] = r.order.PushFront(entry)
	for r.order.Len() > r.limit {
		oldest := r.order.Back()
		r.order.Remove(oldest)
		delete(r.sessions, oldest.Value.(*sessionEntry).id)
	}
	return entry.memory
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.order.Len()
}

func normalizeSessionID(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > sessionIDMaxLen {
		trimmed = trimmed[:sessionIDMaxLen]
	}
	return trimmed
}
