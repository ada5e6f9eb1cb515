package wellness

import "sync"

const MemoryCapacity = 8

// Memory is a bounded FIFO of topic summaries from earlier messages.
// The zero value is ready to use. It is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	entries []string
}

func NewMemory() *Memory {
	return &Memory{entries: make([]string, 0, MemoryCapacity)}
}

// Record appends the joined topic names and drops the oldest entries beyond
// MemoryCapacity. Empty topic sets are ignored.
func (m *Memory) Record(topics []Topic) {
	if len(topics) == 0 {
		return
	}
	summary := joinTopics(topics)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, summary)
	if overflow := len(m.entries) - MemoryCapacity; overflow > 0 {
		trimmed := make([]string, MemoryCapacity)
		copy(trimmed, m.entries[overflow:])
		m.entries = trimmed
	}
}

func (m *Memory) LastSummary() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		return "", false
	}
	return m.entries[len(m.entries)-1], true
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Snapshot returns the stored summaries, oldest first.
func (m *Memory) Snapshot() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = m.entries[:0]
}
