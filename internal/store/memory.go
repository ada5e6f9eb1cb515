package store

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-process Store used when no database is configured.
// Each log keeps at most limit entries; the oldest are dropped first.
type MemoryStore struct {
	mu    sync.Mutex
	limit int
	now   func() time.Time
	chats []ChatLog
	moods []MoodLog
}

func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = 500
	}
	return &MemoryStore{limit: limit, now: time.Now}
}

func (s *MemoryStore) AppendChat(_ context.Context, entry ChatLog) (ChatLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry = stampChat(entry, s.now())
	s.chats = append(s.chats, entry)
	if overflow := len(s.chats) - s.limit; overflow > 0 {
		s.chats = append([]ChatLog(nil), s.chats[overflow:]...)
	}
	return entry, nil
}

func (s *MemoryStore) AppendMood(_ context.Context, entry MoodLog) (MoodLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry = stampMood(entry, s.now())
	s.moods = append(s.moods, entry)
	if overflow := len(s.moods) - s.limit; overflow > 0 {
		s.moods = append([]MoodLog(nil), s.moods[overflow:]...)
	}
	return entry, nil
}

func (s *MemoryStore) ListChats(_ context.Context, limit int) ([]ChatLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newestFirst(s.chats, limit), nil
}

func (s *MemoryStore) ListMoods(_ context.Context, limit int) ([]MoodLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newestFirst(s.moods, limit), nil
}

func (s *MemoryStore) LatestMood(_ context.Context) (MoodLog, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.moods) == 0 {
		return MoodLog{}, false, nil
	}
	return s.moods[len(s.moods)-1], true, nil
}

func (s *MemoryStore) PruneBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	keptChats := s.chats[:0]
	for _, entry := range s.chats {
		if entry.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		keptChats = append(keptChats, entry)
	}
	s.chats = keptChats

	keptMoods := s.moods[:0]
	for _, entry := range s.moods {
		if entry.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		keptMoods = append(keptMoods, entry)
	}
	s.moods = keptMoods
	return removed, nil
}

func newestFirst[T any](items []T, limit int) []T {
	count := len(items)
	if limit > 0 && limit < count {
		count = limit
	}
	out := make([]T, 0, count)
	for idx := len(items) - 1; idx >= 0 && len(out) < count; idx-- {
		out = append(out, items[idx])
	}
	return out
}
