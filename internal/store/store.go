package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ChatLog struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id,omitempty"`
	UserMessage string    `json:"user"`
	Response    string    `json:"bot"`
	Mode        string    `json:"mode"`
	Kind        string    `json:"kind"`
	Topics      []string  `json:"topics"`
	CreatedAt   time.Time `json:"time"`
}

type MoodLog struct {
	ID        string    `json:"id"`
	Mood      string    `json:"mood"`
	Note      string    `json:"note"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"time"`
}

// Store keeps the chat transcript and mood history shown on the admin and
// mood pages. List methods return newest first; limit <= 0 means no limit.
type Store interface {
	AppendChat(ctx context.Context, entry ChatLog) (ChatLog, error)
	AppendMood(ctx context.Context, entry MoodLog) (MoodLog, error)
	ListChats(ctx context.Context, limit int) ([]ChatLog, error)
	ListMoods(ctx context.Context, limit int) ([]MoodLog, error)
	LatestMood(ctx context.Context) (MoodLog, bool, error)
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

func stampChat(entry ChatLog, now time.Time) ChatLog {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now.UTC()
	}
	if entry.Topics == nil {
		entry.Topics = []string{}
	}
	return entry
}

func stampMood(entry MoodLog, now time.Time) MoodLog {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now.UTC()
	}
	return entry
}
