package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

type dbQuerier interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

type PostgresStore struct {
	db  dbQuerier
	now func() time.Time
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: pool, now: time.Now}
}

// EnsureSchema creates the log tables when they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		return errors.New("database pool is nil")
	}
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply log schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) AppendChat(ctx context.Context, entry ChatLog) (ChatLog, error) {
	entry = stampChat(entry, s.now())
	var sessionID any
	if entry.SessionID != "" {
		sessionID = entry.SessionID
	}
	_, err := s.db.Exec(
		ctx,
		`INSERT INTO "ChatLog" (id, "sessionId", "userMessage", response, mode, kind, topics, "createdAt")
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID,
		sessionID,
		entry.UserMessage,
		entry.Response,
		entry.Mode,
		entry.Kind,
		entry.Topics,
		entry.CreatedAt,
	)
	if err != nil {
		return ChatLog{}, fmt.Errorf("insert chat log: %w", err)
	}
	return entry, nil
}

func (s *PostgresStore) AppendMood(ctx context.Context, entry MoodLog) (MoodLog, error) {
	entry = stampMood(entry, s.now())
	_, err := s.db.Exec(
		ctx,
		`INSERT INTO "MoodLog" (id, mood, note, plan, "createdAt")
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.ID,
		entry.Mood,
		entry.Note,
		entry.Plan,
		entry.CreatedAt,
	)
	if err != nil {
		return MoodLog{}, fmt.Errorf("insert mood log: %w", err)
	}
	return entry, nil
}

func (s *PostgresStore) ListChats(ctx context.Context, limit int) ([]ChatLog, error) {
	rows, err := s.db.Query(
		ctx,
		`SELECT id, COALESCE("sessionId", ''), "userMessage", response, mode, kind, topics, "createdAt"
		 FROM "ChatLog"
		 ORDER BY "createdAt" DESC
		 LIMIT $1`,
		sqlLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("query chat logs: %w", err)
	}
	defer rows.Close()

	items := make([]ChatLog, 0, 32)
	for rows.Next() {
		var entry ChatLog
		if err := rows.Scan(
			&entry.ID,
			&entry.SessionID,
			&entry.UserMessage,
			&entry.Response,
			&entry.Mode,
			&entry.Kind,
			&entry.Topics,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan chat log: %w", err)
		}
		entry.CreatedAt = entry.CreatedAt.UTC()
		items = append(items, entry)
	}
	return items, rows.Err()
}

func (s *PostgresStore) ListMoods(ctx context.Context, limit int) ([]MoodLog, error) {
	rows, err := s.db.Query(
		ctx,
		`SELECT id, mood, note, plan, "createdAt"
		 FROM "MoodLog"
		 ORDER BY "createdAt" DESC
		 LIMIT $1`,
		sqlLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("query mood logs: %w", err)
	}
	defer rows.Close()

	items := make([]MoodLog, 0, 32)
	for rows.Next() {
		var entry MoodLog
		if err := rows.Scan(&entry.ID, &entry.Mood, &entry.Note, &entry.Plan, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan mood log: %w", err)
		}
		entry.CreatedAt = entry.CreatedAt.UTC()
		items = append(items, entry)
	}
	return items, rows.Err()
}

func (s *PostgresStore) LatestMood(ctx context.Context) (MoodLog, bool, error) {
	var entry MoodLog
	err := s.db.QueryRow(
		ctx,
		`SELECT id, mood, note, plan, "createdAt"
		 FROM "MoodLog"
		 ORDER BY "createdAt" DESC
		 LIMIT 1`,
	).Scan(&entry.ID, &entry.Mood, &entry.Note, &entry.Plan, &entry.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return MoodLog{}, false, nil
	}
	if err != nil {
		return MoodLog{}, false, fmt.Errorf("query latest mood: %w", err)
	}
	entry.CreatedAt = entry.CreatedAt.UTC()
	return entry, true, nil
}

func (s *PostgresStore) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	for _, table := range []string{`"ChatLog"`, `"MoodLog"`} {
		tag, err := s.db.Exec(ctx, `DELETE FROM `+table+` WHERE "createdAt" < $1`, cutoff.UTC())
		if err != nil {
			return removed, fmt.Errorf("prune %s: %w", table, err)
		}
		removed += tag.RowsAffected()
	}
	return removed, nil
}

// sqlLimit maps "no limit" to NULL, which Postgres treats as LIMIT ALL.
func sqlLimit(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}
