package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultMaxConns    = 8
	defaultPingTimeout = 5 * time.Second
)

var supportedPGQueryKeys = map[string]struct{}{
	"application_name":        {},
	"channel_binding":         {},
	"client_encoding":         {},
	"connect_timeout":         {},
	"default_query_exec_mode": {},
	"host":                    {},
	"keepalives":              {},
	"keepalives_idle":         {},
	"options":                 {},
	"pool_max_conns":          {},
	"sslcert":                 {},
	"sslkey":                  {},
	"sslmode":                 {},
	"sslrootcert":             {},
	"target_session_attrs":    {},
}

// Connect builds a pool for the log store. The URL may use any of the
// postgres scheme spellings accepted by normalizeDatabaseURL.
func Connect(ctx context.Context, rawURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(normalizeDatabaseURL(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if !strings.Contains(rawURL, "pool_max_conns") {
		cfg.MaxConns = defaultMaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return pool, nil
}

// Open connects and pings, closing the pool again if the ping fails.
func Open(ctx context.Context, rawURL string) (*pgxpool.Pool, error) {
	pool, err := Connect(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	return pool, nil
}

func normalizeDatabaseURL(rawURL string) string {
	normalized := strings.TrimSpace(rawURL)
	for _, prefix := range []string{"postgresql+psycopg://", "postgresql://"} {
		if strings.HasPrefix(normalized, prefix) {
			normalized = "postgres://" + strings.TrimPrefix(normalized, prefix)
			break
		}
	}

	parsed, err := url.Parse(normalized)
	if err != nil || parsed.Scheme != "postgres" {
		return normalized
	}

	filtered := make(url.Values)
	for key, values := range parsed.Query() {
		if _, ok := supportedPGQueryKeys[key]; !ok {
			continue
		}
		for _, v := range values {
			filtered.Add(key, v)
		}
	}
	parsed.RawQuery = filtered.Encode()
	return parsed.String()
}
