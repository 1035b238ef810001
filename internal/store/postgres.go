// Package store persists an audit trail of tool invocations in Postgres.
// The store is optional; when disabled the serving surfaces simply skip
// recording.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hashkit/hedera-agent-kit/pkg/core"
)

type Postgres struct{ db *pgxpool.Pool }

func NewPostgres(url string) (*Postgres, error) {
	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		return nil, err
	}
	return &Postgres{db: pool}, nil
}

// Close releases the connection pool.
func (s *Postgres) Close() { s.db.Close() }

// EnsureSchema creates the audit table if it does not exist.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS tool_invocations (
            id             TEXT PRIMARY KEY,
            tool           TEXT NOT NULL,
            mode           TEXT NOT NULL,
            status         TEXT NOT NULL,
            transaction_id TEXT,
            blocked_by     TEXT,
            error          TEXT,
            raw_json       JSONB,
            created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
        )
    `)
	return err
}

// InvocationRow is one recorded tool invocation.
type InvocationRow struct {
	ID            string         `json:"id"`
	Tool          string         `json:"tool"`
	Mode          string         `json:"mode"`
	Status        string         `json:"status"`
	TransactionID string         `json:"transactionId,omitempty"`
	BlockedBy     string         `json:"blockedBy,omitempty"`
	Error         string         `json:"error,omitempty"`
	Raw           map[string]any `json:"raw,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// RecordInvocation writes the outcome of one tool call.
func (s *Postgres) RecordInvocation(ctx context.Context, id, tool string, mode core.AgentMode, result *core.ExecutionResult) error {
	status := ""
	transactionID := ""
	errMsg := ""
	if result.Raw != nil {
		if v, ok := result.Raw["status"].(string); ok {
			status = v
		}
		if v, ok := result.Raw["transactionId"].(string); ok {
			transactionID = v
		}
		if v, ok := result.Raw["error"].(string); ok {
			errMsg = v
		}
	}
	if result.IsBytes() {
		status = "BYTES_RETURNED"
	}

	b, _ := json.Marshal(result.Raw)
	_, err := s.db.Exec(ctx, `
        INSERT INTO tool_invocations (id, tool, mode, status, transaction_id, blocked_by, error, raw_json)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    `, id, tool, string(mode), status, transactionID, result.BlockedBy, errMsg, b)
	return err
}

// ListInvocations returns the most recent invocations, newest first.
func (s *Postgres) ListInvocations(ctx context.Context, limit int) ([]InvocationRow, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := s.db.Query(ctx, `
        SELECT id, tool, mode, status, transaction_id, blocked_by, error, raw_json, created_at
        FROM tool_invocations
        ORDER BY created_at DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []InvocationRow
	for rows.Next() {
		var r InvocationRow
		var rawJSON []byte
		if err := rows.Scan(&r.ID, &r.Tool, &r.Mode, &r.Status, &r.TransactionID, &r.BlockedBy, &r.Error, &rawJSON, &r.CreatedAt); err != nil {
			return nil, err
		}
		if len(rawJSON) > 0 {
			_ = json.Unmarshal(rawJSON, &r.Raw)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
