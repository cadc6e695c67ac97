package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// attemptRepo implements AttemptRepo with plain SQL.
type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) RecordAttempt(ctx context.Context, a *Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO quiz_attempts
		(id, created_at, source, score, total, skipped, unverifiable)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Timestamp.UnixMilli(), a.Source, a.Score, a.Total, a.Skipped, a.Unverifiable)
	if err != nil {
		return fmt.Errorf("save quiz attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) ListAttempts(ctx context.Context, limit int) ([]Attempt, error) {
	query := `SELECT id, created_at, source, score, total, skipped, unverifiable
		FROM quiz_attempts ORDER BY created_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var (
			a         Attempt
			createdAt int64
		)
		if err := rows.Scan(&a.ID, &createdAt, &a.Source, &a.Score, &a.Total, &a.Skipped, &a.Unverifiable); err != nil {
			return nil, fmt.Errorf("scan quiz attempt: %w", err)
		}
		a.Timestamp = time.UnixMilli(createdAt)
		out = append(out, a)
	}
	return out, rows.Err()
}
