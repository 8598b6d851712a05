package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-builder/internal/types"
)

// CreateDraft stores a new resume document and returns the created draft
func (db *DB) CreateDraft(ctx context.Context, doc *types.ResumeDocument) (*Draft, error) {
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal draft: %w", err)
	}

	draft := &Draft{Document: *doc}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resume_drafts (document)
		 VALUES ($1)
		 RETURNING id, created_at, updated_at`,
		jsonBytes,
	).Scan(&draft.ID, &draft.CreatedAt, &draft.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	return draft, nil
}

// GetDraft retrieves a draft by ID. Returns nil, nil if not found.
func (db *DB) GetDraft(ctx context.Context, id uuid.UUID) (*Draft, error) {
	var draft Draft
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, document, created_at, updated_at FROM resume_drafts WHERE id = $1`,
		id,
	).Scan(&draft.ID, &content, &draft.CreatedAt, &draft.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get draft %s: %w", id, err)
	}

	if err := json.Unmarshal(content, &draft.Document); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft %s: %w", id, err)
	}
	return &draft, nil
}

// UpdateDraft replaces the document of a draft. Returns nil, nil if not found.
func (db *DB) UpdateDraft(ctx context.Context, id uuid.UUID, doc *types.ResumeDocument) (*Draft, error) {
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal draft: %w", err)
	}

	draft := &Draft{Document: *doc}
	err = db.pool.QueryRow(ctx,
		`UPDATE resume_drafts SET document = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING id, created_at, updated_at`,
		jsonBytes, id,
	).Scan(&draft.ID, &draft.CreatedAt, &draft.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update draft %s: %w", id, err)
	}
	return draft, nil
}

// DeleteDraft removes a draft. Returns false if it did not exist.
func (db *DB) DeleteDraft(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resume_drafts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete draft %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListDrafts returns the most recently updated drafts
func (db *DB) ListDrafts(ctx context.Context, limit int) ([]DraftSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, COALESCE(document->'personalInfo'->>'fullName', ''), created_at, updated_at
		 FROM resume_drafts
		 ORDER BY updated_at DESC
		 LIMIT $1`,
		ClampListLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	summaries := []DraftSummary{}
	for rows.Next() {
		var s DraftSummary
		if err := rows.Scan(&s.ID, &s.FullName, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate drafts: %w", err)
	}
	return summaries, nil
}
