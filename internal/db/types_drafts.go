package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// Draft list limits
const (
	DefaultDraftListLimit = 50
	MaxDraftListLimit     = 200
)

// Draft is a stored resume document
type Draft struct {
	ID        uuid.UUID            `json:"id"`
	Document  types.ResumeDocument `json:"document"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// DraftSummary is a lightweight listing entry
type DraftSummary struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClampListLimit bounds a requested list size to [1, MaxDraftListLimit],
// using DefaultDraftListLimit for non-positive values.
func ClampListLimit(limit int) int {
	if limit <= 0 {
		return DefaultDraftListLimit
	}
	return min(limit, MaxDraftListLimit)
}
