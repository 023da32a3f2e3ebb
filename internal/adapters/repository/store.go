// Package repository stores balance job results for later retrieval.
package repository

import (
	"context"
	"time"

	"github.com/matchday/teamdraft/internal/domain/model"
)

// Result is the outcome of one balance job: a full partition of the
// submitted roster plus its balance score.
type Result struct {
	JobID       string
	Strategy    string
	Teams       []*model.Team
	Score       float64
	CompletedAt time.Time
}

// Store provides read/write access to job results.
type Store interface {
	// Put stores a result, replacing any previous result for the same job id.
	Put(ctx context.Context, res Result) error

	// Get returns the result for a job id.
	// Returns ErrNotFound if the job is unknown or still in flight.
	Get(ctx context.Context, jobID string) (Result, error)

	// Count returns the number of results currently held.
	Count(ctx context.Context) int
}
