// Package store provides the intake log interface and SQLite implementation.
package store

import (
	"context"

	"github.com/rcliao/fitplan/internal/model"
)

// RecordParams holds parameters for recording a submission.
type RecordParams struct {
	Profile    model.Profile
	Provenance model.Provenance
}

// ListParams holds parameters for listing submissions.
type ListParams struct {
	Source model.Source
	Goal   model.Goal
	Limit  int
}

// Store defines the intake log interface.
type Store interface {
	// Record stores a submission. Returns the created submission.
	Record(ctx context.Context, p RecordParams) (*model.Submission, error)

	// Get retrieves a submission by ID.
	Get(ctx context.Context, id string) (*model.Submission, error)

	// List lists submissions matching the given filters, newest first.
	List(ctx context.Context, p ListParams) ([]model.Submission, error)

	// Close closes the store.
	Close() error
}
