package secondary

import (
	"context"

	"gitlab.com/contact-site.net/internal/domain"
)

type SubmissionRepository interface {
	// Append persists a new submission after all existing ones
	Append(ctx context.Context, submission *domain.Submission) error

	// List returns every stored submission in insertion order
	List(ctx context.Context) ([]*domain.Submission, error)

	// Close releases the underlying storage handle
	Close() error
}
