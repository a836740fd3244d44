package contact

import (
	"context"

	"gitlab.com/contact-site.net/internal/domain"
)

// IContactService defines the contact-form use cases
type IContactService interface {
	// Submit validates the form and persists it as a new submission
	Submit(ctx context.Context, form domain.ContactForm) (*domain.Submission, error)

	// ListSubmissions returns all stored submissions in insertion order
	ListSubmissions(ctx context.Context) ([]*domain.Submission, error)
}
