package contact

import (
	"context"
	"fmt"

	"gitlab.com/contact-site.net/internal/core/ports/primary"
	"gitlab.com/contact-site.net/internal/core/ports/secondary"
	"gitlab.com/contact-site.net/internal/domain"
)

var _ IContactService = (*ContactService)(nil)

// ContactService implements IContactService on top of a submission repository
type ContactService struct {
	repo   secondary.SubmissionRepository
	ids    *domain.IDGenerator
	logger primary.Logger
}

// NewContactService creates a new contact service
func NewContactService(repo secondary.SubmissionRepository, ids *domain.IDGenerator, logger primary.Logger) *ContactService {
	if ids == nil {
		ids = domain.NewIDGenerator()
	}
	return &ContactService{
		repo:   repo,
		ids:    ids,
		logger: logger,
	}
}

// Submit validates the form and appends a new submission
func (s *ContactService) Submit(ctx context.Context, form domain.ContactForm) (*domain.Submission, error) {
	if err := Validate(form); err != nil {
		s.logger.Debug("Rejected contact form", "reason", err.Error())
		return nil, err
	}

	id, now := s.ids.Next()
	submission := domain.NewSubmission(id, form, now)

	if err := s.repo.Append(ctx, submission); err != nil {
		s.logger.Error("Failed to store submission", "submissionId", id, "error", err)
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}

	s.logger.Info("New submission received",
		"submissionId", submission.ID,
		"name", submission.Name,
		"email", submission.Email)

	return submission, nil
}

// ListSubmissions returns all stored submissions
func (s *ContactService) ListSubmissions(ctx context.Context) ([]*domain.Submission, error) {
	submissions, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list submissions", "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	if submissions == nil {
		submissions = []*domain.Submission{}
	}
	return submissions, nil
}
