package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/contact-site.net/internal/adapter/logging"
	"gitlab.com/contact-site.net/internal/domain"
	"gitlab.com/contact-site.net/internal/static/errs"
)

type memoryRepo struct {
	items     []*domain.Submission
	appendErr error
	listErr   error
}

func (m *memoryRepo) Append(_ context.Context, s *domain.Submission) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.items = append(m.items, s)
	return nil
}

func (m *memoryRepo) List(_ context.Context) ([]*domain.Submission, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *memoryRepo) Close() error { return nil }

func newTestService(repo *memoryRepo) *ContactService {
	at := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	ids := domain.NewIDGeneratorWithClock(func() time.Time { return at })
	return NewContactService(repo, ids, logging.NewNopLogger())
}

func TestContactService_Submit(t *testing.T) {
	repo := &memoryRepo{}
	svc := newTestService(repo)

	sub, err := svc.Submit(context.Background(), domain.ContactForm{
		Name:    " Ann Lee ",
		Email:   "a@b.com",
		Message: "Hello there, this is a test.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "Ann Lee", sub.Name)
	assert.Equal(t, domain.SubmissionStatusNew, sub.Status)
	assert.Equal(t, "2026-05-04T12:00:00.000Z", sub.Timestamp)
	require.Len(t, repo.items, 1)
	assert.Same(t, sub, repo.items[0])
}

func TestContactService_SubmitDistinctIDs(t *testing.T) {
	repo := &memoryRepo{}
	svc := newTestService(repo)
	form := domain.ContactForm{Name: "Ann Lee", Email: "a@b.com", Message: "Hello there, this is a test."}

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		sub, err := svc.Submit(context.Background(), form)
		require.NoError(t, err)
		assert.False(t, seen[sub.ID], "duplicate id %s", sub.ID)
		seen[sub.ID] = true
	}
}

func TestContactService_SubmitInvalidSkipsRepository(t *testing.T) {
	repo := &memoryRepo{}
	svc := newTestService(repo)

	_, err := svc.Submit(context.Background(), domain.ContactForm{Name: "A", Email: "a@b.com", Message: "Hello there, this is a test."})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.NameTooShort)
	assert.Empty(t, repo.items)
}

func TestContactService_SubmitStorageFailure(t *testing.T) {
	boom := errors.New("disk full")
	svc := newTestService(&memoryRepo{appendErr: boom})

	_, err := svc.Submit(context.Background(), domain.ContactForm{Name: "Ann Lee", Email: "a@b.com", Message: "Hello there, this is a test."})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, errs.IsValidation(err))
}

func TestContactService_ListSubmissions(t *testing.T) {
	svc := newTestService(&memoryRepo{})
	subs, err := svc.ListSubmissions(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, subs)
	assert.Empty(t, subs)

	boom := errors.New("unreadable")
	svc = newTestService(&memoryRepo{listErr: boom})
	_, err = svc.ListSubmissions(context.Background())
	assert.ErrorIs(t, err, boom)
}
