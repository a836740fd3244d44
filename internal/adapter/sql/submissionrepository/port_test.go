package submissionrepository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/contact-site.net/internal/adapter/logging"
	"gitlab.com/contact-site.net/internal/domain"
)

func openTestRepo(t *testing.T, path string) *submissionRepo {
	t.Helper()
	repo, err := OpenSQLite(context.Background(), path, logging.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo.(*submissionRepo)
}

func TestSQLite_AppendAndList(t *testing.T) {
	repo := openTestRepo(t, filepath.Join(t.TempDir(), "submissions.db"))
	ctx := context.Background()

	subs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, subs)

	// ids deliberately out of lexical order to check insertion ordering
	for _, id := range []string{"30", "200", "1000"} {
		require.NoError(t, repo.Append(ctx, &domain.Submission{
			ID:        id,
			Name:      "Ann Lee",
			Email:     "a@b.com",
			Message:   fmt.Sprintf("message number %s", id),
			Timestamp: "2026-01-02T03:04:05.000Z",
			Status:    domain.SubmissionStatusNew,
		}))
	}

	subs, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, "30", subs[0].ID)
	assert.Equal(t, "200", subs[1].ID)
	assert.Equal(t, "1000", subs[2].ID)
	assert.Equal(t, "2026-01-02T03:04:05.000Z", subs[2].Timestamp)
	assert.Equal(t, domain.SubmissionStatusNew, subs[2].Status)
}

func TestSQLite_DuplicateIDRejected(t *testing.T) {
	repo := openTestRepo(t, filepath.Join(t.TempDir(), "submissions.db"))
	ctx := context.Background()
	s := &domain.Submission{ID: "1", Name: "Ann", Email: "a@b.com", Message: "0123456789", Timestamp: "t", Status: domain.SubmissionStatusNew}

	require.NoError(t, repo.Append(ctx, s))
	assert.Error(t, repo.Append(ctx, s))
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "submissions.db")
	ctx := context.Background()

	first, err := OpenSQLite(ctx, path, logging.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, first.Append(ctx, &domain.Submission{ID: "1", Name: "Ann", Email: "a@b.com", Message: "0123456789", Timestamp: "t", Status: domain.SubmissionStatusNew}))
	require.NoError(t, first.Close())

	second := openTestRepo(t, path)
	subs, err := second.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Ann", subs[0].Name)
}
