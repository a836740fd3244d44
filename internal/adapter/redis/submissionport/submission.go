package submissionport

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"gitlab.com/contact-site.net/internal/core/ports/primary"
	"gitlab.com/contact-site.net/internal/core/ports/secondary"
	"gitlab.com/contact-site.net/internal/domain"
)

var _ secondary.SubmissionRepository = (*SubmissionRepository)(nil)

const DefaultListKey = "contact:submissions"

// SubmissionRepository stores submissions as JSON strings in a single Redis list.
// RPUSH keeps insertion order and is atomic, so concurrent writers never lose records.
type SubmissionRepository struct {
	redisClient *redis.Client
	key         string
	logger      primary.Logger
}

// NewSubmissionRepository creates a new Redis submission repository
func NewSubmissionRepository(redisClient *redis.Client, key string, logger primary.Logger) *SubmissionRepository {
	if key == "" {
		key = DefaultListKey
	}
	return &SubmissionRepository{
		redisClient: redisClient,
		key:         key,
		logger:      logger,
	}
}

// Ping checks the connection
func (r *SubmissionRepository) Ping(ctx context.Context) error {
	if err := r.redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}
	return nil
}

// Append pushes the submission onto the tail of the list
func (r *SubmissionRepository) Append(ctx context.Context, submission *domain.Submission) error {
	data, err := encodeSubmission(submission)
	if err != nil {
		r.logger.Error("Failed to marshal submission", "error", err)
		return err
	}

	if err := r.redisClient.RPush(ctx, r.key, data).Err(); err != nil {
		r.logger.Error("Failed to push submission", "key", r.key, "error", err)
		return fmt.Errorf("failed to push submission: %w", err)
	}
	return nil
}

// List reads the whole list
func (r *SubmissionRepository) List(ctx context.Context) ([]*domain.Submission, error) {
	items, err := r.redisClient.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read submissions: %w", err)
	}
	return decodeSubmissions(items)
}

func (r *SubmissionRepository) Close() error {
	return r.redisClient.Close()
}

func encodeSubmission(submission *domain.Submission) (string, error) {
	data, err := json.Marshal(submission)
	if err != nil {
		return "", fmt.Errorf("failed to marshal submission: %w", err)
	}
	return string(data), nil
}

func decodeSubmissions(items []string) ([]*domain.Submission, error) {
	submissions := make([]*domain.Submission, 0, len(items))
	for i, item := range items {
		var s domain.Submission
		if err := json.Unmarshal([]byte(item), &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal submission %d: %w", i, err)
		}
		submissions = append(submissions, &s)
	}
	return submissions, nil
}
