package submissionrepository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gitlab.com/contact-site.net/internal/core/ports/primary"
	"gitlab.com/contact-site.net/internal/core/ports/secondary"
	"gitlab.com/contact-site.net/internal/domain"
)

var _ secondary.SubmissionRepository = (*FileRepository)(nil)

const filePerm = 0o644

// FileRepository keeps all submissions in a single pretty-printed JSON array.
// Every append rewrites the whole document in place.
type FileRepository struct {
	path   string
	logger primary.Logger
	mu     sync.Mutex
}

// New prepares the data file, creating its directory and an empty array if needed.
func New(path string, logger primary.Logger) (*FileRepository, error) {
	r := &FileRepository{
		path:   path,
		logger: logger,
	}
	if err := r.ensureFile(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the backing file path
func (r *FileRepository) Path() string {
	return r.path
}

func (r *FileRepository) ensureFile() error {
	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	_, err := os.Stat(r.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat data file: %w", err)
	}
	r.logger.Info("Initializing submissions file", "path", r.path)
	return r.write([]*domain.Submission{})
}

// Append reads the current array, adds the submission and writes the array back.
func (r *FileRepository) Append(ctx context.Context, submission *domain.Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	submissions, err := r.read()
	if err != nil {
		return err
	}
	submissions = append(submissions, submission)
	return r.write(submissions)
}

// List returns the stored array
func (r *FileRepository) List(ctx context.Context) ([]*domain.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.read()
}

func (r *FileRepository) Close() error {
	return nil
}

func (r *FileRepository) read() ([]*domain.Submission, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*domain.Submission{}, nil
		}
		r.logger.Error("Error reading submissions", "path", r.path, "error", err)
		return nil, fmt.Errorf("failed to read submissions file: %w", err)
	}

	submissions := make([]*domain.Submission, 0)
	if len(bytes.TrimSpace(data)) == 0 {
		return submissions, nil
	}
	if err := json.Unmarshal(data, &submissions); err != nil {
		r.logger.Error("Error decoding submissions", "path", r.path, "error", err)
		return nil, fmt.Errorf("failed to decode submissions file: %w", err)
	}
	return submissions, nil
}

func (r *FileRepository) write(submissions []*domain.Submission) error {
	data, err := json.MarshalIndent(submissions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode submissions: %w", err)
	}
	if err := os.WriteFile(r.path, data, filePerm); err != nil {
		r.logger.Error("Error writing submissions", "path", r.path, "error", err)
		return fmt.Errorf("failed to write submissions file: %w", err)
	}
	return nil
}
