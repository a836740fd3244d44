package submissionrepository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"gitlab.com/contact-site.net/internal/core/ports/primary"
	"gitlab.com/contact-site.net/internal/core/ports/secondary"
	"gitlab.com/contact-site.net/internal/domain"
	querybuilder "gitlab.com/contact-site.net/internal/utils"
)

var _ secondary.SubmissionRepository = (*submissionRepo)(nil)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// seq preserves insertion order; ids alone are not guaranteed to sort across processes.
var createTableDDL = map[string]string{
	DriverPostgres: `CREATE TABLE IF NOT EXISTS %s (
	seq BIGSERIAL PRIMARY KEY,
	id TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	message TEXT NOT NULL,
	submitted_at TEXT NOT NULL,
	status TEXT NOT NULL
)`,
	DriverSQLite: `CREATE TABLE IF NOT EXISTS %s (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	message TEXT NOT NULL,
	submitted_at TEXT NOT NULL,
	status TEXT NOT NULL
)`,
}

type submissionRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

// OpenPostgres connects to postgres and makes sure the submissions table exists.
func OpenPostgres(ctx context.Context, url, schema string, logger primary.Logger) (secondary.SubmissionRepository, error) {
	db, err := sqlx.Open(DriverPostgres, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}
	return newRepo(ctx, db, schema, logger)
}

// OpenSQLite opens (or creates) a sqlite database file.
func OpenSQLite(ctx context.Context, path string, logger primary.Logger) (secondary.SubmissionRepository, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	db, err := sqlx.Open(DriverSQLite, path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// single writer keeps sqlite from returning SQLITE_BUSY under load
	db.SetMaxOpenConns(1)
	return newRepo(ctx, db, "", logger)
}

// New wraps an already opened database. The driver name decides the DDL dialect.
func New(ctx context.Context, db *sqlx.DB, schema string, logger primary.Logger) (secondary.SubmissionRepository, error) {
	return newRepo(ctx, db, schema, logger)
}

func newRepo(ctx context.Context, db *sqlx.DB, schema string, logger primary.Logger) (*submissionRepo, error) {
	r := &submissionRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
	if err := r.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *submissionRepo) table() string {
	tbl := domain.GetSubmissionTable().TableName()
	if r.schema == "" {
		return tbl
	}
	return fmt.Sprintf("%s.%s", r.schema, tbl)
}

func (r *submissionRepo) migrate(ctx context.Context) error {
	ddl, ok := createTableDDL[r.db.DriverName()]
	if !ok {
		return fmt.Errorf("unsupported sql driver %q", r.db.DriverName())
	}
	if _, err := r.db.ExecContext(ctx, fmt.Sprintf(ddl, r.table())); err != nil {
		r.logger.Error("Failed to create submissions table", "driver", r.db.DriverName(), "error", err)
		return fmt.Errorf("failed to create submissions table: %w", err)
	}
	return nil
}

func (r *submissionRepo) Append(ctx context.Context, submission *domain.Submission) error {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(tbl.ID, tbl.Name, tbl.Email, tbl.Message, tbl.Timestamp, tbl.Status).
		Into(tbl.TableName()).
		Values(submission.ID, submission.Name, submission.Email, submission.Message,
			submission.Timestamp, string(submission.Status)).
		Build()

	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to insert submission", "submissionId", submission.ID, "error", err)
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

func (r *submissionRepo) List(ctx context.Context) ([]*domain.Submission, error) {
	tbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(tbl.ID, tbl.Name, tbl.Email, tbl.Message, tbl.Timestamp, tbl.Status).
		From(tbl.TableName()).
		OrderBy("seq", true).
		Build()

	submissions := make([]*domain.Submission, 0)
	if err := r.db.SelectContext(ctx, &submissions, r.db.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to select submissions", "error", err)
		return nil, fmt.Errorf("failed to select submissions: %w", err)
	}
	return submissions, nil
}

func (r *submissionRepo) Close() error {
	return r.db.Close()
}
