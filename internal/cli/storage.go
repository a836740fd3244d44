package cli

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	filerepo "gitlab.com/contact-site.net/internal/adapter/file/submissionrepository"
	"gitlab.com/contact-site.net/internal/adapter/redis/submissionport"
	sqlrepo "gitlab.com/contact-site.net/internal/adapter/sql/submissionrepository"
	"gitlab.com/contact-site.net/internal/config"
	"gitlab.com/contact-site.net/internal/core/ports/primary"
	"gitlab.com/contact-site.net/internal/core/ports/secondary"
)

// openRepository builds the submission store selected by storage.driver.
func openRepository(ctx context.Context, cfg *config.AppConfig, logger primary.Logger) (secondary.SubmissionRepository, error) {
	switch cfg.StorageConfig.Driver {
	case config.DriverFile:
		return filerepo.New(cfg.StorageConfig.FilePath, logger)
	case config.DriverSQLite:
		return sqlrepo.OpenSQLite(ctx, cfg.StorageConfig.SQLitePath, logger)
	case config.DriverPostgres:
		return sqlrepo.OpenPostgres(ctx, cfg.PostgresConfig.Url, cfg.PostgresConfig.Schema, logger)
	case config.DriverRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisConfig.Url,
			Password: cfg.RedisConfig.Password,
			DB:       cfg.RedisConfig.DB,
		})
		repo := submissionport.NewSubmissionRepository(redisClient, cfg.RedisConfig.Key, logger)
		if err := repo.Ping(ctx); err != nil {
			_ = repo.Close()
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageConfig.Driver)
	}
}

// storageLocation describes where submissions live, for startup logs
func storageLocation(cfg *config.AppConfig) string {
	switch cfg.StorageConfig.Driver {
	case config.DriverFile:
		return cfg.StorageConfig.FilePath
	case config.DriverSQLite:
		return cfg.StorageConfig.SQLitePath
	case config.DriverPostgres:
		return cfg.PostgresConfig.Schema + ".submissions"
	case config.DriverRedis:
		return cfg.RedisConfig.Url + "/" + cfg.RedisConfig.Key
	}
	return ""
}
