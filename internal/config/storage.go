package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type StorageConfig struct {
	Driver     string
	FilePath   string
	SQLitePath string
}

func NewStorageConfig(v *viper.Viper) *StorageConfig {
	return &StorageConfig{
		Driver:     strings.ToLower(strings.TrimSpace(v.GetString("storage.driver"))),
		FilePath:   v.GetString("storage.file_path"),
		SQLitePath: v.GetString("storage.sqlite_path"),
	}
}
