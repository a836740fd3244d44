package config

import (
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	HTTPConfig     *HTTPConfig
	StorageConfig  *StorageConfig
	PostgresConfig *PostgresConfig
	RedisConfig    *RedisConfig
	JwtConfig      *JwtConfig
	LogLevel       string
	ClientEndpoint string
}

func NewSystemConfig(v *viper.Viper) *AppConfig {
	return &AppConfig{
		HTTPConfig:     NewHTTPConfig(v),
		StorageConfig:  NewStorageConfig(v),
		PostgresConfig: NewPostgresConfig(v),
		RedisConfig:    NewRedisConfig(v),
		JwtConfig:      NewJwtConfig(v),
		LogLevel:       strings.ToLower(v.GetString("log.level")),
		ClientEndpoint: v.GetString("client.endpoint"),
	}
}
