package config

import "github.com/spf13/viper"

type PostgresConfig struct {
	Url    string
	Schema string
}

func NewPostgresConfig(v *viper.Viper) *PostgresConfig {
	return &PostgresConfig{
		Url:    v.GetString("storage.postgres_url"),
		Schema: v.GetString("storage.postgres_schema"),
	}
}
