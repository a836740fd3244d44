package config

import (
	"time"

	"github.com/spf13/viper"
)

type JwtConfig struct {
	Secret   string
	TokenTTL time.Duration
}

func NewJwtConfig(v *viper.Viper) *JwtConfig {
	return &JwtConfig{
		Secret:   v.GetString("admin.jwt_secret"),
		TokenTTL: v.GetDuration("admin.token_ttl"),
	}
}
