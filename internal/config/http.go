package config

import (
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Port         int
	StaticDir    string
	CORSOrigin   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

func NewHTTPConfig(v *viper.Viper) *HTTPConfig {
	return &HTTPConfig{
		Port:         v.GetInt("http.port"),
		StaticDir:    v.GetString("http.static_dir"),
		CORSOrigin:   v.GetString("http.cors_origin"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
