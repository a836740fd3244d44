package config

import "github.com/spf13/viper"

type RedisConfig struct {
	DB       int
	Url      string
	Password string
	Key      string
}

func NewRedisConfig(v *viper.Viper) *RedisConfig {
	return &RedisConfig{
		DB:       v.GetInt("storage.redis_db"),
		Url:      v.GetString("storage.redis_addr"),
		Password: v.GetString("storage.redis_password"),
		Key:      v.GetString("storage.redis_key"),
	}
}
