package config

import (
	"gopkg.in/redis.v5"
)

func SetupRedis(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: cfg.RedisUrl,
	})
}
