package cache

import (
	"fmt"

	"bookshelf/config"
)

// RequestCacher keeps the most recent values written under a key, newest first.
type RequestCacher interface {
	Write(key string, value []byte) error
	Read(key string) ([]string, error)
}

// Open returns the RequestCacher selected by cfg.ActivityDriver.
func Open(cfg *config.Config) (RequestCacher, error) {
	switch cfg.ActivityDriver {
	case "memory":
		return CreateMemoryCache(cfg.ActivityMax), nil
	case "redis":
		cacher := CreateRedisCache(cfg.ActivityMax, config.SetupRedis(cfg))
		return &cacher, nil
	default:
		return nil, fmt.Errorf("unknown activity driver %s", cfg.ActivityDriver)
	}
}
