package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	DEFAULT_PORT          = "8080"
	DEFAULT_DRIVER        = "file"
	DEFAULT_DB_PATH       = "db.json"
	DEFAULT_REDIS_KEY     = "books:db"
	DEFAULT_ELASTIC_INDEX = "books"
	DEFAULT_MINIO_OBJECT  = "db.json"
	DEFAULT_ACTIVITY_MAX  = 3
)

// Config is read from the environment once at startup.
type Config struct {
	Port string

	StorageDriver string
	DbPath        string

	RedisUrl string
	RedisKey string

	ElasticUrl   string
	ElasticIndex string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioObject    string
	MinioSecure    bool

	ActivityDriver string
	ActivityMax    int
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load builds a Config from the environment and checks that the selected
// drivers have what they need.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getenv("PORT", DEFAULT_PORT),
		StorageDriver:  getenv("STORAGE_DRIVER", DEFAULT_DRIVER),
		DbPath:         getenv("DB_PATH", DEFAULT_DB_PATH),
		RedisUrl:       os.Getenv("REDIS_URL"),
		RedisKey:       getenv("REDIS_KEY", DEFAULT_REDIS_KEY),
		ElasticUrl:     os.Getenv("ELASTIC_URL"),
		ElasticIndex:   getenv("ELASTIC_INDEX", DEFAULT_ELASTIC_INDEX),
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    os.Getenv("MINIO_BUCKET"),
		MinioObject:    getenv("MINIO_OBJECT", DEFAULT_MINIO_OBJECT),
		ActivityDriver: getenv("ACTIVITY_DRIVER", "memory"),
		ActivityMax:    DEFAULT_ACTIVITY_MAX,
	}

	if v := os.Getenv("MINIO_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("MINIO_SECURE: %w", err)
		}
		cfg.MinioSecure = secure
	}

	if v := os.Getenv("ACTIVITY_MAX"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("ACTIVITY_MAX must be a positive integer, got '%s'", v)
		}
		cfg.ActivityMax = n
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.StorageDriver {
	case "file":
		if cfg.DbPath == "" {
			return fmt.Errorf("DB_PATH is required for the file driver")
		}
	case "memory":
	case "redis":
		if cfg.RedisUrl == "" {
			return fmt.Errorf("REDIS_URL is required for the redis driver")
		}
	case "elastic":
		if cfg.ElasticUrl == "" {
			return fmt.Errorf("ELASTIC_URL is required for the elastic driver")
		}
	case "minio":
		if cfg.MinioEndpoint == "" || cfg.MinioAccessKey == "" || cfg.MinioSecretKey == "" || cfg.MinioBucket == "" {
			return fmt.Errorf("MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY and MINIO_BUCKET are required for the minio driver")
		}
	default:
		return fmt.Errorf("unknown storage driver '%s'", cfg.StorageDriver)
	}

	switch cfg.ActivityDriver {
	case "memory":
	case "redis":
		if cfg.RedisUrl == "" {
			return fmt.Errorf("REDIS_URL is required for the redis activity driver")
		}
	default:
		return fmt.Errorf("unknown activity driver '%s'", cfg.ActivityDriver)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (cfg *Config) Addr() string {
	return ":" + cfg.Port
}
