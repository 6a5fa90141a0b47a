package db

import (
	"context"
	"fmt"

	"bookshelf/config"
)

// Open returns the Storage selected by cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch Driver(cfg.StorageDriver) {
	case DriverFile:
		return CreateFileStorage(cfg.DbPath), nil
	case DriverMemory:
		return CreateMemoryStorage(), nil
	case DriverRedis:
		return CreateRedisStorage(cfg.RedisKey, config.SetupRedis(cfg)), nil
	case DriverElastic:
		client, err := config.SetupElasticSearch(cfg)
		if err != nil {
			return nil, err
		}
		return CreateElasticStorage(cfg.ElasticIndex, client), nil
	case DriverMinio:
		client, err := config.SetupMinio(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return CreateMinioStorage(cfg.MinioBucket, cfg.MinioObject, client), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %s", cfg.StorageDriver)
	}
}
