package db

import (
	"context"

	"bookshelf/models"
	"gopkg.in/redis.v5"
)

// RedisStorage keeps the whole document under a single key.
type RedisStorage struct {
	Key    string
	Client *redis.Client
}

func CreateRedisStorage(key string, client *redis.Client) *RedisStorage {
	return &RedisStorage{key, client}
}

func (storage *RedisStorage) Load(_ context.Context) (*models.Collection, error) {
	op := "load redis " + storage.Key
	d, err := storage.Client.Get(storage.Key).Bytes()
	if err == redis.Nil {
		return &models.Collection{Books: []models.Book{}}, nil
	}
	if err != nil {
		return nil, unavailable(op, err)
	}
	return decode(op, d)
}

func (storage *RedisStorage) Save(_ context.Context, collection *models.Collection) error {
	op := "save redis " + storage.Key
	d, err := encode(op, collection)
	if err != nil {
		return err
	}
	// SET replaces the value in one step
	if err := storage.Client.Set(storage.Key, d, 0).Err(); err != nil {
		return unavailable(op, err)
	}
	return nil
}
