package cache

import "gopkg.in/redis.v5"

type RedisRequestCacher struct {
	MaxNumber int
	Client    *redis.Client
}

func CreateRedisCache(maxNumber int, client *redis.Client) RedisRequestCacher {
	return RedisRequestCacher{maxNumber, client}
}

func (cacher *RedisRequestCacher) Write(key string, value []byte) error {
	pushCmd := cacher.Client.LPush(key, value)

	if pushCmd.Err() != nil {
		return pushCmd.Err()
	}

	trimCmd := cacher.Client.LTrim(key, 0, int64(cacher.MaxNumber-1))

	if trimCmd.Err() != nil {
		return trimCmd.Err()
	}

	return nil
}

func (cacher *RedisRequestCacher) Read(key string) ([]string, error) {
	return cacher.Client.LRange(key, 0, int64(cacher.MaxNumber-1)).Result()
}
