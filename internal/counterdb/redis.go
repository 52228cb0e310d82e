package counterdb

import (
	"context"
	"errors"

	"github.com/livp123/flowstat/internal/config"
	flowerrors "github.com/livp123/flowstat/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisConnector implements Connector against a Redis-backed counters DB.
// RedisConnector 基于 Redis 计数器数据库实现 Connector。
type RedisConnector struct {
	client *redis.Client
}

// NewRedisConnector opens a connection to one namespace's counters DB.
// NewRedisConnector 打开到单个命名空间计数器数据库的连接。
func NewRedisConnector(ns config.NamespaceConfig) *RedisConnector {
	return &RedisConnector{
		client: redis.NewClient(&redis.Options{
			Addr: ns.Addr,
			DB:   ns.DB,
		}),
	}
}

// Get reads a single hash field.
// Get 读取单个哈希字段。
func (c *RedisConnector) Get(ctx context.Context, table, key, field string) (string, bool, error) {
	val, err := c.client.HGet(ctx, TableKey(table, key), field).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, flowerrors.NewStoreReadError(table, key, err)
	}
	return val, true, nil
}

// GetAll reads a whole hash row.
// GetAll 读取整个哈希行。
func (c *RedisConnector) GetAll(ctx context.Context, table, key string) (map[string]string, error) {
	vals, err := c.client.HGetAll(ctx, TableKey(table, key)).Result()
	if err != nil {
		return nil, flowerrors.NewStoreReadError(table, key, err)
	}
	return vals, nil
}

// Close releases the Redis connection.
// Close 释放 Redis 连接。
func (c *RedisConnector) Close() error {
	return c.client.Close()
}
