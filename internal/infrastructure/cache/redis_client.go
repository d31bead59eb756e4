package cache

import (
	"context"
	"os"
	"strconv"
	"time"

	"academy_payments/internal/infrastructure/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisOptionsFromEnv reads REDIS_ADDR, REDIS_PASSWORD and REDIS_DB.
// ok is false when REDIS_ADDR is unset.
func RedisOptionsFromEnv() (*redis.Options, bool) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, false
	}
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}, true
}

// ConnectRedis returns nil when Redis is not configured or unreachable so
// callers can fall back to in-process implementations.
func ConnectRedis(ctx context.Context) *redis.Client {
	opts, ok := RedisOptionsFromEnv()
	if !ok {
		logger.Info("[redis][client] REDIS_ADDR not set, using in-process fallbacks")
		return nil
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Error("[redis][client] ping failed, using in-process fallbacks", zap.String("addr", opts.Addr), zap.Error(err))
		_ = rdb.Close()
		return nil
	}
	logger.Info("[redis][client] connected", zap.String("addr", opts.Addr))
	return rdb
}
