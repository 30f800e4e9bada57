package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/redis/go-redis/v9"
)

const redisAddr = "localhost:6379"

func WaitForRedisSetup(rdb redis.Cmdable) {
	const maxInterval = 10 * time.Second
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}

	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = rdb.Ping(ctx).Err()
		cancel()
		if err == nil {
			return
		}
		next, ok := strategy.Next()
		if !ok {
			panic("WaitForRedisSetup 重试失败......")
		}
		time.Sleep(next)
	}
}

func InitRedis() redis.Cmdable {
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	WaitForRedisSetup(rdb)
	return rdb
}
