package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects the client used for the email job queue and its DLQ.
// The pool is sized for the worker count: every worker goroutine holds a
// connection in BRPOP on top of the request-path dispatches.
func NewRedis(redisURL string, workers int) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	opts.PoolSize = workers + 10
	opts.MinIdleConns = 2
	// BRPOP blocks up to 5s; the read timeout must outlast it.
	opts.ReadTimeout = 10 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
