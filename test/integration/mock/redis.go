package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client
var redisServer *miniredis.Miniredis
var redisDown bool

// NewRedis starts a shared miniredis server once and returns its client.
func NewRedis() *redis.Client {
	redisConnOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisServer = server
		redisConn = redis.NewClient(&redis.Options{
			Addr: server.Addr(),
		})
	})
	return redisConn
}

// StopRedis takes the server down so callers see connection errors.
func StopRedis() {
	if redisServer != nil && !redisDown {
		redisServer.Close()
		redisDown = true
	}
}

// ClearRedis brings a stopped server back on its old address and drops all keys.
func ClearRedis(client *redis.Client) error {
	if redisDown {
		if err := redisServer.Restart(); err != nil {
			return err
		}
		redisDown = false
	}
	return client.FlushAll(context.TODO()).Err()
}

// RedisKeyCount returns the number of keys currently stored.
func RedisKeyCount() int {
	if redisServer == nil || redisDown {
		return 0
	}
	return len(redisServer.Keys())
}
