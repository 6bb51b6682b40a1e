package redis_client

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Address  string
	Password string
	Database int
}

// Connect opens a client and checks the server answers a ping
func Connect(ctx context.Context, config Config) (*redis.Client, error) {
	options := &redis.Options{
		Addr: config.Address,
		DB:   config.Database,
	}

	if config.Password != "" {
		options.Password = config.Password
	}

	client := redis.NewClient(options)

	statusCmd := client.Ping(ctx)
	if err := statusCmd.Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
