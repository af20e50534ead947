package dbconnections

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type VariantCacheConfig struct {
	URL string
	// PoolSize bounds the number of open connections, the server sizes it
	// to the number of pipeline workers.
	PoolSize int
}

type VariantCacheProductionConnection struct {
	client *redis.Client
}

var _ VariantCacheConnection = (*VariantCacheProductionConnection)(nil)

func NewVariantCacheProductionConnection(ctx context.Context, config VariantCacheConfig) (*VariantCacheProductionConnection, error) {
	opts, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, err
	}

	if config.PoolSize > 0 {
		opts.PoolSize = config.PoolSize
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &VariantCacheProductionConnection{client}, nil
}

func (c *VariantCacheProductionConnection) Client() redis.UniversalClient {
	return c.client
}

func (c *VariantCacheProductionConnection) Close() error {
	return c.client.Close()
}
