package dbconnections

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type VariantCacheTestingConnection struct {
	Server *miniredis.Miniredis
	client *redis.Client
}

var _ VariantCacheConnection = (*VariantCacheTestingConnection)(nil)

// NewVariantCacheTestingConnection starts an in-process miniredis server that
// lives until the end of the test.
func NewVariantCacheTestingConnection(t *testing.T) *VariantCacheTestingConnection {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return &VariantCacheTestingConnection{server, client}
}

func (c *VariantCacheTestingConnection) Client() redis.UniversalClient {
	return c.client
}

func (c *VariantCacheTestingConnection) Close() error {
	return c.client.Close()
}
