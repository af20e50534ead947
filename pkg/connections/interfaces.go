package dbconnections

import (
	"context"
	"io"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

type RegistryDBConnection interface {
	Collection(collectionName string) *mongo.Collection
}

type BlobStorageConnection interface {
	GetObject(ctx context.Context, objectName string) (io.ReadCloser, error)
	PutObject(ctx context.Context, objectName string, objectSize int64, mimeType string, reader io.Reader) error
	ObjectExists(ctx context.Context, objectName string) (exists bool, err error)
}

type VariantCacheConnection interface {
	Client() redis.UniversalClient
	Close() error
}
