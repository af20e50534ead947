package cacherepositories

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	dbconnections "github.com/thebartekbanach/canvas/pkg/connections"
	"github.com/thebartekbanach/canvas/pkg/transform"
)

type variantStore struct {
	conn dbconnections.VariantCacheConnection
}

var _ VariantStore = (*variantStore)(nil)

func NewVariantStore(conn dbconnections.VariantCacheConnection) VariantStore {
	return &variantStore{conn}
}

func (s *variantStore) Exists(ctx context.Context, key transform.VariantKey) (bool, error) {
	count, err := s.conn.Client().Exists(ctx, key.String()).Result()
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *variantStore) Get(ctx context.Context, key transform.VariantKey) ([]byte, error) {
	data, err := s.conn.Client().Get(ctx, key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrVariantNotFound
	}
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (s *variantStore) Set(ctx context.Context, key transform.VariantKey, data []byte) error {
	return s.conn.Client().Set(ctx, key.String(), data, 0).Err()
}

var (
	ErrVariantNotFound = errors.New("variant not found")
)
