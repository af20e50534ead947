package cacherepositories

import (
	"context"

	"github.com/thebartekbanach/canvas/pkg/transform"
)

// VariantStore keeps encoded renditions under their variant key. Entries are
// stored verbatim and never expire.
type VariantStore interface {
	Exists(ctx context.Context, key transform.VariantKey) (bool, error)
	Get(ctx context.Context, key transform.VariantKey) ([]byte, error)
	Set(ctx context.Context, key transform.VariantKey, data []byte) error
}
