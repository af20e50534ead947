package cache

import (
	"context"

	"github.com/thebartekbanach/canvas/pkg/transform"
)

type Status int

const (
	StatusOK Status = iota
	StatusNotModified
)

type VariantRequest struct {
	Hash string
	Spec transform.Spec
	Key  transform.VariantKey
}

type Result struct {
	Status Status
	Body   []byte
	// Cached reports whether Body came from the variant store.
	Cached bool
}

type CacheService interface {
	// Resolve returns the rendition for req. When conditional is set the
	// client already holds a copy and no store is consulted.
	Resolve(ctx context.Context, req VariantRequest, conditional bool) (Result, error)
}

// SourceReader loads original upload bytes by content hash.
type SourceReader interface {
	Read(ctx context.Context, hash string) ([]byte, error)
}
