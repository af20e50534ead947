package images

import (
	"context"
	"net/http"
	"net/url"

	"github.com/thebartekbanach/canvas/pkg/registry"
)

type RenditionStatus int

const (
	RenditionOK RenditionStatus = iota
	RenditionNotModified
)

type Rendition struct {
	Status  RenditionStatus
	Body    []byte
	Headers http.Header
}

type ImageService interface {
	// Upload stores data and returns its content hash. Uploading the same
	// bytes twice returns the same hash.
	Upload(ctx context.Context, data []byte) (string, error)
	// Render returns the variant of hash described by params. conditional
	// signals that the client sent If-None-Match.
	Render(ctx context.Context, hash string, params url.Values, conditional bool) (Rendition, error)
	Describe(ctx context.Context, hash string) (registry.SourceImageModel, error)
}
