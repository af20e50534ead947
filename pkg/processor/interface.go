package processor

import (
	"context"

	"github.com/thebartekbanach/canvas/pkg/transform"
)

// ProcessingService turns source bytes into an encoded rendition. The result
// depends only on the source and the spec.
type ProcessingService interface {
	Process(ctx context.Context, source []byte, spec transform.Spec) ([]byte, error)
}
