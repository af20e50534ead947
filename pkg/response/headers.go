package response

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/thebartekbanach/canvas/pkg/transform"
)

// CacheLifetime is sent for every rendition, whether it came from the cache
// or was just computed.
const CacheLifetime = 604800

type Headers struct {
	ContentType        string
	ContentDisposition string
	ETag               string
	CacheControl       string
}

func Build(hash string, spec transform.Spec, key transform.VariantKey) Headers {
	filename := spec.Filename
	if filename == "" {
		filename = hash + "." + spec.Format.String()
	}

	return Headers{
		ContentType:        spec.Format.MimeType(),
		ContentDisposition: fmt.Sprintf(`inline; filename="%s"`, quoteEscaper.Replace(filename)),
		ETag:               key.String(),
		CacheControl:       fmt.Sprintf("max-age=%d", CacheLifetime),
	}
}

func (h Headers) Apply(dst http.Header) {
	dst.Set("Content-Type", h.ContentType)
	dst.Set("Content-Disposition", h.ContentDisposition)
	dst.Set("ETag", h.ETag)
	dst.Set("Cache-Control", h.CacheControl)
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", "", "\n", "")
