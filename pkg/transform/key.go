package transform

import (
	"strconv"
	"strings"
)

// VariantKey identifies one rendition of one stored image. It is used both
// as the cache key and as the entity tag of the response.
type VariantKey string

const keyDelimiter = "-"

const noOverlay = "none"

func DeriveKey(hash string, spec Spec) VariantKey {
	overlay := noOverlay
	if spec.HasOverlay() {
		overlay = spec.Overlay
	}

	return VariantKey(strings.Join([]string{
		hash,
		strconv.Itoa(spec.Width),
		strconv.Itoa(spec.Height),
		strconv.Itoa(spec.Quality),
		strconv.FormatBool(spec.Watermark),
		spec.Format.String(),
		overlay,
	}, keyDelimiter))
}

func (k VariantKey) String() string {
	return string(k)
}
