package transform

import (
	"net/url"
	"strconv"
	"strings"
)

type Format int

const (
	FormatWebp Format = iota
	FormatJpeg
)

func (f Format) String() string {
	switch f {
	case FormatJpeg:
		return "jpeg"
	case FormatWebp:
		return "webp"
	default:
		return "webp"
	}
}

func (f Format) MimeType() string {
	return "image/" + f.String()
}

const (
	DefaultWidth   = 1024
	DefaultHeight  = 1024
	DefaultQuality = 80
	DefaultFormat  = FormatWebp
)

// Spec is the canonical, fully defaulted set of transform parameters.
// Everything except Filename takes part in the variant key.
type Spec struct {
	Width     int
	Height    int
	Quality   int
	Format    Format
	Watermark bool
	Overlay   string
	Filename  string
}

func DefaultSpec() Spec {
	return Spec{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Quality: DefaultQuality,
		Format:  DefaultFormat,
	}
}

func (s Spec) HasOverlay() bool {
	return s.Overlay != ""
}

// Parse never fails: every value that is absent or cannot be parsed keeps
// its default.
func Parse(params url.Values) Spec {
	spec := DefaultSpec()

	if width, ok := parseDimension(params.Get("width")); ok {
		spec.Width = width
	}

	if height, ok := parseDimension(params.Get("height")); ok {
		spec.Height = height
	}

	if quality, err := strconv.ParseUint(params.Get("quality"), 10, 8); err == nil {
		spec.Quality = int(quality)
	}

	spec.Format = parseFormat(params.Get("format"))
	spec.Watermark = parseWatermark(params)
	spec.Overlay = params.Get("overlay")
	spec.Filename = params.Get("filename")

	return spec
}

func parseDimension(raw string) (int, bool) {
	value, err := strconv.ParseUint(raw, 10, 16)
	if err != nil || value == 0 {
		return 0, false
	}

	return int(value), true
}

func parseFormat(raw string) Format {
	switch strings.ToLower(raw) {
	case "jpeg", "jpg":
		return FormatJpeg
	case "webp":
		return FormatWebp
	default:
		return DefaultFormat
	}
}

func parseWatermark(params url.Values) bool {
	values, present := params["watermark"]
	if !present {
		return false
	}

	if len(values) == 0 || values[0] == "" {
		return true
	}

	enabled, err := strconv.ParseBool(values[0])
	if err != nil {
		return false
	}

	return enabled
}
