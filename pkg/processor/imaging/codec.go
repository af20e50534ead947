package imagingprocessor

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	"github.com/thebartekbanach/canvas/pkg/transform"

	// Sources may be uploaded as webp.
	_ "golang.org/x/image/webp"
)

// decode applies the EXIF orientation so that pixels match the intended
// visual orientation. No other metadata survives decoding.
func decode(data []byte) (image.Image, error) {
	return imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
}

// encode writes pixels only. Neither writer is handed EXIF or colour
// profiles, so renditions never carry metadata.
func encode(img image.Image, format transform.Format, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case transform.FormatWebp:
		options, err := encoder.NewLossyEncoderOptions(encoder.PresetPhoto, float32(quality))
		if err != nil {
			return nil, err
		}

		if err := webp.Encode(&buf, toNRGBA(img), options); err != nil {
			return nil, err
		}
	case transform.FormatJpeg:
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}

	return buf.Bytes(), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == (image.Point{}) {
		return nrgba
	}

	return imaging.Clone(img)
}

// LoadWatermark reads the watermark file once and keeps it as PNG bytes.
// Every request decodes its own copy from these bytes.
func LoadWatermark(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	img, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding watermark %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encoding watermark %s: %w", path, err)
	}

	return buf.Bytes(), nil
}
