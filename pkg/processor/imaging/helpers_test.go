package imagingprocessor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	xwebp "golang.org/x/image/webp"
)

// testImage is a dark gradient with one bright square, so saliency has
// something to find.
func testImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 64 / width),
				G: uint8(y * 64 / height),
				B: 40,
				A: 255,
			})
		}
	}

	square := width / 8
	for y := height/2 - square/2; y < height/2+square/2; y++ {
		for x := width - 2*square; x < width-square; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 250, G: 220, B: 40, A: 255})
		}
	}

	return img
}

func encodeTestJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encoding test jpeg: %v", err)
	}

	return buf.Bytes()
}

func encodeTestPNG(t *testing.T, img image.Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}

	return buf.Bytes()
}

// withExifOrientation inserts an APP1 segment carrying only the orientation
// tag right after the JPEG start-of-image marker.
func withExifOrientation(jpegData []byte, orientation byte) []byte {
	app1 := []byte{
		0xFF, 0xE1, 0x00, 0x22,
		'E', 'x', 'i', 'f', 0x00, 0x00,
		'M', 'M', 0x00, 0x2A, 0x00, 0x00, 0x00, 0x08,
		0x00, 0x01,
		0x01, 0x12, 0x00, 0x03, 0x00, 0x00, 0x00, 0x01, 0x00, orientation, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}

	out := make([]byte, 0, len(jpegData)+len(app1))
	out = append(out, jpegData[:2]...)
	out = append(out, app1...)
	out = append(out, jpegData[2:]...)
	return out
}

func webpSize(t *testing.T, data []byte) (int, int) {
	t.Helper()

	config, err := xwebp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding webp config: %v", err)
	}

	return config.Width, config.Height
}

func jpegSize(t *testing.T, data []byte) (int, int) {
	t.Helper()

	config, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding jpeg config: %v", err)
	}

	return config.Width, config.Height
}
