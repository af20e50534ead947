package imagingprocessor

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// overlayColor is the fill of rendered overlay text, sRGB.
var overlayColor = color.NRGBA{R: 170, G: 170, B: 170, A: 255}

const overlayDPI = 72

type textRenderer struct {
	font *opentype.Font
	size float64
}

func newTextRenderer(size float64) (*textRenderer, error) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	return &textRenderer{parsed, size}, nil
}

// render draws text into a bitmap whose colour is overlayColor and whose
// alpha channel is the glyph shape. A face is created per call because faces
// keep per-use caches and must not be shared between goroutines.
func (r *textRenderer) render(text string) (*image.NRGBA, error) {
	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    r.size,
		DPI:     overlayDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	defer face.Close()

	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	drawer := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	drawer.DrawString(text)

	return colorizeMask(mask, overlayColor), nil
}

func colorizeMask(mask *image.Alpha, fill color.NRGBA) *image.NRGBA {
	bounds := mask.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			alpha := mask.AlphaAt(bounds.Min.X+x, bounds.Min.Y+y).A
			i := out.PixOffset(x, y)
			out.Pix[i+0] = fill.R
			out.Pix[i+1] = fill.G
			out.Pix[i+2] = fill.B
			out.Pix[i+3] = alpha
		}
	}

	return out
}
