package imagingprocessor

import (
	"image"

	"github.com/disintegration/imaging"
)

func screen(base, blend float64) float64 {
	return 1 - (1-base)*(1-blend)
}

// screenComposite places overlay over base at the top-left corner using the
// screen blend mode. Both alphas are honoured the way "over" compositing
// does, so fully transparent overlay pixels leave base untouched.
func screenComposite(base, overlay image.Image) *image.NRGBA {
	dst := imaging.Clone(base)
	src := imaging.Clone(overlay)
	area := dst.Bounds().Intersect(src.Bounds())

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			di := dst.PixOffset(x, y)
			si := src.PixOffset(x, y)

			as := float64(src.Pix[si+3]) / 255
			if as == 0 {
				continue
			}

			ab := float64(dst.Pix[di+3]) / 255
			ao := as + ab*(1-as)

			for c := 0; c < 3; c++ {
				cb := float64(dst.Pix[di+c]) / 255
				cs := float64(src.Pix[si+c]) / 255

				co := as*(1-ab)*cs + as*ab*screen(cb, cs) + (1-as)*ab*cb
				dst.Pix[di+c] = toByte(co / ao)
			}
			dst.Pix[di+3] = toByte(ao)
		}
	}

	return dst
}

func toByte(value float64) uint8 {
	scaled := value*255 + 0.5
	if scaled <= 0 {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return uint8(scaled)
}
