package imagingprocessor

import (
	"image"
	"math"
)

// coverFitFactor returns the uniform scale that lets a sw x sh image just
// cover a tw x th box. It never exceeds 1, images are not upscaled.
func coverFitFactor(sw, sh, tw, th int) float64 {
	widthFactor := float64(tw) / float64(sw)
	heightFactor := float64(th) / float64(sh)

	return math.Min(1.0, math.Max(widthFactor, heightFactor))
}

func scaledSize(sw, sh int, factor float64) (int, int) {
	width := int(math.Round(float64(sw) * factor))
	height := int(math.Round(float64(sh) * factor))

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	return width, height
}

// clampedCropSize never lets the crop box exceed the image it is cut from.
func clampedCropSize(width, height, tw, th int) (int, int) {
	return minInt(tw, width), minInt(th, height)
}

// placeCropBox positions a width x height box on the centre of the salient
// region and keeps it inside bounds.
func placeCropBox(bounds, salient image.Rectangle, width, height int) image.Rectangle {
	width = minInt(width, bounds.Dx())
	height = minInt(height, bounds.Dy())

	center := image.Point{
		X: salient.Min.X + salient.Dx()/2,
		Y: salient.Min.Y + salient.Dy()/2,
	}

	x := clampInt(center.X-width/2, bounds.Min.X, bounds.Max.X-width)
	y := clampInt(center.Y-height/2, bounds.Min.Y, bounds.Max.Y-height)

	return image.Rect(x, y, x+width, y+height)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
