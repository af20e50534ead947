package imagingprocessor

import (
	"image"
	"testing"

	"github.com/franela/goblin"
)

func TestGeometry(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("coverFitFactor", func() {
		g.It("Should let the larger required ratio govern", func() {
			g.Assert(coverFitFactor(2000, 1000, 500, 500)).Equal(0.5)
			g.Assert(coverFitFactor(1000, 2000, 500, 500)).Equal(0.5)
		})

		g.It("Should never upscale", func() {
			g.Assert(coverFitFactor(300, 200, 1024, 1024)).Equal(1.0)
			g.Assert(coverFitFactor(2000, 100, 500, 500)).Equal(1.0)
		})

		g.It("Should scale to the exact box when aspect ratios match", func() {
			g.Assert(coverFitFactor(2000, 1000, 1000, 500)).Equal(0.5)
		})
	})

	g.Describe("scaledSize", func() {
		g.It("Should round and keep at least one pixel", func() {
			width, height := scaledSize(2000, 1000, 0.5)
			g.Assert([]int{width, height}).Equal([]int{1000, 500})

			width, height = scaledSize(3, 1000, 0.1)
			g.Assert([]int{width, height}).Equal([]int{1, 100})
		})
	})

	g.Describe("clampedCropSize", func() {
		g.It("Should never exceed the image size", func() {
			width, height := clampedCropSize(1000, 500, 500, 500)
			g.Assert([]int{width, height}).Equal([]int{500, 500})

			width, height = clampedCropSize(300, 200, 1024, 1024)
			g.Assert([]int{width, height}).Equal([]int{300, 200})

			width, height = clampedCropSize(2000, 100, 500, 500)
			g.Assert([]int{width, height}).Equal([]int{500, 100})
		})
	})

	g.Describe("placeCropBox", func() {
		bounds := image.Rect(0, 0, 1000, 500)

		g.It("Should centre the box on the salient region", func() {
			box := placeCropBox(bounds, image.Rect(400, 0, 900, 500), 200, 200)
			g.Assert(box).Equal(image.Rect(550, 150, 750, 350))
		})

		g.It("Should keep the box inside the image", func() {
			box := placeCropBox(bounds, image.Rect(900, 400, 1000, 500), 500, 500)
			g.Assert(box).Equal(image.Rect(500, 0, 1000, 500))

			box = placeCropBox(bounds, image.Rect(0, 0, 10, 10), 300, 300)
			g.Assert(box).Equal(image.Rect(0, 0, 300, 300))
		})

		g.It("Should shrink a box larger than the image", func() {
			box := placeCropBox(bounds, bounds, 2000, 2000)
			g.Assert(box).Equal(bounds)
		})
	})
}
