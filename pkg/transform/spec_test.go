package transform

import (
	"net/url"
	"testing"

	"github.com/franela/goblin"
)

func mustParseQuery(g *goblin.G, rawQuery string) url.Values {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		g.Fail(err)
	}

	return values
}

func TestSpecParsing(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("Parse", func() {
		g.It("Should return defaults for empty params", func() {
			spec := Parse(url.Values{})

			g.Assert(spec).Equal(Spec{
				Width:   1024,
				Height:  1024,
				Quality: 80,
				Format:  FormatWebp,
			})
		})

		g.It("Should read all recognized params", func() {
			spec := Parse(mustParseQuery(g, "width=500&height=300&quality=65&format=jpeg&watermark&overlay=hello&filename=cat.jpg"))

			g.Assert(spec).Equal(Spec{
				Width:     500,
				Height:    300,
				Quality:   65,
				Format:    FormatJpeg,
				Watermark: true,
				Overlay:   "hello",
				Filename:  "cat.jpg",
			})
		})

		g.It("Should treat jpg as jpeg", func() {
			g.Assert(Parse(mustParseQuery(g, "format=jpg")).Format).Equal(FormatJpeg)
		})

		g.It("Should fall back to webp for unknown formats", func() {
			g.Assert(Parse(mustParseQuery(g, "format=bogus")).Format).Equal(FormatWebp)
		})

		g.It("Should ignore non numeric dimensions", func() {
			spec := Parse(mustParseQuery(g, "width=abc&height=-20"))

			g.Assert(spec.Width).Equal(DefaultWidth)
			g.Assert(spec.Height).Equal(DefaultHeight)
		})

		g.It("Should ignore zero and out of range dimensions", func() {
			spec := Parse(mustParseQuery(g, "width=0&height=70000"))

			g.Assert(spec.Width).Equal(DefaultWidth)
			g.Assert(spec.Height).Equal(DefaultHeight)
		})

		g.It("Should ignore quality that does not fit a byte", func() {
			g.Assert(Parse(mustParseQuery(g, "quality=300")).Quality).Equal(DefaultQuality)
			g.Assert(Parse(mustParseQuery(g, "quality=high")).Quality).Equal(DefaultQuality)
		})

		g.It("Should pass quality above 100 through unchanged", func() {
			g.Assert(Parse(mustParseQuery(g, "quality=120")).Quality).Equal(120)
		})

		g.It("Should parse the watermark flag", func() {
			g.Assert(Parse(mustParseQuery(g, "watermark")).Watermark).IsTrue()
			g.Assert(Parse(mustParseQuery(g, "watermark=true")).Watermark).IsTrue()
			g.Assert(Parse(mustParseQuery(g, "watermark=1")).Watermark).IsTrue()
			g.Assert(Parse(mustParseQuery(g, "watermark=false")).Watermark).IsFalse()
			g.Assert(Parse(mustParseQuery(g, "watermark=maybe")).Watermark).IsFalse()
		})

		g.It("Should treat an empty overlay as no overlay", func() {
			g.Assert(Parse(mustParseQuery(g, "overlay=")).HasOverlay()).IsFalse()
		})
	})

	g.Describe("Format", func() {
		g.It("Should map formats to mime types", func() {
			g.Assert(FormatWebp.MimeType()).Equal("image/webp")
			g.Assert(FormatJpeg.MimeType()).Equal("image/jpeg")
		})
	})
}
