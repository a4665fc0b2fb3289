package autotile

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Preview rendering constants.
const (
	previewScale  = 4
	previewCols   = 8
	previewMargin = 8
	previewPadX   = 4
	previewLabelH = 18
)

var (
	previewBackground = color.NRGBA{R: 32, G: 32, B: 40, A: 255}
	previewOutline    = color.NRGBA{R: 80, G: 80, B: 100, A: 180}
	previewLabel      = color.NRGBA{R: 200, G: 200, B: 220, A: 255}
)

// RenderPreview renders an enlarged contact sheet of the first variant
// of every configuration, eight per row, each cell labeled with its mask
// value and variant count (e.g. "85 (2v)"). Intended for visually
// checking a generated set, not for consumption by an engine.
func RenderPreview(vs *VariantSet) *Pixmap {
	ts := vs.TileSize()
	masks := vs.Masks()
	rows := (len(masks) + previewCols - 1) / previewCols

	scaled := ts * previewScale
	cellW := scaled + previewPadX
	cellH := scaled + previewLabelH

	out := image.NewNRGBA(image.Rect(0, 0,
		previewCols*cellW+previewMargin*2,
		rows*cellH+previewMargin*2))
	fillNRGBA(out, previewBackground)

	drawer := font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(previewLabel),
		Face: basicfont.Face7x13,
	}

	for idx, m := range masks {
		variants := vs.Variants(m)
		if len(variants) == 0 {
			continue
		}

		x := previewMargin + (idx%previewCols)*cellW + 2
		y := previewMargin + (idx/previewCols)*cellH + 2

		dst := image.Rect(x, y, x+scaled, y+scaled)
		draw.NearestNeighbor.Scale(out, dst, variants[0].Image.ToImage(),
			variants[0].Image.Bounds(), draw.Over, nil)

		outlineRect(out, x-1, y-1, scaled+2, scaled+2, previewOutline)

		drawer.Dot = fixed.P(x+1, y+scaled+basicfont.Face7x13.Ascent)
		drawer.DrawString(fmt.Sprintf("%d (%dv)", m, len(variants)))
	}

	return FromImage(out)
}

// fillNRGBA floods an NRGBA image with one color.
func fillNRGBA(img *image.NRGBA, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// outlineRect draws a one-pixel rectangle outline.
func outlineRect(img *image.NRGBA, x, y, w, h int, c color.NRGBA) {
	for i := 0; i < w; i++ {
		img.SetNRGBA(x+i, y, c)
		img.SetNRGBA(x+i, y+h-1, c)
	}
	for i := 0; i < h; i++ {
		img.SetNRGBA(x, y+i, c)
		img.SetNRGBA(x+w-1, y+i, c)
	}
}
