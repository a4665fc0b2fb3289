package autotile

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular pixel buffer in non-premultiplied RGBA
// format, 4 bytes per pixel. All composition in this package works on
// Pixmaps; the image.Image interface is implemented for interop with the
// standard library codecs.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new fully transparent pixmap with the given
// dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (non-premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates
// are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel. Out-of-bounds coordinates
// return transparent black.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Fill sets every pixel to the given color.
func (p *Pixmap) Fill(c color.NRGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// Crop returns a copy of the w x h region whose top-left corner is at
// (x, y). The region must lie fully inside the pixmap.
func (p *Pixmap) Crop(x, y, w, h int) *Pixmap {
	out := NewPixmap(w, h)
	for row := 0; row < h; row++ {
		si := ((y+row)*p.width + x) * 4
		di := row * w * 4
		copy(out.data[di:di+w*4], p.data[si:si+w*4])
	}
	return out
}

// Paste copies src into p with src's top-left corner at (x, y),
// replacing the destination pixels. Rows outside p are clipped.
func (p *Pixmap) Paste(src *Pixmap, x, y int) {
	for row := 0; row < src.height; row++ {
		dy := y + row
		if dy < 0 || dy >= p.height {
			continue
		}
		for col := 0; col < src.width; col++ {
			dx := x + col
			if dx < 0 || dx >= p.width {
				continue
			}
			si := (row*src.width + col) * 4
			di := (dy*p.width + dx) * 4
			copy(p.data[di:di+4], src.data[si:si+4])
		}
	}
}

// CompositeOver alpha-composites src over p in place (Porter-Duff
// "over", src on top). Both pixmaps must have identical dimensions.
func (p *Pixmap) CompositeOver(src *Pixmap) {
	for i := 0; i < len(p.data); i += 4 {
		sr, sg, sb, sa := src.data[i], src.data[i+1], src.data[i+2], src.data[i+3]
		dr, dg, db, da := p.data[i], p.data[i+1], p.data[i+2], p.data[i+3]

		if sa == 255 || da == 0 {
			p.data[i], p.data[i+1], p.data[i+2], p.data[i+3] = sr, sg, sb, sa
			continue
		}
		if sa == 0 {
			continue
		}

		// Straight-alpha over: outA = sa + da*(1-sa),
		// outC = (sc*sa + dc*da*(1-sa)) / outA. Scaled by 255 to stay
		// in integer math, rounded half up.
		srcA := uint32(sa)
		dstA := uint32(da) * (255 - srcA) / 255
		outA := srcA + dstA
		p.data[i+0] = uint8((uint32(sr)*srcA + uint32(dr)*dstA + outA/2) / outA)
		p.data[i+1] = uint8((uint32(sg)*srcA + uint32(dg)*dstA + outA/2) / outA)
		p.data[i+2] = uint8((uint32(sb)*srcA + uint32(db)*dstA + outA/2) / outA)
		p.data[i+3] = uint8(outA)
	}
}

// Equal reports whether two pixmaps have identical dimensions and pixel
// data.
func (p *Pixmap) Equal(other *Pixmap) bool {
	return p.width == other.width &&
		p.height == other.height &&
		bytes.Equal(p.data, other.data)
}

// FullyTransparent reports whether every pixel has zero alpha.
func (p *Pixmap) FullyTransparent() bool {
	for i := 3; i < len(p.data); i += 4 {
		if p.data[i] != 0 {
			return false
		}
	}
	return true
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image, converting the pixel format
// if necessary.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < height; y++ {
			si := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pm.data[y*width*4:(y+1)*width*4], src.Pix[si:si+width*4])
		}
		return pm
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			pm.SetPixel(x, y, c.(color.NRGBA))
		}
	}
	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
