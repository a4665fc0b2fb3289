package autotile

// testPattern is a fixed 16x16 map exercising every common adjacency
// shape: solid blocks, single-cell holes, thin lines, touching corners
// and an isolated cell. 1 is filled.
var testPattern = [16][16]uint8{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 0, 0, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 0},
	{0, 1, 1, 1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
	{0, 1, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
	{0, 1, 1, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0},
	{0, 1, 1, 1, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0},
	{0, 1, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 1, 0, 1, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

// MaskAt computes the canonical adjacency mask for the cell at (x, y),
// where filled reports whether a given cell is filled. Out-of-range
// coordinates passed to filled must report false.
func MaskAt(filled func(x, y int) bool, x, y int) Mask {
	var raw Mask
	if filled(x, y-1) {
		raw |= N
	}
	if filled(x+1, y-1) {
		raw |= NE
	}
	if filled(x+1, y) {
		raw |= E
	}
	if filled(x+1, y+1) {
		raw |= SE
	}
	if filled(x, y+1) {
		raw |= S
	}
	if filled(x-1, y+1) {
		raw |= SW
	}
	if filled(x-1, y) {
		raw |= W
	}
	if filled(x-1, y-1) {
		raw |= NW
	}
	return Reduce(raw)
}

// RenderTestMap renders the built-in test pattern with the variant set,
// picking each cell's variant with the deterministic position hash. The
// result exercises the whole set the way a consuming engine would and is
// meant for eyeballing seams and variant distribution.
func RenderTestMap(vs *VariantSet) *Pixmap {
	ts := vs.TileSize()
	h, w := len(testPattern), len(testPattern[0])
	out := NewPixmap(w*ts, h*ts)

	filled := func(x, y int) bool {
		return y >= 0 && y < h && x >= 0 && x < w && testPattern[y][x] != 0
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !filled(x, y) {
				continue
			}
			v, ok := PickVariant(vs.Variants(MaskAt(filled, x, y)), x, y)
			if !ok {
				continue
			}
			out.Paste(v.Image, x*ts, y*ts)
		}
	}
	return out
}
