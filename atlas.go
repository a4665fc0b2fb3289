package autotile

import (
	"fmt"
	"strconv"
	"strings"
)

// Layout selects the axis convention of the generated atlas grid.
type Layout int

const (
	// LayoutVariantsY places one row per mask (47 rows) with variants
	// along the columns. This is the default.
	LayoutVariantsY Layout = iota
	// LayoutVariantsX is the transposed convention: one column per mask
	// with variants along the rows.
	LayoutVariantsX
)

// String returns the layout's flag spelling.
func (l Layout) String() string {
	if l == LayoutVariantsX {
		return "variants_x"
	}
	return "variants_y"
}

// ParseLayout maps a flag spelling to its Layout.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "variants_y":
		return LayoutVariantsY, nil
	case "variants_x":
		return LayoutVariantsX, nil
	}
	return 0, fmt.Errorf("autotile: unknown layout %q (want variants_y or variants_x)", s)
}

// Dims returns the atlas grid size in cells for the given layout.
func (vs *VariantSet) Dims(l Layout) (cols, rows int) {
	if l == LayoutVariantsX {
		return len(vs.masks), vs.maxVariants
	}
	return vs.maxVariants, len(vs.masks)
}

// cell returns the grid cell of one variant under the given layout.
func (vs *VariantSet) cell(l Layout, maskIdx, variantIdx int) (col, row int) {
	if l == LayoutVariantsX {
		return maskIdx, variantIdx
	}
	return variantIdx, maskIdx
}

// Image lays the full variant set out on a transparent canvas under the
// given layout convention. Masks with fewer variants than the grid's
// variant dimension simply leave their trailing cells empty.
func (vs *VariantSet) Image(l Layout) *Pixmap {
	cols, rows := vs.Dims(l)
	ts := vs.tileSize
	out := NewPixmap(cols*ts, rows*ts)

	for mi, m := range vs.masks {
		for vi, v := range vs.variants[m] {
			col, row := vs.cell(l, mi, vi)
			out.Paste(v.Image, col*ts, row*ts)
		}
	}
	return out
}

// Mapping emits the atlas index as a RON document: tile size, grid
// dimensions, and per mask a neighbor description plus one
// (index, col, row, weight) tuple per variant. Together with Reduce,
// which a consumer can re-derive independently, the document losslessly
// locates every generated tile and its draw probability under either
// layout convention.
//
// Output is byte-stable for identical inputs: masks appear in ascending
// order and variants in draw-index order.
func (vs *VariantSet) Mapping(l Layout) string {
	cols, rows := vs.Dims(l)

	var b strings.Builder
	b.WriteString("(\n")
	fmt.Fprintf(&b, "    tile_size: %d,\n", vs.tileSize)
	fmt.Fprintf(&b, "    atlas_columns: %d,\n", cols)
	fmt.Fprintf(&b, "    atlas_rows: %d,\n", rows)
	b.WriteString("    tiles: {\n")

	for mi, m := range vs.masks {
		fmt.Fprintf(&b, "        %d: (\n", m)
		fmt.Fprintf(&b, "            description: %q,\n", m.Describe())
		b.WriteString("            variants: [\n")

		for vi, v := range vs.variants[m] {
			col, row := vs.cell(l, mi, vi)
			fmt.Fprintf(&b, "                (index: %d, col: %d, row: %d, weight: %s),\n",
				vi, col, row, strconv.FormatFloat(v.Weight, 'g', -1, 64))
		}

		b.WriteString("            ],\n")
		b.WriteString("        ),\n")
	}

	b.WriteString("    },\n")
	b.WriteString(")\n")
	return b.String()
}
