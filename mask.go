package autotile

import (
	"fmt"
	"sort"
	"strings"
)

// Mask is an 8-neighbor adjacency bitmask. Each bit records whether the
// neighbor in that compass direction is filled.
type Mask uint8

// Neighbor direction bits.
const (
	N  Mask = 1 << iota // north
	NE                  // north-east
	E                   // east
	SE                  // south-east
	S                   // south
	SW                  // south-west
	W                   // west
	NW                  // north-west
)

// CrossMask is the all-cardinals/no-diagonals configuration (N+E+S+W).
// It is the one canonical mask with a dedicated whole-tile composition
// rule, see Build.
const CrossMask = N | E | S | W

// CanonicalCount is the number of distinct masks Reduce can produce.
// The diagonal reduction rule is a closed combinatorial identity over the
// 8-neighbor Moore configuration space, so this count never varies.
const CanonicalCount = 47

// directionNames pairs each bit with its compass name, in bit order.
var directionNames = [8]struct {
	bit  Mask
	name string
}{
	{N, "N"}, {NE, "NE"}, {E, "E"}, {SE, "SE"},
	{S, "S"}, {SW, "SW"}, {W, "W"}, {NW, "NW"},
}

// Reduce canonicalizes a raw adjacency mask by clearing every diagonal
// bit whose two adjacent cardinal bits are not both set. A diagonal
// neighbor only affects a tile's appearance when it forms a filled 2x2
// block with its cardinals, so masks differing only in such diagonals
// render identically.
//
// Reduce is total and idempotent.
func Reduce(raw Mask) Mask {
	reduced := raw
	if raw&N == 0 || raw&E == 0 {
		reduced &^= NE
	}
	if raw&S == 0 || raw&E == 0 {
		reduced &^= SE
	}
	if raw&S == 0 || raw&W == 0 {
		reduced &^= SW
	}
	if raw&N == 0 || raw&W == 0 {
		reduced &^= NW
	}
	return reduced
}

// Canonical returns the sorted set of distinct masks produced by applying
// Reduce to all 256 raw values. The result is data-independent and always
// has exactly CanonicalCount elements; any other count is reported as an
// internal consistency error.
func Canonical() ([]Mask, error) {
	seen := make(map[Mask]struct{}, CanonicalCount)
	for raw := 0; raw < 256; raw++ {
		seen[Reduce(Mask(raw))] = struct{}{}
	}

	masks := make([]Mask, 0, len(seen))
	for m := range seen {
		masks = append(masks, m)
	}
	sort.Slice(masks, func(i, j int) bool { return masks[i] < masks[j] })

	if len(masks) != CanonicalCount {
		return nil, fmt.Errorf("%w: reduction yielded %d masks, want %d",
			ErrInternal, len(masks), CanonicalCount)
	}
	return masks, nil
}

// Describe returns a human-readable listing of the mask's set bits, for
// example "N+E+SE+S". The zero mask is described as "isolated".
func (m Mask) Describe() string {
	if m == 0 {
		return "isolated"
	}
	names := make([]string, 0, 8)
	for _, d := range directionNames {
		if m&d.bit != 0 {
			names = append(names, d.name)
		}
	}
	return strings.Join(names, "+")
}
