package autotile

// Quadrant names one quarter of a tile.
type Quadrant int

const (
	// QuadTL is the top-left quadrant.
	QuadTL Quadrant = iota
	// QuadTR is the top-right quadrant.
	QuadTR
	// QuadBL is the bottom-left quadrant.
	QuadBL
	// QuadBR is the bottom-right quadrant.
	QuadBR
)

// quadrants lists all four quadrants in composition order.
var quadrants = [4]Quadrant{QuadTL, QuadTR, QuadBL, QuadBR}

// String returns the quadrant's short name.
func (q Quadrant) String() string {
	switch q {
	case QuadTL:
		return "TL"
	case QuadTR:
		return "TR"
	case QuadBL:
		return "BL"
	case QuadBR:
		return "BR"
	}
	return "?"
}

// top reports whether the quadrant is in the top half of the tile.
func (q Quadrant) top() bool { return q == QuadTL || q == QuadTR }

// left reports whether the quadrant is in the left half of the tile.
func (q Quadrant) left() bool { return q == QuadTL || q == QuadBL }

// offset returns the quadrant's pixel offset within a tile whose
// quadrants are half x half pixels.
func (q Quadrant) offset(half int) (x, y int) {
	if !q.left() {
		x = half
	}
	if !q.top() {
		y = half
	}
	return x, y
}

// quadrantAt returns the quadrant at the given half of each axis.
func quadrantAt(top, left bool) Quadrant {
	switch {
	case top && left:
		return QuadTL
	case top && !left:
		return QuadTR
	case !top && left:
		return QuadBL
	default:
		return QuadBR
	}
}

// quadrantRule fixes, for one output quadrant, the neighbor bits it
// inspects and the roles that can supply its pixels. This is pure data;
// the four rules together encode the whole per-quadrant resolution
// scheme.
type quadrantRule struct {
	vertical   Mask // N for top quadrants, S for bottom
	horizontal Mask // W for left quadrants, E for right
	diagonal   Mask // diagonal between the two cardinals

	corner Role // both cardinals absent
	edgeV  Role // only the vertical cardinal present
	edgeH  Role // only the horizontal cardinal present
	inner  Role // both cardinals present, diagonal absent
}

var quadrantRules = [4]quadrantRule{
	QuadTL: {N, W, NW, RoleOuterTL, RoleOuterLeft, RoleOuterTop, RoleInnerD},
	QuadTR: {N, E, NE, RoleOuterTR, RoleOuterRight, RoleOuterTop, RoleInnerC},
	QuadBL: {S, W, SW, RoleOuterBL, RoleOuterLeft, RoleOuterBottom, RoleInnerB},
	QuadBR: {S, E, SE, RoleOuterBR, RoleOuterRight, RoleOuterBottom, RoleInnerA},
}

// resolveQuadrant decides which role supplies the pixels for one output
// quadrant of the given mask, and whether that role's quadrant must be
// composited over the center role (true only for the concave inner-notch
// case, where the notch's transparency lets the center texture show
// through).
func resolveQuadrant(q Quadrant, m Mask) (role Role, needsCenter bool) {
	rule := quadrantRules[q]
	hasV := m&rule.vertical != 0
	hasH := m&rule.horizontal != 0
	hasDiag := m&rule.diagonal != 0

	switch {
	case !hasV && !hasH:
		return rule.corner, false
	case hasV && !hasH:
		return rule.edgeV, false
	case !hasV && hasH:
		return rule.edgeH, false
	case !hasDiag:
		return rule.inner, true
	default:
		return RoleCenter, false
	}
}

// sourceQuadrant picks which quadrant of the source tile to sample for
// output quadrant q. Source tiles are painted with the filled neighbors
// in canonical orientation; when a cardinal is absent the painted content
// for the exposed side sits on the opposite half of the source, so the
// sampled quadrant is mirrored across that axis.
func sourceQuadrant(q Quadrant, hasV, hasH bool) Quadrant {
	top, left := q.top(), q.left()
	if !hasV {
		top = !top
	}
	if !hasH {
		left = !left
	}
	return quadrantAt(top, left)
}

// cropQuadrant extracts one quadrant of a tile-sized pixmap.
func cropQuadrant(tile *Pixmap, q Quadrant) *Pixmap {
	half := tile.Width() / 2
	x, y := q.offset(half)
	return tile.Crop(x, y, half, half)
}
