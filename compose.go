package autotile

import "fmt"

// TileVariant is one generated output tile. Weight is meaningful only
// relative to sibling variants of the same mask; Build rescales siblings
// to sum to 1.
type TileVariant struct {
	Image  *Pixmap
	Weight float64
}

// composeTile assembles the tile for one (mask, draw index) pair from the
// entries the selector picks for the given seed.
//
// The zero mask is a direct copy of the isolated role. CrossMask, when
// both optional disambiguator roles are present, uses a dedicated
// whole-tile rule (see composeCross); without them it falls through to
// the generic per-quadrant path, whose result for that configuration is
// visually symmetric. Every other mask is assembled quadrant by quadrant:
// the resolved role's mirrored source quadrant is cropped out and, for
// concave inner notches, composited over the center role's matching
// quadrant.
//
// The variant weight is the product of the per-quadrant primary entries'
// weights, deliberately not deduplicated across quadrants sharing a role:
// it reflects the compounded rarity of the drawn combination.
func composeTile(t *RoleTable, m Mask, drawIdx, seed int) (TileVariant, error) {
	chosen := pickEntries(t, drawIdx, seed)

	if m == 0 {
		entry, ok := chosen[RoleSingle]
		if !ok {
			return TileVariant{}, fmt.Errorf("%w: no entry for role %s", ErrInternal, RoleSingle)
		}
		return TileVariant{Image: entry.Image.Clone(), Weight: entry.Weight}, nil
	}

	if m == CrossMask {
		if _, okE := chosen[RoleInnerE]; okE {
			if _, okF := chosen[RoleInnerF]; okF {
				return composeCross(chosen, t.TileSize())
			}
		}
	}

	ts := t.TileSize()
	half := ts / 2
	out := NewPixmap(ts, ts)
	weight := 1.0

	for _, q := range quadrants {
		rule := quadrantRules[q]
		hasV := m&rule.vertical != 0
		hasH := m&rule.horizontal != 0

		role, needsCenter := resolveQuadrant(q, m)
		source, ok := chosen[role]
		if !ok {
			return TileVariant{}, fmt.Errorf("%w: quadrant %s of mask %d needs role %s, absent from table",
				ErrInternal, q, m, role)
		}

		srcQ := sourceQuadrant(q, hasV, hasH)
		quad := cropQuadrant(source.Image, srcQ)

		if needsCenter {
			center, ok := chosen[RoleCenter]
			if !ok {
				return TileVariant{}, fmt.Errorf("%w: no entry for role %s", ErrInternal, RoleCenter)
			}
			base := cropQuadrant(center.Image, srcQ)
			base.CompositeOver(quad)
			quad = base
		}

		x, y := q.offset(half)
		out.Paste(quad, x, y)
		weight *= source.Weight
	}

	return TileVariant{Image: out, Weight: weight}, nil
}

// composeCross builds the CrossMask tile (all four cardinals filled, no
// diagonals) from the two optional disambiguator roles: inner_e supplies
// the top-left and bottom-right quadrants, inner_f the top-right and
// bottom-left, each composited over the center role. The generic
// per-quadrant rule cannot express this configuration without producing
// an ambiguous, fourfold-symmetric tile.
//
// The weight is the product of the two disambiguator entries' weights.
func composeCross(chosen map[Role]SourceEntry, ts int) (TileVariant, error) {
	innerE := chosen[RoleInnerE]
	innerF := chosen[RoleInnerF]
	center, ok := chosen[RoleCenter]
	if !ok {
		return TileVariant{}, fmt.Errorf("%w: no entry for role %s", ErrInternal, RoleCenter)
	}

	half := ts / 2
	out := NewPixmap(ts, ts)

	sources := [4]SourceEntry{
		QuadTL: innerE,
		QuadTR: innerF,
		QuadBL: innerF,
		QuadBR: innerE,
	}

	for _, q := range quadrants {
		base := cropQuadrant(center.Image, q)
		base.CompositeOver(cropQuadrant(sources[q].Image, q))
		x, y := q.offset(half)
		out.Paste(base, x, y)
	}

	return TileVariant{Image: out, Weight: innerE.Weight * innerF.Weight}, nil
}

// rolesForMask collects every role that participates in composing the
// given mask against the given table, including the center role when any
// quadrant composites against it.
func rolesForMask(m Mask, t *RoleTable) map[Role]struct{} {
	if m == 0 {
		return map[Role]struct{}{RoleSingle: {}}
	}
	if m == CrossMask && t.Has(RoleInnerE) && t.Has(RoleInnerF) {
		return map[Role]struct{}{RoleInnerE: {}, RoleInnerF: {}, RoleCenter: {}}
	}

	used := make(map[Role]struct{})
	for _, q := range quadrants {
		role, needsCenter := resolveQuadrant(q, m)
		used[role] = struct{}{}
		if needsCenter {
			used[RoleCenter] = struct{}{}
		}
	}
	return used
}
