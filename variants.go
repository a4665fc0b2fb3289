package autotile

import (
	"fmt"
	"log/slog"
	"math"
)

// weightScale fixes the rounding precision of normalized weights.
const weightScale = 1e6

// VariantSet holds every generated tile variant, keyed by canonical
// mask. It is built once per (table, options) pair and then read-only.
type VariantSet struct {
	tileSize    int
	masks       []Mask
	variants    map[Mask][]TileVariant
	maxVariants int
}

// Build drives tile composition across all 47 canonical masks in
// ascending order. For each mask it generates k variants, where k is the
// largest candidate count among the roles that mask actually uses,
// clamped by opts.MaxVariants and floored at 1, then normalizes the k
// weights to sum to 1 (rounded to six decimals).
//
// The table must have been validated; a missing mandatory role surfaces
// as an internal consistency error here, not a data error.
func Build(t *RoleTable, opts Options) (*VariantSet, error) {
	masks, err := Canonical()
	if err != nil {
		return nil, err
	}

	vs := &VariantSet{
		tileSize: t.TileSize(),
		masks:    masks,
		variants: make(map[Mask][]TileVariant, len(masks)),
	}

	for _, m := range masks {
		k := variantCount(m, t, opts.MaxVariants)
		if k > vs.maxVariants {
			vs.maxVariants = k
		}

		variants := make([]TileVariant, 0, k)
		for vi := 0; vi < k; vi++ {
			v, err := composeTile(t, m, vi, opts.Seed)
			if err != nil {
				return nil, fmt.Errorf("compose mask %d variant %d: %w", m, vi, err)
			}
			variants = append(variants, v)
		}

		normalizeWeights(variants)
		vs.variants[m] = variants

		Logger().Debug("generated configuration",
			slog.Int("mask", int(m)),
			slog.String("neighbors", m.Describe()),
			slog.Int("variants", k))
	}

	Logger().Info("variant set built",
		slog.Int("tiles", vs.Len()),
		slog.Int("max_variants", vs.maxVariants),
		slog.Int("seed", opts.Seed))

	return vs, nil
}

// variantCount determines how many variants to generate for one mask.
func variantCount(m Mask, t *RoleTable, limit int) int {
	k := 0
	for role := range rolesForMask(m, t) {
		if n := len(t.Entries(role)); n > k {
			k = n
		}
	}
	if limit > 0 && k > limit {
		k = limit
	}
	if k < 1 {
		k = 1
	}
	return k
}

// normalizeWeights rescales sibling weights to sum to 1, rounded to the
// fixed precision. A zero sum is a degenerate input; the weights are left
// untouched rather than divided.
func normalizeWeights(variants []TileVariant) {
	total := 0.0
	for _, v := range variants {
		total += v.Weight
	}
	if total <= 0 {
		return
	}
	for i := range variants {
		variants[i].Weight = math.Round(variants[i].Weight/total*weightScale) / weightScale
	}
}

// TileSize returns the side length of every tile in the set.
func (vs *VariantSet) TileSize() int {
	return vs.tileSize
}

// Masks returns the canonical masks in ascending order. The returned
// slice must not be modified.
func (vs *VariantSet) Masks() []Mask {
	return vs.masks
}

// Variants returns the variant list for a canonical mask, in draw-index
// order. The returned slice must not be modified.
func (vs *VariantSet) Variants(m Mask) []TileVariant {
	return vs.variants[m]
}

// MaxVariants returns the largest per-mask variant count in the set; it
// drives the variant dimension of the atlas grid.
func (vs *VariantSet) MaxVariants() int {
	return vs.maxVariants
}

// Len returns the total number of generated tiles across all masks.
func (vs *VariantSet) Len() int {
	n := 0
	for _, m := range vs.masks {
		n += len(vs.variants[m])
	}
	return n
}
