package autotile

// Spatial hash primes (Teschner et al.) for deterministic position-based
// variant selection.
const (
	hashPrimeX = 73856093
	hashPrimeY = 19349663
)

// positionHash mixes a 2-D integer position into [0, 1). The same
// position always hashes to the same value, independent of draw order or
// process restart.
func positionHash(x, y int) float64 {
	h := uint32(x*hashPrimeX) ^ uint32(y*hashPrimeY)
	return float64(h) / float64(0xFFFFFFFF)
}

// PickVariant selects one variant from a weight-normalized list for the
// map cell at (x, y): the position hash is compared against the running
// weight sum and the first variant to exceed it wins. When rounding
// keeps the weights from reaching the hash value, the first variant is
// the fallback. The second return is false only for an empty list.
//
// Over many distinct positions the pick distribution approximates the
// normalized weights. This mirrors how a consuming engine should select
// variants at placement time.
func PickVariant(variants []TileVariant, x, y int) (TileVariant, bool) {
	if len(variants) == 0 {
		return TileVariant{}, false
	}

	t := positionHash(x, y)
	cumulative := 0.0
	for _, v := range variants {
		cumulative += v.Weight
		if t < cumulative {
			return v, true
		}
	}
	return variants[0], true
}
