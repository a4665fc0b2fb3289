package autotile

// roleStride is a small prime used to decorrelate different roles' picks
// under the same seed: without it every multi-candidate role would rotate
// in lockstep and seeds would only shift the whole set uniformly.
const roleStride = 7

// pickEntries deterministically picks one source entry per present role
// for the given draw index and seed. A role with a single candidate
// always picks it. For a role with n candidates at rank i in the table's
// fixed name ordering, the pick is candidate
//
//	(drawIdx + (seed + i*roleStride) mod n) mod n
//
// so for a fixed seed, draw indices 0..n-1 visit every candidate exactly
// once, and changing the seed changes the cyclic phase but never the
// rotation order. Variant sets are therefore both reproducible and
// exhaustive.
func pickEntries(t *RoleTable, drawIdx, seed int) map[Role]SourceEntry {
	chosen := make(map[Role]SourceEntry)
	for i, role := range t.Roles() {
		candidates := t.Entries(role)
		if len(candidates) == 1 {
			chosen[role] = candidates[0]
			continue
		}
		n := len(candidates)
		offset := (seed + i*roleStride) % n
		if offset < 0 {
			offset += n
		}
		idx := (drawIdx + offset) % n
		chosen[role] = candidates[idx]
	}
	return chosen
}
