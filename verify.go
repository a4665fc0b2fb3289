package autotile

import (
	"fmt"
	"log/slog"
)

// ValidateTable scans a loaded table for content problems that do not
// violate the structural contract: sources that are fully transparent.
// It returns human-readable warnings and logs each one; an empty slice
// means a clean table.
func ValidateTable(t *RoleTable) []string {
	var warnings []string
	for _, role := range RequiredRoles() {
		for _, entry := range t.Entries(role) {
			if entry.Image.FullyTransparent() {
				msg := fmt.Sprintf("role %s (%s) is fully transparent", role, entry.Label)
				warnings = append(warnings, msg)
				Logger().Warn("transparent source tile",
					slog.String("role", role.String()),
					slog.String("source", entry.Label))
			}
		}
	}
	return warnings
}

// VerifyVariants runs the post-generation sanity checks:
//
//   - the fully-surrounded configuration's first variant should equal
//     the center source when that role has exactly one candidate
//   - the isolated configuration's first variant should likewise equal
//     the isolated source
//   - no generated variant may be fully transparent
//
// Mismatches are content warnings, not errors: generation has already
// completed and its outputs are usable. Every message, pass or fail, is
// returned; failures are additionally logged.
func VerifyVariants(vs *VariantSet, t *RoleTable) []string {
	var messages []string

	check := func(m Mask, role Role, label string) {
		variants := vs.Variants(m)
		if len(variants) == 0 || len(t.Entries(role)) != 1 {
			return
		}
		if variants[0].Image.Equal(t.Entries(role)[0].Image) {
			messages = append(messages, fmt.Sprintf("ok: mask %d (variant 0) matches %s", m, label))
		} else {
			messages = append(messages, fmt.Sprintf("warning: mask %d differs from %s, check mapping", m, label))
			Logger().Warn("verification mismatch",
				slog.Int("mask", int(m)),
				slog.String("role", role.String()))
		}
	}
	check(Mask(255), RoleCenter, "center")
	check(Mask(0), RoleSingle, "single")

	var empty []string
	for _, m := range vs.Masks() {
		for vi, v := range vs.Variants(m) {
			if v.Image.FullyTransparent() {
				empty = append(empty, fmt.Sprintf("(%d,%d)", m, vi))
			}
		}
	}
	if len(empty) > 0 {
		total := len(empty)
		if len(empty) > 10 {
			empty = empty[:10]
		}
		messages = append(messages, fmt.Sprintf("warning: %d fully transparent tile variants: %v", total, empty))
		Logger().Warn("fully transparent variants", slog.Int("count", total))
	} else {
		messages = append(messages, fmt.Sprintf("ok: all %d tile variants have non-transparent pixels", vs.Len()))
	}

	return messages
}
