package autotile

import "fmt"

// Role names the semantic position a painted source tile was drawn for.
// Outer roles depict the filled region's boundary in canonical
// orientation; inner roles depict concave notches where two filled edges
// meet without a filled diagonal.
type Role int

const (
	// RoleCenter is the fully interior tile.
	RoleCenter Role = iota
	// RoleOuterTL is the convex top-left corner.
	RoleOuterTL
	// RoleOuterTop is the top edge.
	RoleOuterTop
	// RoleOuterTR is the convex top-right corner.
	RoleOuterTR
	// RoleOuterLeft is the left edge.
	RoleOuterLeft
	// RoleOuterRight is the right edge.
	RoleOuterRight
	// RoleOuterBL is the convex bottom-left corner.
	RoleOuterBL
	// RoleOuterBottom is the bottom edge.
	RoleOuterBottom
	// RoleOuterBR is the convex bottom-right corner.
	RoleOuterBR
	// RoleInnerA is the concave notch used by the bottom-right quadrant.
	RoleInnerA
	// RoleInnerB is the concave notch used by the bottom-left quadrant.
	RoleInnerB
	// RoleInnerC is the concave notch used by the top-right quadrant.
	RoleInnerC
	// RoleInnerD is the concave notch used by the top-left quadrant.
	RoleInnerD
	// RoleSingle is the fully isolated tile (no filled neighbors).
	RoleSingle
	// RoleInnerE is an optional disambiguator for CrossMask: notches at
	// the top-right and bottom-left, filled top-left and bottom-right.
	RoleInnerE
	// RoleInnerF is an optional disambiguator for CrossMask: notches at
	// the top-left and bottom-right, filled top-right and bottom-left.
	RoleInnerF

	roleCount = int(RoleInnerF) + 1
)

// roleNames holds the manifest spelling for each role.
var roleNames = [roleCount]string{
	RoleCenter:      "center",
	RoleOuterTL:     "outer_tl",
	RoleOuterTop:    "outer_top",
	RoleOuterTR:     "outer_tr",
	RoleOuterLeft:   "outer_left",
	RoleOuterRight:  "outer_right",
	RoleOuterBL:     "outer_bl",
	RoleOuterBottom: "outer_bottom",
	RoleOuterBR:     "outer_br",
	RoleInnerA:      "inner_a",
	RoleInnerB:      "inner_b",
	RoleInnerC:      "inner_c",
	RoleInnerD:      "inner_d",
	RoleSingle:      "single",
	RoleInnerE:      "inner_e",
	RoleInnerF:      "inner_f",
}

// String returns the role's manifest spelling, e.g. "outer_tl".
func (r Role) String() string {
	if r < 0 || int(r) >= roleCount {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// ParseRole maps a manifest role name to its Role. It returns
// ErrUnknownRole for unrecognized names.
func ParseRole(name string) (Role, error) {
	for r, n := range roleNames {
		if n == name {
			return Role(r), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// RequiredRoles returns the roles every source table must supply, in
// declaration order.
func RequiredRoles() []Role {
	return []Role{
		RoleCenter,
		RoleOuterTL, RoleOuterTop, RoleOuterTR,
		RoleOuterLeft, RoleOuterRight,
		RoleOuterBL, RoleOuterBottom, RoleOuterBR,
		RoleInnerA, RoleInnerB, RoleInnerC, RoleInnerD,
		RoleSingle,
	}
}

// OptionalRoles returns the roles a source table may omit. Both must be
// present for the dedicated CrossMask composition rule to apply.
func OptionalRoles() []Role {
	return []Role{RoleInnerE, RoleInnerF}
}
