package autotile

import (
	"fmt"
	"sort"
)

// SourceEntry is one painted candidate for a role: a square pixel buffer,
// a positive weight, and a label identifying where it came from (a file
// path or a synthetic template locator). Entries are immutable once
// added to a table.
type SourceEntry struct {
	Role   Role
	Label  string
	Weight float64
	Image  *Pixmap
}

// RoleTable maps each role to its ordered list of source entries. It is
// built once by a loader (see the manifest package), validated, and then
// read-only for the rest of a generation run.
type RoleTable struct {
	tileSize int
	entries  map[Role][]SourceEntry
}

// NewRoleTable creates an empty table for the given tile size. The tile
// size must be a positive even number so tiles split exactly into
// quadrants.
func NewRoleTable(tileSize int) (*RoleTable, error) {
	if tileSize < 2 || tileSize%2 != 0 {
		return nil, fmt.Errorf("%w: tile size must be a positive even number, got %d",
			ErrTileSize, tileSize)
	}
	return &RoleTable{
		tileSize: tileSize,
		entries:  make(map[Role][]SourceEntry),
	}, nil
}

// TileSize returns the side length shared by every entry in the table.
func (t *RoleTable) TileSize() int {
	return t.tileSize
}

// Add appends a source entry to its role's candidate list after
// validating its weight and dimensions against the table.
func (t *RoleTable) Add(e SourceEntry) error {
	if e.Weight <= 0 {
		return fmt.Errorf("%w: role %s (%s): weight %v",
			ErrWeight, e.Role, e.Label, e.Weight)
	}
	if e.Image == nil || e.Image.Width() != t.tileSize || e.Image.Height() != t.tileSize {
		w, h := 0, 0
		if e.Image != nil {
			w, h = e.Image.Width(), e.Image.Height()
		}
		return fmt.Errorf("%w: role %s (%s): expected %dx%d, got %dx%d",
			ErrTileSize, e.Role, e.Label, t.tileSize, t.tileSize, w, h)
	}
	t.entries[e.Role] = append(t.entries[e.Role], e)
	return nil
}

// Validate checks that every mandatory role has at least one entry.
func (t *RoleTable) Validate() error {
	for _, r := range RequiredRoles() {
		if len(t.entries[r]) == 0 {
			return fmt.Errorf("%w: %s", ErrMissingRole, r)
		}
	}
	return nil
}

// Has reports whether the role has at least one entry.
func (t *RoleTable) Has(r Role) bool {
	return len(t.entries[r]) > 0
}

// Entries returns the role's candidate list in insertion order. The
// returned slice must not be modified.
func (t *RoleTable) Entries(r Role) []SourceEntry {
	return t.entries[r]
}

// Roles returns the roles present in the table sorted by name. The name
// order is the fixed total ordering the variant selector ranks roles by.
func (t *RoleTable) Roles() []Role {
	roles := make([]Role, 0, len(t.entries))
	for r := range t.entries {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool {
		return roles[i].String() < roles[j].String()
	})
	return roles
}
