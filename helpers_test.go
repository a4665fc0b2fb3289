package autotile

import (
	"image/color"
	"testing"
)

// solidTile returns a ts x ts pixmap filled with one color.
func solidTile(ts int, c color.NRGBA) *Pixmap {
	p := NewPixmap(ts, ts)
	p.Fill(c)
	return p
}

// roleColor assigns each role a distinct opaque color so composed tiles
// can be checked pixel by pixel.
func roleColor(r Role) color.NRGBA {
	v := uint8(10 * (int(r) + 1))
	return color.NRGBA{R: v, G: 255 - v, B: v / 2, A: 255}
}

// newSolidTable builds a table with one solid-colored entry of weight 1
// for every mandatory role (no optional roles), tile size ts.
func newSolidTable(t *testing.T, ts int) *RoleTable {
	t.Helper()
	table, err := NewRoleTable(ts)
	if err != nil {
		t.Fatalf("NewRoleTable(%d) failed: %v", ts, err)
	}
	for _, role := range RequiredRoles() {
		entry := SourceEntry{
			Role:   role,
			Label:  role.String(),
			Weight: 1.0,
			Image:  solidTile(ts, roleColor(role)),
		}
		if err := table.Add(entry); err != nil {
			t.Fatalf("Add(%s) failed: %v", role, err)
		}
	}
	if err := table.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	return table
}

// addEntry adds one solid entry to a table, failing the test on error.
func addEntry(t *testing.T, table *RoleTable, role Role, label string, weight float64, c color.NRGBA) {
	t.Helper()
	err := table.Add(SourceEntry{
		Role:   role,
		Label:  label,
		Weight: weight,
		Image:  solidTile(table.TileSize(), c),
	})
	if err != nil {
		t.Fatalf("Add(%s, %s) failed: %v", role, label, err)
	}
}
