package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tileforge/autotile"
)

// Template grid dimensions: 5 columns x 4 rows, one cell per role.
const (
	templateCols = 5
	templateRows = 4
)

// templatePosition is a cell of the template grid.
type templatePosition struct {
	row, col int
}

// templatePositions fixes where each role lives in a template image.
var templatePositions = map[autotile.Role]templatePosition{
	autotile.RoleOuterTL:     {0, 0},
	autotile.RoleOuterTop:    {0, 1},
	autotile.RoleOuterTR:     {0, 2},
	autotile.RoleInnerA:      {0, 3},
	autotile.RoleInnerB:      {0, 4},
	autotile.RoleOuterLeft:   {1, 0},
	autotile.RoleCenter:      {1, 1},
	autotile.RoleOuterRight:  {1, 2},
	autotile.RoleInnerC:      {1, 3},
	autotile.RoleInnerD:      {1, 4},
	autotile.RoleOuterBL:     {2, 0},
	autotile.RoleOuterBottom: {2, 1},
	autotile.RoleOuterBR:     {2, 2},
	autotile.RoleInnerE:      {2, 3},
	autotile.RoleInnerF:      {2, 4},
	autotile.RoleSingle:      {3, 0},
}

// templateOrder lists the roles in grid scan order so generated
// manifests are byte-stable across runs.
var templateOrder = []autotile.Role{
	autotile.RoleOuterTL, autotile.RoleOuterTop, autotile.RoleOuterTR,
	autotile.RoleInnerA, autotile.RoleInnerB,
	autotile.RoleOuterLeft, autotile.RoleCenter, autotile.RoleOuterRight,
	autotile.RoleInnerC, autotile.RoleInnerD,
	autotile.RoleOuterBL, autotile.RoleOuterBottom, autotile.RoleOuterBR,
	autotile.RoleInnerE, autotile.RoleInnerF,
	autotile.RoleSingle,
}

// loadTemplateImage decodes and size-checks a template image. A zero
// tileSize infers the size from the image width.
func loadTemplateImage(path string, tileSize int) (*autotile.Pixmap, int, error) {
	img, err := loadImage(path)
	if err != nil {
		return nil, 0, err
	}

	if tileSize == 0 {
		tileSize = img.Width() / templateCols
	}
	wantW := tileSize * templateCols
	wantH := tileSize * templateRows
	if img.Width() != wantW || img.Height() != wantH {
		return nil, 0, fmt.Errorf("%w: template %s is %dx%d, want a %dx%d grid of %dx%d tiles (%dx%d)",
			autotile.ErrTileSize, path, img.Width(), img.Height(),
			templateCols, templateRows, tileSize, tileSize, wantW, wantH)
	}
	return img, tileSize, nil
}

// LoadTemplate slices a 5x4 template image directly into a validated
// role table, every cell with weight 1. A zero tileSize infers the tile
// size as the image width divided by five. Fully transparent cells of
// optional roles are treated as absent.
func LoadTemplate(path string, tileSize int) (*autotile.RoleTable, error) {
	img, ts, err := loadTemplateImage(path, tileSize)
	if err != nil {
		return nil, err
	}

	table, err := autotile.NewRoleTable(ts)
	if err != nil {
		return nil, err
	}

	optional := make(map[autotile.Role]bool)
	for _, r := range autotile.OptionalRoles() {
		optional[r] = true
	}

	for _, role := range templateOrder {
		pos := templatePositions[role]
		tile := img.Crop(pos.col*ts, pos.row*ts, ts, ts)
		if optional[role] && tile.FullyTransparent() {
			continue
		}
		entry := autotile.SourceEntry{
			Role:   role,
			Label:  fmt.Sprintf("<template:%s:%s>", filepath.Base(path), role),
			Weight: 1.0,
			Image:  tile,
		}
		if err := table.Add(entry); err != nil {
			return nil, err
		}
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Split slices a 5x4 template image into individual per-role PNGs plus a
// generated tileset.json in outDir, and returns the manifest path. Fully
// transparent optional cells are skipped. The written manifest round-
// trips through Load.
func Split(path, outDir string, tileSize int) (string, error) {
	img, ts, err := loadTemplateImage(path, tileSize)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("manifest: create output dir: %w", err)
	}

	optional := make(map[autotile.Role]bool)
	for _, r := range autotile.OptionalRoles() {
		optional[r] = true
	}

	m := Manifest{TileSize: ts}
	for _, role := range templateOrder {
		pos := templatePositions[role]
		tile := img.Crop(pos.col*ts, pos.row*ts, ts, ts)
		if optional[role] && tile.FullyTransparent() {
			continue
		}
		name := role.String() + ".png"
		if err := tile.SavePNG(filepath.Join(outDir, name)); err != nil {
			return "", fmt.Errorf("manifest: write %s: %w", name, err)
		}
		m.Sources = append(m.Sources, Source{Role: role.String(), File: name, Weight: 1.0})
	}

	data, err := json.MarshalIndent(&m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("manifest: encode manifest: %w", err)
	}
	manifestPath := filepath.Join(outDir, "tileset.json")
	if err := os.WriteFile(manifestPath, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("manifest: write manifest: %w", err)
	}
	return manifestPath, nil
}
