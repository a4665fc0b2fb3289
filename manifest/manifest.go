// Package manifest loads painted source tiles into the role table the
// autotile package consumes. Two input forms are supported: a JSON
// manifest listing per-role image files with weights, and a single 5x4
// template image holding one tile per role (see template.go).
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	_ "image/png" // register PNG decoding

	"github.com/tileforge/autotile"
)

// ErrManifest is returned when a manifest file is structurally invalid.
var ErrManifest = errors.New("manifest: malformed manifest")

// Manifest is the JSON schema of a tileset description.
type Manifest struct {
	TileSize int      `json:"tile_size"`
	Sources  []Source `json:"sources"`
}

// Source is one entry of a manifest: a role name, an image path relative
// to the manifest file, and a positive weight.
type Source struct {
	Role   string  `json:"role"`
	File   string  `json:"file"`
	Weight float64 `json:"weight"`
}

// Load reads a JSON manifest and its referenced images into a validated
// role table. Every image must be tile_size x tile_size; images without
// an alpha channel are converted to RGBA on decode.
func Load(path string) (*autotile.RoleTable, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifest, path, err)
	}
	if m.TileSize == 0 {
		return nil, fmt.Errorf("%w: %s: missing tile_size", ErrManifest, path)
	}
	if len(m.Sources) == 0 {
		return nil, fmt.Errorf("%w: %s: missing sources", ErrManifest, path)
	}

	return m.Table(filepath.Dir(path))
}

// Table loads the manifest's images, resolving relative paths against
// baseDir, and returns the validated role table.
func (m *Manifest) Table(baseDir string) (*autotile.RoleTable, error) {
	table, err := autotile.NewRoleTable(m.TileSize)
	if err != nil {
		return nil, err
	}

	for i, src := range m.Sources {
		if src.Role == "" || src.File == "" {
			return nil, fmt.Errorf("%w: source #%d: role and file are required", ErrManifest, i)
		}
		role, err := autotile.ParseRole(src.Role)
		if err != nil {
			return nil, fmt.Errorf("source #%d: %w", i, err)
		}

		img, err := loadImage(filepath.Join(baseDir, src.File))
		if err != nil {
			return nil, fmt.Errorf("source #%d (role=%s): %w", i, role, err)
		}

		entry := autotile.SourceEntry{
			Role:   role,
			Label:  src.File,
			Weight: src.Weight,
			Image:  img,
		}
		if err := table.Add(entry); err != nil {
			return nil, fmt.Errorf("source #%d: %w", i, err)
		}
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// loadImage decodes an image file into a pixmap.
func loadImage(path string) (*autotile.Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("manifest: open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("manifest: decode %s: %w", path, err)
	}
	return autotile.FromImage(img), nil
}
