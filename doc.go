// Package autotile generates 47-configuration blob autotile sets from a
// small set of hand-painted role tiles.
//
// # Overview
//
// A blob autotile set contains one tile image for every distinct
// 8-neighbor adjacency pattern a filled map cell can have. After the
// standard diagonal reduction rule (a diagonal neighbor only matters when
// both adjacent cardinal neighbors are filled) the 256 raw patterns
// collapse to 47 canonical configurations. This package composes those 47
// tiles, with optional weighted visual variants, from at most 16 painted
// source tiles: a center, four outer edges, four outer corners, four
// inner corners, an isolated tile, and two optional inner-corner
// disambiguators.
//
// # Quick Start
//
//	table, err := manifest.Load("tileset.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	set, err := autotile.Build(table, autotile.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sheet := set.Image(autotile.LayoutVariantsY)
//	sheet.SavePNG("tileset_47.png")
//	os.WriteFile("tileset_47.ron", []byte(set.Mapping(autotile.LayoutVariantsY)), 0o644)
//
// # Determinism
//
// Generation is a pure function of the source table, the seed, and the
// variant cap: two runs with identical inputs produce byte-identical
// atlases and mappings. Runtime variant selection ([PickVariant]) is a
// pure function of map position, so the same cell always renders the same
// variant across sessions.
//
// # Coordinate System
//
// Pixel origin (0,0) is the top-left corner, X increases right, Y
// increases down. Tiles are square with an even side length so they split
// exactly into four quadrants.
package autotile
