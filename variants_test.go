package autotile

import (
	"bytes"
	"image/color"
	"math"
	"testing"
)

// TestBuild_SingleCandidateSet verifies the concrete scenario from the
// generator's contract: one solid entry per mandatory role yields
// exactly one variant per canonical mask, 47 in total, with mask 0 and
// mask 255 reproducing their sources.
func TestBuild_SingleCandidateSet(t *testing.T) {
	table := newSolidTable(t, 8)
	set, err := Build(table, DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if got := len(set.Masks()); got != CanonicalCount {
		t.Fatalf("mask count = %d, want %d", got, CanonicalCount)
	}
	if got := set.Len(); got != CanonicalCount {
		t.Errorf("total variants = %d, want %d", got, CanonicalCount)
	}
	if got := set.MaxVariants(); got != 1 {
		t.Errorf("MaxVariants() = %d, want 1", got)
	}

	if !set.Variants(0)[0].Image.Equal(table.Entries(RoleSingle)[0].Image) {
		t.Error("mask 0 variant differs from the single source")
	}
	if !set.Variants(255)[0].Image.Equal(table.Entries(RoleCenter)[0].Image) {
		t.Error("mask 255 variant differs from the center source")
	}
}

// TestBuild_WeightsSumToOne verifies sibling weights are normalized per
// mask within the rounding tolerance, including with uneven source
// weights.
func TestBuild_WeightsSumToOne(t *testing.T) {
	table := newSolidTable(t, 8)
	addEntry(t, table, RoleCenter, "center-b", 3.0, color.NRGBA{R: 7, A: 255})
	addEntry(t, table, RoleOuterTop, "top-b", 0.2, color.NRGBA{R: 8, A: 255})
	addEntry(t, table, RoleOuterTop, "top-c", 5.0, color.NRGBA{R: 9, A: 255})

	set, err := Build(table, DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, m := range set.Masks() {
		sum := 0.0
		for _, v := range set.Variants(m) {
			sum += v.Weight
		}
		if math.Abs(sum-1.0) > 1e-5 {
			t.Errorf("mask %d weights sum to %v, want 1", m, sum)
		}
	}
}

// TestBuild_VariantCountPerMask verifies k follows the most-varied role
// each mask actually uses, and that the cap clamps it.
func TestBuild_VariantCountPerMask(t *testing.T) {
	table := newSolidTable(t, 8)
	// outer_top gets 3 candidates in total.
	addEntry(t, table, RoleOuterTop, "top-b", 1, color.NRGBA{R: 8, A: 255})
	addEntry(t, table, RoleOuterTop, "top-c", 1, color.NRGBA{R: 9, A: 255})

	set, err := Build(table, DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Mask 0 uses only the single role: 1 variant.
	if got := len(set.Variants(0)); got != 1 {
		t.Errorf("mask 0 variants = %d, want 1", got)
	}
	// Mask S uses outer_top for both top quadrants: 3 variants.
	if got := len(set.Variants(S)); got != 3 {
		t.Errorf("mask S variants = %d, want 3", got)
	}
	// Mask 255 uses only center: 1 variant.
	if got := len(set.Variants(255)); got != 1 {
		t.Errorf("mask 255 variants = %d, want 1", got)
	}
	if got := set.MaxVariants(); got != 3 {
		t.Errorf("MaxVariants() = %d, want 3", got)
	}

	capped, err := Build(table, Options{Seed: 42, MaxVariants: 2})
	if err != nil {
		t.Fatalf("Build with cap failed: %v", err)
	}
	if got := len(capped.Variants(S)); got != 2 {
		t.Errorf("capped mask S variants = %d, want 2", got)
	}
	if got := capped.MaxVariants(); got != 2 {
		t.Errorf("capped MaxVariants() = %d, want 2", got)
	}
}

// TestBuild_Deterministic verifies two runs with identical inputs
// produce byte-identical atlases and mappings.
func TestBuild_Deterministic(t *testing.T) {
	build := func() ([]byte, string) {
		table := newSolidTable(t, 8)
		addEntry(t, table, RoleCenter, "center-b", 2, color.NRGBA{R: 7, A: 255})
		addEntry(t, table, RoleOuterLeft, "left-b", 1, color.NRGBA{R: 6, A: 255})
		set, err := Build(table, Options{Seed: 42, MaxVariants: 4})
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		return set.Image(LayoutVariantsY).Data(), set.Mapping(LayoutVariantsY)
	}

	img1, map1 := build()
	img2, map2 := build()
	if !bytes.Equal(img1, img2) {
		t.Error("atlas pixels differ between identical runs")
	}
	if map1 != map2 {
		t.Error("mappings differ between identical runs")
	}
}

// TestBuild_SeedChangesMultiCandidateOutput verifies the two-role
// 3x2-candidate scenario: different seeds change at least one mask's
// pixels, same seed reproduces exactly.
func TestBuild_SeedChangesMultiCandidateOutput(t *testing.T) {
	makeTable := func() *RoleTable {
		table := newSolidTable(t, 8)
		addEntry(t, table, RoleCenter, "center-b", 1, color.NRGBA{R: 40, A: 255})
		addEntry(t, table, RoleCenter, "center-c", 1, color.NRGBA{R: 80, A: 255})
		addEntry(t, table, RoleOuterTop, "top-b", 1, color.NRGBA{G: 40, A: 255})
		return table
	}

	seed42a, err := Build(makeTable(), Options{Seed: 42})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	seed42b, err := Build(makeTable(), Options{Seed: 42})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	seed7, err := Build(makeTable(), Options{Seed: 7})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !bytes.Equal(seed42a.Image(LayoutVariantsY).Data(), seed42b.Image(LayoutVariantsY).Data()) {
		t.Error("same seed produced different atlases")
	}

	differs := false
	for _, m := range seed42a.Masks() {
		va, v7 := seed42a.Variants(m), seed7.Variants(m)
		for i := range va {
			if i < len(v7) && !va[i].Image.Equal(v7[i].Image) {
				differs = true
			}
		}
	}
	if !differs {
		t.Error("seeds 42 and 7 produced identical outputs for a multi-candidate table")
	}
}

// TestNormalizeWeights_ZeroSum verifies the degenerate zero-sum case
// leaves weights untouched instead of dividing by zero.
func TestNormalizeWeights_ZeroSum(t *testing.T) {
	variants := []TileVariant{{Weight: 0}, {Weight: 0}}
	normalizeWeights(variants)
	for i, v := range variants {
		if v.Weight != 0 {
			t.Errorf("variant %d weight = %v, want 0", i, v.Weight)
		}
	}
}
