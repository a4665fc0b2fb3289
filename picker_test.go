package autotile

import (
	"math"
	"testing"
)

// TestPickVariant_Empty verifies the empty-list report.
func TestPickVariant_Empty(t *testing.T) {
	if _, ok := PickVariant(nil, 3, 4); ok {
		t.Error("PickVariant(nil) reported ok")
	}
}

// TestPickVariant_Deterministic verifies identical positions always
// resolve to the identical variant.
func TestPickVariant_Deterministic(t *testing.T) {
	variants := []TileVariant{
		{Image: NewPixmap(2, 2), Weight: 0.3},
		{Image: NewPixmap(2, 2), Weight: 0.7},
	}

	for y := -5; y < 5; y++ {
		for x := -5; x < 5; x++ {
			a, _ := PickVariant(variants, x, y)
			b, _ := PickVariant(variants, x, y)
			if a.Image != b.Image {
				t.Fatalf("pick at (%d,%d) not stable", x, y)
			}
		}
	}
}

// TestPickVariant_Distribution verifies picks over many distinct
// positions approximate the configured weights.
func TestPickVariant_Distribution(t *testing.T) {
	variants := []TileVariant{
		{Image: NewPixmap(2, 2), Weight: 0.3},
		{Image: NewPixmap(2, 2), Weight: 0.7},
	}

	const side = 300
	first := 0
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			v, ok := PickVariant(variants, x, y)
			if !ok {
				t.Fatal("pick failed")
			}
			if v.Image == variants[0].Image {
				first++
			}
		}
	}

	got := float64(first) / (side * side)
	if math.Abs(got-0.3) > 0.05 {
		t.Errorf("first-variant fraction = %v, want about 0.3", got)
	}
}

// TestPickVariant_RoundingFallback verifies positions whose hash exceeds
// the (under-rounded) weight sum fall back to the first variant.
func TestPickVariant_RoundingFallback(t *testing.T) {
	variants := []TileVariant{
		{Image: NewPixmap(2, 2), Weight: 0.000001},
		{Image: NewPixmap(2, 2), Weight: 0.000001},
	}
	v, ok := PickVariant(variants, 12345, 67890)
	if !ok {
		t.Fatal("pick failed")
	}
	if v.Image != variants[0].Image {
		t.Error("fallback did not select the first variant")
	}
}

// TestPositionHash_Range verifies the hash stays in [0, 1).
func TestPositionHash_Range(t *testing.T) {
	positions := [][2]int{
		{0, 0}, {1, 0}, {0, 1}, {-1, -1},
		{1 << 20, 1 << 19}, {-12345, 67890},
	}
	for _, pos := range positions {
		h := positionHash(pos[0], pos[1])
		if h < 0 || h >= 1 {
			t.Errorf("positionHash(%d, %d) = %v, out of [0,1)", pos[0], pos[1], h)
		}
	}
}
