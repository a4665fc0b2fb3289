package autotile

// Options holds the generation parameters for Build.
type Options struct {
	// Seed shifts the cyclic phase of per-role variant selection.
	// Different seeds produce different visual combinations from the
	// same sources; the same seed always reproduces the same set.
	Seed int

	// MaxVariants caps the number of variants generated per
	// configuration. Zero means uncapped: each configuration gets as
	// many variants as its most-varied participating role has
	// candidates.
	MaxVariants int
}

// DefaultOptions returns the default generation parameters.
func DefaultOptions() Options {
	return Options{
		Seed:        42,
		MaxVariants: 0,
	}
}
