package autotile

import "errors"

// Structural input errors. These describe a problem with one source
// tileset and abort only the input being processed; they are matched with
// errors.Is and carry role/file context from the wrapping site.
var (
	// ErrMissingRole is returned when a mandatory role has no source entry.
	ErrMissingRole = errors.New("autotile: missing required role")

	// ErrTileSize is returned when a tile size is not a positive even
	// number or a source image does not match the table's tile size.
	ErrTileSize = errors.New("autotile: invalid tile size")

	// ErrWeight is returned when a source entry's weight is not positive.
	ErrWeight = errors.New("autotile: weight must be positive")

	// ErrUnknownRole is returned when a role name is not recognized.
	ErrUnknownRole = errors.New("autotile: unknown role")
)

// ErrInternal indicates a logic defect rather than a data problem: the
// reduction rule not yielding 47 canonical masks, or a quadrant rule
// naming a role absent from a validated table. Callers should treat it as
// fatal rather than skip the input.
var ErrInternal = errors.New("autotile: internal consistency error")
