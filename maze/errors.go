package maze

import "github.com/pkg/errors"

var (
	// ErrNilRNG indicates Generate was called without a random source.
	ErrNilRNG = errors.New("maze: random source is nil")
	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("maze: probability must lie in [0, 1]")
	// ErrGridTooSmall indicates no room for a start cell inside the margin.
	ErrGridTooSmall = errors.New("maze: grid too small for the edge margin")
	// ErrInvalidConfig indicates a Config that failed validation.
	ErrInvalidConfig = errors.New("maze: invalid config")
)
