package generate

import "errors"

// ErrInfeasible indicates that no function choice could still satisfy
// the requested size/depth bounds at some construction step. This is an
// expected outcome near tight bounds: callers retry with a fresh draw.
// Usage: if errors.Is(err, ErrInfeasible) { /* retry */ }.
var ErrInfeasible = errors.New("generate: no feasible completion")

// ErrInvalidBounds indicates min/max depth or size bounds that are
// rejected before any randomness is consumed.
var ErrInvalidBounds = errors.New("generate: invalid bounds")

// ErrNeedRand indicates that a stochastic builder was called without a
// random source.
var ErrNeedRand = errors.New("generate: rng is required")

// ErrBoundsViolated indicates that a completed tree failed the
// recomputed size/depth postcondition. This is a logic error in the
// feasibility arithmetic, never an expected outcome; callers must not
// retry or discard it silently.
var ErrBoundsViolated = errors.New("generate: completed tree violates requested bounds")
