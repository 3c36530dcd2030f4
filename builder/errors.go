// SPDX-License-Identifier: MIT
// Package: lvalg/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w and the constructor tag,
//     e.g. "Star: n=0 < min=1: builder: parameter too small".
//   • Constructors never panic at runtime; panics are confined to option
//     constructors (WithRand(nil)).
//   • Errors coming from core keep their own sentinels (core.ErrResource,
//     core.ErrIncompatibleGraph, ...) reachable through the wrap chain.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, a lattice dimension)
// is smaller than the constructor allows.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadParameter indicates a non-size parameter outside its domain, such as
// an unknown StarMode, a center outside [0,n) or a negative edge endpoint.
var ErrBadParameter = errors.New("builder: bad parameter")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildGraph could not run a constructor,
// for instance a nil entry in the constructor list.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a formatted message with the constructor tag and
// wraps sentinel.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// validateMin reports ErrTooFewVertices when got < min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "%s=%d < min=%d", name, got, min)
	}
	return nil
}

// validateProbability reports ErrInvalidProbability when p is outside [0,1]
// (NaN included).
func validateProbability(method string, p float64) error {
	if !(p >= probMin && p <= probMax) {
		return builderErrorf(method, ErrInvalidProbability, "p=%g not in [%.1f,%.1f]", p, probMin, probMax)
	}
	return nil
}
