// SPDX-License-Identifier: MIT
// Package: lvalg/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng = nil (constructors are pure unless seeded)
//
// Options are applied in order; later options override earlier ones.

package builder

import (
	"math/rand"
)

// Probability domain shared by the stochastic constructors.
const (
	probMin = 0.0
	probMax = 1.0
)

// builderConfig aggregates the knobs constructors read. It is passed by value.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
}

// newBuilderConfig returns the defaults with opts applied in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
