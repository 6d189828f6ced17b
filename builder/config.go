// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn          = DefaultIDFn        ("0","1","2",...)
//   • rng           = nil                (pure unless seeded)
//   • weightFn      = DefaultWeightFn    (constant 1)
//   • bidirectional = false

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn          IDFn
	rng           *rand.Rand
	weightFn      WeightFn
	bidirectional bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
