// Package builder provides edge-weight generators for graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state and never return a negative,
// NaN or infinite value.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0 or not finite.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min. With a nil rng it yields DefaultEdgeWeight.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntegerWeightFn returns a WeightFn sampling whole numbers uniformly in
// [min, max]. Integer weights keep path sums exact, which makes equality
// checks against another implementation safe.
// Panics if min < 0 or max < min. With a nil rng it yields DefaultEdgeWeight.
func IntegerWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntegerWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntegerWeight sets whole-number weights in [min,max] via IntegerWeightFn.
func WithIntegerWeight(min, max int) BuilderOption {
	return WithWeightFn(IntegerWeightFn(min, max))
}
