// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options are captured when a matrix is constructed and travel with it:
//     every matrix derived from a receiver (Add, Mul, Transpose, ...) inherits
//     the receiver's Options. The right-hand operand's options are ignored.
//   - Precision drives the rounding applied after Mul, Det (expansion step)
//     and Triangulate. Scale, Add, Sub, Negate and Transpose never round.
//   - Epsilon is the singularity tolerance of Inverse: |det| <= eps fails.
//     The default 0 means "exactly zero after rounding to Precision digits".
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of decimal digits kept by the rounding
	// that follows Mul, the cofactor expansion in Det, and Triangulate.
	DefaultPrecision = 10

	// DefaultEpsilon is the singularity tolerance used by Inverse.
	DefaultEpsilon = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	// Off by default: construction only fails on shape problems, and derived
	// matrices may legitimately carry ±Inf/NaN (see Triangulate).
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= 0"
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	precision      int     // >= 0; DefaultPrecision
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithPrecision sets the number of decimal digits kept after Mul, Det and
// Triangulate.
// Implementation:
//   - Stage 1: validate p >= 0.
//   - Stage 2: return a setter that writes p into Options.
//
// Errors:
//   - Panics with a stable message when p is negative.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPrecision(p int) Option {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithEpsilon sets the singularity tolerance used by Inverse.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Det is already rounded to Precision digits, so the default 0 rejects
//     noise-level determinants too. Widen eps only for ill-conditioned data.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf toggles finite-value validation of caller-supplied grids.
// When on, NewFromGrid rejects NaN and ±Inf with ErrNaNInf.
//
// Notes:
//   - Only ingestion is checked. Values produced by operations (for example
//     a Triangulate that divides by a tiny pivot) are carried as-is.
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) { o.validateNaNInf = on }
}

// NewMatrixOptions resolves a set of Option setters into an Options snapshot.
// Public, read-only entry point mirroring gatherOptions.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Precision returns the configured rounding precision.
func (o Options) Precision() int { return o.precision }

// Epsilon returns the configured singularity tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether ingestion rejects non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		precision:      DefaultPrecision,
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins); nil setters are skipped.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
