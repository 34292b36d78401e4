// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private kernels.
//
// Compiled only with the package's tests, so matrix_test can reach
// unexported helpers without widening the production API.

var (
	// ExportedRoundHalfUp exposes the scalar rounding kernel.
	ExportedRoundHalfUp = roundHalfUp
	// ExportedValidateTol exposes the AllClose tolerance guard.
	ExportedValidateTol = validateTol
)

// Stable panic messages of the Option constructors.
const (
	PanicPrecisionInvalid_TestOnly = panicPrecisionInvalid
	PanicEpsilonInvalid_TestOnly   = panicEpsilonInvalid
)
