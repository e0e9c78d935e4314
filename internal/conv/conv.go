// Package conv provides a safe integer conversion helper used when
// narrowing a DFA's state count to the compact ID type used throughout
// the automaton and record graph.
//
// IntToUint32 performs bounds checking before narrowing the integer
// conversion to prevent silent overflow. It panics on overflow since
// this indicates a programming error (e.g. a DFA definition with more
// states than the ID type can represent).
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
