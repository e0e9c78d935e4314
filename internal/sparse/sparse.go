// Package sparse provides a sparse set data structure for efficient
// membership testing over small dense integer universes, such as DFA
// state IDs.
//
// The automaton package uses it while building the grouped-reverse
// index: scanning a state's outgoing transitions in order, it tracks
// which target states have already been seen so each target gets
// exactly one ordered symbol bucket, with buckets appearing in
// first-seen order. That is the only access pattern this package needs
// to support: insert and test membership, never remove or enumerate.
package sparse

// SparseSet is a set of uint32 values that supports O(1) insertion and
// membership testing.
//
// This implementation is optimized for cases where the universe of possible
// values is known and relatively small (e.g., DFA state IDs).
type SparseSet struct {
	sparse []uint32 // Maps value -> index in dense
	dense  []uint32 // Contains the actual values, in insertion order
	size   uint32   // Current number of elements
}

// NewSparseSet creates a new sparse set with the given capacity.
// The capacity represents the maximum value that can be stored (exclusive).
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
		size:   0,
	}
}

// Insert adds a value to the set.
// If the value is already present, this is a no-op.
// Panics if value >= capacity.
func (s *SparseSet) Insert(value uint32) {
	if s.Contains(value) {
		return
	}

	// Add to dense array
	s.dense = append(s.dense, value)
	// Map value to its index in dense
	s.sparse[value] = s.size
	s.size++
}

// Contains returns true if the value is in the set
func (s *SparseSet) Contains(value uint32) bool {
	// Bounds check: value must be within sparse array bounds
	// Check for potential overflow when converting len to uint32
	if len(s.sparse) > 0x7FFFFFFF {
		return false // len too large for safe conversion
	}
	//nolint:gosec // G115: len is checked above for safe conversion to uint32
	sparseLen := uint32(len(s.sparse))
	if value >= sparseLen {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}
