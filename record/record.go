// Package record implements the derivation-trace graph at the heart of
// the traverser: an immutable, singly-linked chain of steps from the
// DFA's initial state to wherever a search tail currently stands.
//
// Each Record is either an accept step (one real input symbol was
// consumed) or a missing step (one of several candidate symbols would
// have to be inserted to make the same transition). Records are never
// mutated after construction; tails that share ancestry share the same
// underlying nodes, so the graph is a forest rooted at the initial
// record, not a tree per tail.
package record

// StateID identifies a state of the DFA being traversed.
type StateID uint32

// Record is one immutable step in a derivation trace.
//
// Record is generic over the alphabet symbol type S, which must support
// equality so that characters can be compared for Partial membership and
// so a single symbol can be located and removed from a candidate list.
type Record[S comparable] struct {
	prev       *Record[S]
	target     StateID
	characters []S
	accepted   bool

	// acceptedCount, missingCount, and lastAccept are memoized at
	// construction time: each is a constant-time function of the
	// parent's corresponding value.
	acceptedCount int
	missingCount  int
	lastAccept    *Record[S]
}

// NewInitial creates the root record of a derivation trace.
//
// Its target state is the DFA's initial state. It carries no real
// character (callers never read Characters() on it as an accept symbol;
// it exists only to give the pruning rules a uniform root), has
// acceptedCount 0, missingCount 0, and is its own last-accept record:
// the initial record counts as an accept record for the shortcut check.
func NewInitial[S comparable](initial StateID) *Record[S] {
	r := &Record[S]{
		target:   initial,
		accepted: true,
	}
	r.lastAccept = r
	return r
}

// NewAccept creates a child of prev that consumes one real input symbol.
func NewAccept[S comparable](prev *Record[S], symbol S, target StateID) *Record[S] {
	r := &Record[S]{
		prev:          prev,
		target:        target,
		characters:    []S{symbol},
		accepted:      true,
		acceptedCount: prev.acceptedCount + 1,
		missingCount:  prev.missingCount,
	}
	r.lastAccept = r
	return r
}

// NewMissing creates a child of prev that hypothetically inserts one of
// the given symbols to make the transition into target. symbols must be
// non-empty; callers (the traversal driver) guarantee this by only ever
// grouping non-empty symbol lists.
func NewMissing[S comparable](prev *Record[S], symbols []S, target StateID) *Record[S] {
	cp := make([]S, len(symbols))
	copy(cp, symbols)
	r := &Record[S]{
		prev:          prev,
		target:        target,
		characters:    cp,
		accepted:      false,
		acceptedCount: prev.acceptedCount,
		missingCount:  prev.missingCount + 1,
		lastAccept:    prev.lastAccept,
	}
	return r
}

// NewPartialMissing creates a child of prev equivalent to
// NewMissing(prev, symbols minus one occurrence of excluded, target).
//
// The excluded symbol is removed by first match. Callers guarantee
// len(symbols) >= 2 so the result is always non-empty.
func NewPartialMissing[S comparable](prev *Record[S], symbols []S, excluded S, target StateID) *Record[S] {
	reduced := make([]S, 0, len(symbols)-1)
	removed := false
	for _, s := range symbols {
		if !removed && s == excluded {
			removed = true
			continue
		}
		reduced = append(reduced, s)
	}
	return NewMissing(prev, reduced, target)
}

// Chain returns r's ancestry from the initial record forward to r
// itself, suitable for rendering a derivation trace or reproducing the
// accepted input sequence.
func (r *Record[S]) Chain() []*Record[S] {
	n := r.TotalCount() + 1 // +1 for the initial record
	chain := make([]*Record[S], n)
	i := n - 1
	for cur := r; cur != nil; cur = cur.prev {
		chain[i] = cur
		i--
	}
	return chain[i+1:]
}

// Prev returns the preceding record, or nil if this is the initial record.
func (r *Record[S]) Prev() *Record[S] { return r.prev }

// TargetState returns the DFA state this record lands in.
func (r *Record[S]) TargetState() StateID { return r.target }

// Characters returns the symbols associated with this step. For an
// accept record this is a single-element slice holding the consumed
// symbol; for a missing record it lists every symbol that would produce
// the step's transition.
func (r *Record[S]) Characters() []S { return r.characters }

// Accepted reports whether this step consumed one real input symbol.
func (r *Record[S]) Accepted() bool { return r.accepted }

// AcceptedCount returns the number of real input symbols consumed up to
// and including this record.
func (r *Record[S]) AcceptedCount() int { return r.acceptedCount }

// MissingCount returns the number of missing (inserted) steps along the
// chain up to and including this record.
func (r *Record[S]) MissingCount() int { return r.missingCount }

// TotalCount returns AcceptedCount() + MissingCount().
func (r *Record[S]) TotalCount() int { return r.acceptedCount + r.missingCount }

// LastAcceptRecord returns the nearest ancestor (including self) with
// Accepted() true. The initial record always qualifies, so this is
// never nil.
func (r *Record[S]) LastAcceptRecord() *Record[S] { return r.lastAccept }

// HasLoops reports whether walking the chain from this record back to
// the root reveals two chain entries — possibly including this record
// itself — that share the same target state and accepted count, more
// than minLen steps apart.
//
// A repeat of (state, acceptedCount) means the traversal re-entered the
// same DFA state without consuming new input: strictly redundant. The
// traversal driver always calls this with minLen == 0, so any repeat at
// all is disqualifying.
func (r *Record[S]) HasLoops(minLen int) bool {
	type key struct {
		state StateID
		count int
	}
	seen := make(map[key]int)
	idx := 0
	for cur := r; cur != nil; cur = cur.prev {
		k := key{cur.target, cur.acceptedCount}
		if firstIdx, ok := seen[k]; ok {
			if idx-firstIdx > minLen {
				return true
			}
		} else {
			seen[k] = idx
		}
		idx++
	}
	return false
}

// IsPartialOf reports whether r and other are both missing records with
// the same target state, and r's Characters() is obtained from other's
// by removing exactly one element (order preserved).
func (r *Record[S]) IsPartialOf(other *Record[S]) bool {
	if r.accepted || other.accepted {
		return false
	}
	if r.target != other.target {
		return false
	}
	a, b := r.characters, other.characters
	if len(a) != len(b)-1 {
		return false
	}
	for skip := 0; skip < len(b); skip++ {
		if charsEqualSkipping(a, b, skip) {
			return true
		}
	}
	return false
}

// charsEqualSkipping reports whether a equals b with the element at
// index skip removed.
func charsEqualSkipping[S comparable](a, b []S, skip int) bool {
	ai := 0
	for bi := range b {
		if bi == skip {
			continue
		}
		if ai >= len(a) || a[ai] != b[bi] {
			return false
		}
		ai++
	}
	return ai == len(a)
}
