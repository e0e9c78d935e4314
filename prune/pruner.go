// Package prune implements the predicates that decide whether a
// candidate derivation record is worth expanding: loop detection,
// useless-alternative elimination against final and in-generation
// peers, and the accept-child shortcut check.
package prune

import (
	"github.com/coregx/whynot/automaton"
	"github.com/coregx/whynot/record"
)

// Pruner evaluates the loop-freedom, useful-alternative, and
// shortcut-suppression predicates against a fixed automaton. A Pruner
// holds no traversal state of its own and may be shared by multiple
// Traversers.
type Pruner[S comparable] struct {
	dfa *automaton.DFA[S]
}

// New creates a Pruner bound to dfa's forward transition table, used by
// the shortcut check.
func New[S comparable](dfa *automaton.DFA[S]) *Pruner[S] {
	return &Pruner[S]{dfa: dfa}
}

// LoopFree reports whether a record's chain contains no repeated
// (state, acceptedCount) pair.
func (p *Pruner[S]) LoopFree(r *record.Record[S]) bool {
	return !r.HasLoops(0)
}

// UsefulAlternative reports whether t is a useful alternative: it
// uselessly extends no record in finals and no record in peers (which
// the caller must restrict to in-generation tails strictly earlier than
// t; later peers are not part of this check — they have equal-or-higher
// missing count and will themselves be tested against t in their turn).
func (p *Pruner[S]) UsefulAlternative(t *record.Record[S], finals, peers []*record.Record[S]) bool {
	for _, r := range finals {
		if r == t {
			continue
		}
		if p.uselesslyExtends(t, r) {
			return false
		}
	}
	for _, r := range peers {
		if r == t {
			continue
		}
		if p.uselesslyExtends(t, r) {
			return false
		}
	}
	return true
}

// uselesslyExtends reports whether t uselessly extends r: r's chain
// contains a base record reaching the same (state, acceptedCount) as t,
// and t's chain, walked back from t, looks like base's chain with
// additional interstitial missing records each identical to or a
// partial-of the corresponding base record.
func (p *Pruner[S]) uselesslyExtends(t, r *record.Record[S]) bool {
	base := findBaseCandidate(t, r)
	if base == nil {
		return false
	}
	return p.extendsBase(t, base)
}

// findBaseCandidate walks r's ancestry looking for the first record
// whose (state, acceptedCount) matches t's. Ancestors are monotonically
// non-increasing in acceptedCount going back, so the walk stops as soon
// as it passes below t's acceptedCount.
func findBaseCandidate[S comparable](t, r *record.Record[S]) *record.Record[S] {
	for cur := r; cur != nil; cur = cur.Prev() {
		if cur.AcceptedCount() < t.AcceptedCount() {
			return nil
		}
		if cur.AcceptedCount() == t.AcceptedCount() && cur.TargetState() == t.TargetState() {
			return cur
		}
	}
	return nil
}

// extendsBase walks the (base, t) pointer pair back toward the root.
// The nil checks on bPtr must be evaluated before any field access on
// it, which puts the "B's pointer is none" case ahead of the
// total-count comparison in this implementation even though both
// describe the same lockstep walk.
func (p *Pruner[S]) extendsBase(t, base *record.Record[S]) bool {
	bPtr, tPtr := base, t
	for {
		if bPtr == tPtr {
			return true
		}
		if bPtr == nil {
			return true
		}
		if tPtr == nil || tPtr.TotalCount() < bPtr.TotalCount() {
			return false
		}
		if tPtr.IsPartialOf(bPtr) {
			bPtr = bPtr.Prev()
			tPtr = tPtr.Prev()
		} else {
			tPtr = tPtr.Prev()
		}
	}
}

// ShortcutSuppressesAccept applies only when t is a missing record: if
// the DFA reaches nextState directly from t's last-accept record's
// target state on nextSymbol, then t's accept child would land
// somewhere already reachable without t's intervening missing steps,
// and generating it would be redundant.
func (p *Pruner[S]) ShortcutSuppressesAccept(t *record.Record[S], nextSymbol S, nextState record.StateID) bool {
	if t.Accepted() {
		return false
	}
	l := t.LastAcceptRecord()
	shortcut, ok := p.dfa.Step(l.TargetState(), nextSymbol)
	return ok && shortcut == nextState
}
