// Package automaton builds and serves the two transition views the
// traverser needs from a DFA description: the forward table δ(state,
// symbol) -> state, and the grouped-reverse index that, for each state,
// clusters its outgoing symbols by destination state.
//
// Construction validates the supplied Definition and rejects malformed
// DFAs (out-of-range states, a symbol appearing twice in one state's
// transition list) immediately: these are programmer errors surfaced
// at construction, not runtime conditions.
package automaton

import (
	"github.com/coregx/whynot/internal/conv"
	"github.com/coregx/whynot/internal/sparse"
	"github.com/coregx/whynot/record"
)

// StateID identifies a DFA state; it is the same type the record graph
// uses so neither package needs to convert at the boundary.
type StateID = record.StateID

// Transition is one entry in a state's ordered outgoing transition list:
// on Symbol, move to Target.
type Transition[S comparable] struct {
	Symbol S
	Target StateID
}

// Definition is the external, unvalidated description of a DFA: parsing
// this shape from a file or wire format is out of scope for this
// package and lives in the config package instead.
type Definition[S comparable] struct {
	// InitialState is the state the traverser starts in.
	InitialState StateID

	// NumStates is the number of states, dense over 0..NumStates-1.
	NumStates int

	// Transitions holds, for state i, its outgoing transitions in the
	// order δ(i, ·) should be considered. len(Transitions) must equal
	// NumStates; Transitions[i] may be empty (a dead-end state).
	Transitions [][]Transition[S]

	// FinalStates lists the accepting states.
	FinalStates []StateID
}

// Group is one bucket of the grouped-reverse index: every symbol in
// Symbols transitions from the owning state directly into Target.
type Group[S comparable] struct {
	Target  StateID
	Symbols []S
}

// DFA is the validated, read-only automaton used by the traverser.
// A DFA may be shared by multiple Traversers concurrently; it is never
// mutated after New returns.
type DFA[S comparable] struct {
	initial   StateID
	numStates int
	final     map[StateID]bool
	forward   []map[S]StateID
	groups    [][]Group[S]
	groupIdx  []map[StateID]int // groups[s][groupIdx[s][target]] for O(1) lookup
}

// New validates def and builds the forward table and grouped-reverse
// index. It returns an *Error (not a generic error) on any malformed-DFA
// condition so callers can use errors.As to distinguish the kind.
func New[S comparable](def Definition[S]) (*DFA[S], error) {
	if def.NumStates <= 0 {
		return nil, newError(InvalidInitialState, "automaton: NumStates must be positive, got %d", def.NumStates)
	}
	if int(def.InitialState) < 0 || int(def.InitialState) >= def.NumStates {
		return nil, newError(InvalidInitialState, "automaton: initial state %d out of range [0,%d)", def.InitialState, def.NumStates)
	}
	if len(def.Transitions) != def.NumStates {
		return nil, newError(InvalidTarget, "automaton: Transitions has %d rows, want %d", len(def.Transitions), def.NumStates)
	}

	final := make(map[StateID]bool, len(def.FinalStates))
	for _, f := range def.FinalStates {
		if int(f) < 0 || int(f) >= def.NumStates {
			return nil, newError(InvalidFinalState, "automaton: final state %d out of range [0,%d)", f, def.NumStates)
		}
		final[f] = true
	}

	forward := make([]map[S]StateID, def.NumStates)
	groups := make([][]Group[S], def.NumStates)
	groupIdx := make([]map[StateID]int, def.NumStates)

	for s := 0; s < def.NumStates; s++ {
		row := def.Transitions[s]
		fwd := make(map[S]StateID, len(row))
		seen := sparse.NewSparseSet(conv.IntToUint32(def.NumStates))
		var order []StateID
		symsByTarget := make(map[StateID][]S, len(row))

		for _, t := range row {
			if int(t.Target) < 0 || int(t.Target) >= def.NumStates {
				return nil, newError(InvalidTarget, "automaton: state %d transitions to out-of-range target %d", s, t.Target)
			}
			if _, dup := fwd[t.Symbol]; dup {
				return nil, newError(DuplicateSymbol, "automaton: state %d has duplicate transition for symbol %v", s, t.Symbol)
			}
			fwd[t.Symbol] = t.Target

			if !seen.Contains(uint32(t.Target)) {
				seen.Insert(uint32(t.Target))
				order = append(order, t.Target)
			}
			symsByTarget[t.Target] = append(symsByTarget[t.Target], t.Symbol)
		}

		forward[s] = fwd

		g := make([]Group[S], len(order))
		idx := make(map[StateID]int, len(order))
		for i, target := range order {
			g[i] = Group[S]{Target: target, Symbols: symsByTarget[target]}
			idx[target] = i
		}
		groups[s] = g
		groupIdx[s] = idx
	}

	return &DFA[S]{
		initial:   def.InitialState,
		numStates: def.NumStates,
		final:     final,
		forward:   forward,
		groups:    groups,
		groupIdx:  groupIdx,
	}, nil
}

// Initial returns the DFA's start state.
func (d *DFA[S]) Initial() StateID { return d.initial }

// NumStates returns the number of states in the DFA.
func (d *DFA[S]) NumStates() int { return d.numStates }

// IsFinal reports whether s is an accepting state.
func (d *DFA[S]) IsFinal(s StateID) bool { return d.final[s] }

// Step evaluates δ(state, symbol). The second return value is false if
// no transition is defined (the symbol is unknown from this state, or
// not in the alphabet at all — not an error, just no accept edge).
func (d *DFA[S]) Step(state StateID, symbol S) (StateID, bool) {
	target, ok := d.forward[state][symbol]
	return target, ok
}

// GroupedReverse returns state's grouped-reverse buckets: for each
// distinct destination reachable directly from state, the ordered list
// of symbols that reach it. Bucket order matches first appearance in
// the Definition's transition list for that state.
func (d *DFA[S]) GroupedReverse(state StateID) []Group[S] {
	return d.groups[state]
}

// SymbolsTo returns the symbol list that reaches target directly from
// state, and whether any such bucket exists.
func (d *DFA[S]) SymbolsTo(state, target StateID) ([]S, bool) {
	idx, ok := d.groupIdx[state][target]
	if !ok {
		return nil, false
	}
	return d.groups[state][idx].Symbols, true
}
