// Package traverse implements the generation-by-generation breadth-first
// search that drives the whole traversal: it consumes input lazily,
// expands each surviving tail into its accept and missing children,
// keeps the next generation ordered by missing-count, and stops when no
// tails remain.
package traverse

import (
	"context"

	"github.com/coregx/whynot/automaton"
	"github.com/coregx/whynot/prune"
	"github.com/coregx/whynot/record"
	"github.com/google/uuid"
)

// StateID identifies a DFA state; shared with the automaton and record
// packages so callers never convert at the boundary.
type StateID = record.StateID

// InputFunc pulls the next input symbol. ok is false to signal
// end-of-input; InputFunc is called at most once per input position,
// the Traverser buffers so any tail can re-read an earlier position.
type InputFunc[S comparable] func() (symbol S, ok bool)

// FromSlice adapts a fixed, fully-known input sequence into an
// InputFunc, for tests and simple callers that already have the whole
// input in memory.
func FromSlice[S comparable](symbols []S) InputFunc[S] {
	i := 0
	return func() (S, bool) {
		if i >= len(symbols) {
			var zero S
			return zero, false
		}
		s := symbols[i]
		i++
		return s, true
	}
}

// Traverser runs the core BFS against a fixed automaton. A Traverser's
// automaton and pruner are read-only and may be shared across
// Traversers. The Traverser holds no mutable state of its own: each
// Execute call owns its own buffer, tails, and finals.
type Traverser[S comparable] struct {
	dfa    *automaton.DFA[S]
	pruner *prune.Pruner[S]
	cfg    Config
}

// New creates a Traverser bound to dfa.
func New[S comparable](dfa *automaton.DFA[S], cfg Config) (*Traverser[S], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Traverser[S]{
		dfa:    dfa,
		pruner: prune.New(dfa),
		cfg:    cfg,
	}, nil
}

// execState holds the per-Execute-call mutable state: the buffered
// input, whether the source is known exhausted, and the accumulated
// final records. It is discarded at the end of each Execute call.
type execState[S comparable] struct {
	buffer            []S
	bufferOver        bool
	sourceSignaledEnd bool
	finals            []*record.Record[S]
}

// pull reads one more symbol from input. Callers are responsible for
// not calling pull once bufferOver is set in normal operation; pull
// itself only guards against the input source violating its own
// contract by producing a value after it has already signaled end.
func (e *execState[S]) pull(input InputFunc[S]) {
	sym, ok := input()
	if !ok {
		e.bufferOver = true
		e.sourceSignaledEnd = true
		return
	}
	if e.sourceSignaledEnd {
		panic(newContractError("input source returned a value after previously signaling end-of-input"))
	}
	e.buffer = append(e.buffer, sym)
}

// nextSymbol returns the buffered symbol at t's read position,
// pulling from input if that position hasn't been read yet.
func (e *execState[S]) nextSymbol(t *record.Record[S], input InputFunc[S]) (S, bool) {
	idx := t.AcceptedCount()
	for idx >= len(e.buffer) && !e.bufferOver {
		e.pull(input)
	}
	if idx < len(e.buffer) {
		return e.buffer[idx], true
	}
	var zero S
	return zero, false
}

// isFinal implements is_record_final: t's target state must be
// accepting, t must have consumed exactly as much real input as is
// available, and attempting to read one further position must confirm
// the input is exhausted.
func (e *execState[S]) isFinal(t *record.Record[S], dfa *automaton.DFA[S], input InputFunc[S]) bool {
	if !dfa.IsFinal(t.TargetState()) {
		return false
	}
	for t.AcceptedCount() >= len(e.buffer) && !e.bufferOver {
		e.pull(input)
	}
	return t.AcceptedCount() == len(e.buffer) && e.bufferOver
}

// expand produces t's children: an accept child (unless the shortcut
// check suppresses it), a partial-missing child when the accept
// transition's group has more than one symbol, and a missing child for
// every other grouped-reverse target.
func (tr *Traverser[S]) expand(t *record.Record[S], e *execState[S], input InputFunc[S]) []*record.Record[S] {
	s := t.TargetState()
	a, haveA := e.nextSymbol(t, input)
	groups := tr.dfa.GroupedReverse(s)

	var children []*record.Record[S]
	var ns StateID
	haveNS := false

	if haveA {
		if target, ok := tr.dfa.Step(s, a); ok {
			ns = target
			haveNS = true

			if !tr.pruner.ShortcutSuppressesAccept(t, a, ns) {
				children = append(children, record.NewAccept(t, a, ns))
			}
			if syms, ok := tr.dfa.SymbolsTo(s, ns); ok && len(syms) >= 2 {
				children = append(children, record.NewPartialMissing(t, syms, a, ns))
			}
		}
	}

	for _, g := range groups {
		if haveNS && g.Target == ns {
			continue
		}
		children = append(children, record.NewMissing(t, g.Symbols, g.Target))
	}

	return children
}

// Execute runs the full breadth-first traversal against input and
// returns every final record found: one per distinct minimal completion
// of input that reaches an accepting state. The returned slice is
// deterministic in content and order for a deterministic input and DFA.
func (tr *Traverser[S]) Execute(ctx context.Context, input InputFunc[S]) []*record.Record[S] {
	logger := loggerFromContext(ctx)
	runID := uuid.NewString()

	e := &execState[S]{}
	currentTails := []*record.Record[S]{record.NewInitial[S](tr.dfa.Initial())}

	gen := 0
	for len(currentTails) > 0 {
		if tr.cfg.MaxGenerations > 0 && gen >= tr.cfg.MaxGenerations {
			break
		}

		var nextTails []*record.Record[S]
		for i, t := range currentTails {
			if !tr.pruner.LoopFree(t) {
				continue
			}
			if !tr.pruner.UsefulAlternative(t, e.finals, currentTails[:i]) {
				continue
			}
			if e.isFinal(t, tr.dfa, input) {
				e.finals = append(e.finals, t)
				continue
			}
			for _, child := range tr.expand(t, e, input) {
				nextTails = insertByMissingCount(nextTails, child)
			}
		}

		logger.Printf("whynot: run=%s generation=%d tails=%d finals=%d", runID, gen, len(currentTails), len(e.finals))
		currentTails = nextTails
		gen++
	}

	logger.Printf("whynot: run=%s complete finals=%d generations=%d", runID, len(e.finals), gen)
	return e.finals
}
