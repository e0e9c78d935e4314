package automaton

import (
	"errors"
	"testing"
)

func simpleDef() Definition[string] {
	// states {0,1,2}, δ(0,a)=1, δ(0,b)=1, δ(1,c)=2, F={2}
	return Definition[string]{
		InitialState: 0,
		NumStates:    3,
		Transitions: [][]Transition[string]{
			{{Symbol: "a", Target: 1}, {Symbol: "b", Target: 1}},
			{{Symbol: "c", Target: 2}},
			{},
		},
		FinalStates: []StateID{2},
	}
}

func TestNewValidDefinition(t *testing.T) {
	dfa, err := New(simpleDef())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if dfa.Initial() != 0 {
		t.Errorf("Initial() = %d, want 0", dfa.Initial())
	}
	if !dfa.IsFinal(2) || dfa.IsFinal(0) || dfa.IsFinal(1) {
		t.Error("final state membership wrong")
	}
}

func TestStep(t *testing.T) {
	dfa, _ := New(simpleDef())
	if target, ok := dfa.Step(0, "a"); !ok || target != 1 {
		t.Errorf("Step(0,a) = (%d,%v), want (1,true)", target, ok)
	}
	if _, ok := dfa.Step(0, "z"); ok {
		t.Error("Step(0,z) should be undefined")
	}
}

func TestGroupedReverseGroupsByTarget(t *testing.T) {
	dfa, _ := New(simpleDef())
	groups := dfa.GroupedReverse(0)
	if len(groups) != 1 {
		t.Fatalf("expected a single group (both a and b reach state 1), got %d", len(groups))
	}
	if groups[0].Target != 1 {
		t.Errorf("group target = %d, want 1", groups[0].Target)
	}
	want := []string{"a", "b"}
	if len(groups[0].Symbols) != 2 || groups[0].Symbols[0] != want[0] || groups[0].Symbols[1] != want[1] {
		t.Errorf("group symbols = %v, want %v", groups[0].Symbols, want)
	}
}

func TestSymbolsTo(t *testing.T) {
	dfa, _ := New(simpleDef())
	syms, ok := dfa.SymbolsTo(0, 1)
	if !ok || len(syms) != 2 {
		t.Fatalf("SymbolsTo(0,1) = (%v,%v)", syms, ok)
	}
	if _, ok := dfa.SymbolsTo(0, 2); ok {
		t.Error("SymbolsTo(0,2) should not exist")
	}
}

func TestNewRejectsOutOfRangeInitialState(t *testing.T) {
	def := simpleDef()
	def.InitialState = 5
	_, err := New(def)
	var autoErr *Error
	if !errors.As(err, &autoErr) || autoErr.Kind != InvalidInitialState {
		t.Fatalf("expected InvalidInitialState error, got %v", err)
	}
}

func TestNewRejectsOutOfRangeTarget(t *testing.T) {
	def := simpleDef()
	def.Transitions[0] = append(def.Transitions[0], Transition[string]{Symbol: "z", Target: 99})
	_, err := New(def)
	var autoErr *Error
	if !errors.As(err, &autoErr) || autoErr.Kind != InvalidTarget {
		t.Fatalf("expected InvalidTarget error, got %v", err)
	}
}

func TestNewRejectsDuplicateSymbol(t *testing.T) {
	def := simpleDef()
	def.Transitions[0] = append(def.Transitions[0], Transition[string]{Symbol: "a", Target: 2})
	_, err := New(def)
	var autoErr *Error
	if !errors.As(err, &autoErr) || autoErr.Kind != DuplicateSymbol {
		t.Fatalf("expected DuplicateSymbol error, got %v", err)
	}
}

func TestNewRejectsOutOfRangeFinalState(t *testing.T) {
	def := simpleDef()
	def.FinalStates = append(def.FinalStates, 42)
	_, err := New(def)
	var autoErr *Error
	if !errors.As(err, &autoErr) || autoErr.Kind != InvalidFinalState {
		t.Fatalf("expected InvalidFinalState error, got %v", err)
	}
}

func TestSelfLoopDFA(t *testing.T) {
	// δ(0,'a')=0, F={0}
	def := Definition[string]{
		InitialState: 0,
		NumStates:    1,
		Transitions: [][]Transition[string]{
			{{Symbol: "a", Target: 0}},
		},
		FinalStates: []StateID{0},
	}
	dfa, err := New(def)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if target, ok := dfa.Step(0, "a"); !ok || target != 0 {
		t.Errorf("Step(0,a) = (%d,%v), want (0,true)", target, ok)
	}
}
