package record

import "testing"

func TestNewInitial(t *testing.T) {
	r := NewInitial[string](0)
	if r.Prev() != nil {
		t.Error("initial record should have no prev")
	}
	if r.TargetState() != 0 {
		t.Errorf("target state = %d, want 0", r.TargetState())
	}
	if !r.Accepted() {
		t.Error("initial record should be accepted")
	}
	if r.AcceptedCount() != 0 {
		t.Errorf("accepted count = %d, want 0", r.AcceptedCount())
	}
	if r.LastAcceptRecord() != r {
		t.Error("initial record should be its own last-accept record")
	}
}

func TestNewAccept(t *testing.T) {
	init := NewInitial[string](0)
	a := NewAccept(init, "x", StateID(1))

	if a.TargetState() != 1 {
		t.Errorf("target state = %d, want 1", a.TargetState())
	}
	if len(a.Characters()) != 1 || a.Characters()[0] != "x" {
		t.Errorf("characters = %v, want [x]", a.Characters())
	}
	if a.AcceptedCount() != 1 {
		t.Errorf("accepted count = %d, want 1", a.AcceptedCount())
	}
	if a.MissingCount() != 0 {
		t.Errorf("missing count = %d, want 0", a.MissingCount())
	}
	if a.LastAcceptRecord() != a {
		t.Error("accept record should be its own last-accept record")
	}
}

func TestNewMissing(t *testing.T) {
	init := NewInitial[string](0)
	m := NewMissing(init, []string{"a", "b"}, StateID(1))

	if m.Accepted() {
		t.Error("missing record should not be accepted")
	}
	if m.AcceptedCount() != 0 {
		t.Errorf("accepted count = %d, want 0", m.AcceptedCount())
	}
	if m.MissingCount() != 1 {
		t.Errorf("missing count = %d, want 1", m.MissingCount())
	}
	if m.LastAcceptRecord() != init {
		t.Error("missing record should inherit initial's last-accept record")
	}
}

func TestNewPartialMissing(t *testing.T) {
	init := NewInitial[string](0)
	pm := NewPartialMissing(init, []string{"a", "b", "c"}, "b", StateID(1))

	want := []string{"a", "c"}
	got := pm.Characters()
	if len(got) != len(want) {
		t.Fatalf("characters = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("characters = %v, want %v", got, want)
		}
	}
}

func TestPartialMissingRemovesFirstMatchOnly(t *testing.T) {
	init := NewInitial[string](0)
	pm := NewPartialMissing(init, []string{"a", "a", "b"}, "a", StateID(1))
	want := []string{"a", "b"}
	got := pm.Characters()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("characters = %v, want %v", got, want)
	}
}

func TestHasLoopsDetectsRepeatAtSameAcceptedCount(t *testing.T) {
	// state 0 --missing--> state 0, no real input consumed: a loop.
	init := NewInitial[string](0)
	m := NewMissing(init, []string{"a"}, StateID(0))
	if !m.HasLoops(0) {
		t.Error("expected HasLoops to detect re-entry into state 0 at accepted count 0")
	}
}

func TestHasLoopsFalseWhenAcceptedCountAdvances(t *testing.T) {
	// state 0 --accept--> state 1 --accept--> state 0: same state,
	// different accepted counts, not a loop.
	init := NewInitial[string](0)
	a1 := NewAccept(init, "a", StateID(1))
	a2 := NewAccept(a1, "a", StateID(0))
	if a2.HasLoops(0) {
		t.Error("expected HasLoops to be false: accepted count advanced")
	}
}

func TestIsPartialOf(t *testing.T) {
	init := NewInitial[string](0)
	full := NewMissing(init, []string{"a", "b", "c"}, StateID(1))
	partial := NewMissing(init, []string{"a", "c"}, StateID(1))

	if !partial.IsPartialOf(full) {
		t.Error("expected partial to be a partial-of full")
	}
	if full.IsPartialOf(partial) {
		t.Error("full should not be a partial-of a shorter list")
	}
}

func TestIsPartialOfRequiresSameTargetAndBothMissing(t *testing.T) {
	init := NewInitial[string](0)
	full := NewMissing(init, []string{"a", "b"}, StateID(1))
	otherTarget := NewMissing(init, []string{"a"}, StateID(2))
	accept := NewAccept(init, "a", StateID(1))

	if otherTarget.IsPartialOf(full) {
		t.Error("different target state should not be partial-of")
	}
	if accept.IsPartialOf(full) {
		t.Error("accept record should never be partial-of a missing record")
	}
}
