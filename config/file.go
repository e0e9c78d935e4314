// Package config loads a DFA description from a YAML file and builds
// the automaton.Definition the core traversal package consumes.
//
// Parsing and validating an external description is explicitly out of
// scope for the automaton package itself; that package only ever sees
// a Definition that has already passed through Build.
package config

import (
	"os"

	"github.com/coregx/whynot/automaton"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// TransitionEntry is one edge in a Description's transition list.
type TransitionEntry struct {
	From   string `yaml:"from"`
	Symbol string `yaml:"symbol"`
	To     string `yaml:"to"`
}

// Description is the raw, name-keyed shape a DFA is authored in. States
// are referred to by name everywhere rather than by dense index, which
// Build assigns from the order States lists them in.
type Description struct {
	States      []string          `yaml:"states"`
	Initial     string            `yaml:"initial"`
	Final       []string          `yaml:"final"`
	Transitions []TransitionEntry `yaml:"transitions"`
}

// Load reads and parses a Description from path.
func Load(path string) (Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Description{}, err
	}

	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return Description{}, errors.Wrapf(err, "yaml.Unmarshal %s", path)
	}
	return desc, nil
}

// Build validates d and converts it into an automaton.Definition[string]
// over the symbol alphabet as written in the file: dense state indices
// assigned in the order d.States lists them.
func (d Description) Build() (automaton.Definition[string], error) {
	if len(d.States) == 0 {
		return automaton.Definition[string]{}, newError(NoStates, "config: description lists no states")
	}

	index := make(map[string]automaton.StateID, len(d.States))
	for i, name := range d.States {
		index[name] = automaton.StateID(i)
	}

	initial, ok := index[d.Initial]
	if !ok {
		return automaton.Definition[string]{}, newError(UnknownStateRef, "config: initial state %q is not in states", d.Initial)
	}

	final := make([]automaton.StateID, 0, len(d.Final))
	for _, name := range d.Final {
		id, ok := index[name]
		if !ok {
			return automaton.Definition[string]{}, newError(UnknownStateRef, "config: final state %q is not in states", name)
		}
		final = append(final, id)
	}

	transitions := make([][]automaton.Transition[string], len(d.States))
	for _, e := range d.Transitions {
		if e.Symbol == "" {
			return automaton.Definition[string]{}, newError(EmptySymbol, "config: transition from %q to %q has an empty symbol", e.From, e.To)
		}
		from, ok := index[e.From]
		if !ok {
			return automaton.Definition[string]{}, newError(UnknownStateRef, "config: transition references unknown state %q", e.From)
		}
		to, ok := index[e.To]
		if !ok {
			return automaton.Definition[string]{}, newError(UnknownStateRef, "config: transition references unknown state %q", e.To)
		}
		transitions[from] = append(transitions[from], automaton.Transition[string]{Symbol: e.Symbol, Target: to})
	}

	return automaton.Definition[string]{
		InitialState: initial,
		NumStates:    len(d.States),
		Transitions:  transitions,
		FinalStates:  final,
	}, nil
}

// LoadDefinition is a convenience wrapper combining Load and Build for
// callers that just want a ready-to-use Definition from a file path.
func LoadDefinition(path string) (automaton.Definition[string], error) {
	desc, err := Load(path)
	if err != nil {
		return automaton.Definition[string]{}, errors.Wrapf(err, "config.Load %s", path)
	}
	return desc.Build()
}
