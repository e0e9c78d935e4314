/*
Whynot runs the minimal-completion traversal against a DFA description
and one or more input files, printing every accepted derivation trace.

Usage:

	whynot -d FILE [-v] [INPUT...]

The flags are:

	-d, --dfa FILE
		YAML DFA description to load. Required.

	-v, --verbose
		Log one line per BFS generation to stderr.

If no INPUT arguments are given, symbols are read one per line from
stdin. Multiple INPUT files are processed in sequence, each in its own
traversal run against the DFA loaded once at startup; this is a
convenience for running the same DFA over a batch of inputs, not a
streaming pipeline.
*/
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/coregx/whynot/automaton"
	"github.com/coregx/whynot/config"
	"github.com/coregx/whynot/record"
	"github.com/coregx/whynot/traverse"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates every input file was processed without error.
	ExitSuccess = iota

	// ExitLoadError indicates the DFA description failed to load or build.
	ExitLoadError

	// ExitRunError indicates an input file could not be read.
	ExitRunError
)

var (
	returnCode int

	dfaFile = pflag.StringP("dfa", "d", "", "YAML DFA description file (required)")
	verbose = pflag.BoolP("verbose", "v", false, "log one line per BFS generation to stderr")
)

func main() {
	defer func() { os.Exit(returnCode) }()

	pflag.Parse()

	if *dfaFile == "" {
		fmt.Fprintln(os.Stderr, "ERROR: -d/--dfa is required")
		returnCode = ExitLoadError
		return
	}

	def, err := config.LoadDefinition(*dfaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: loading %s: %v\n", *dfaFile, err)
		returnCode = ExitLoadError
		return
	}

	dfa, err := automaton.New(def)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: building automaton: %v\n", err)
		returnCode = ExitLoadError
		return
	}

	tr, err := traverse.New(dfa, traverse.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		returnCode = ExitLoadError
		return
	}

	ctx := context.Background()
	if *verbose {
		ctx = traverse.WithLogger(ctx, log.New(os.Stderr, "", log.LstdFlags))
	}

	files := pflag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	for _, f := range files {
		if err := runOne(ctx, tr, f); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s: %v\n", f, err)
			returnCode = ExitRunError
		}
	}
}

func runOne(ctx context.Context, tr *traverse.Traverser[string], path string) error {
	symbols, err := readSymbols(path)
	if err != nil {
		return err
	}

	finals := tr.Execute(ctx, traverse.FromSlice(symbols))
	if len(finals) == 0 {
		fmt.Printf("%s: no completion reaches an accepting state\n", path)
		return nil
	}

	for i, f := range finals {
		fmt.Printf("%s: completion %d:\n", path, i+1)
		printTrace(f)
	}
	return nil
}

func printTrace(final *record.Record[string]) {
	for _, step := range final.Chain() {
		if step.Prev() == nil {
			continue
		}
		if step.Accepted() {
			fmt.Printf("  accept %q -> state %d\n", step.Characters()[0], step.TargetState())
		} else {
			fmt.Printf("  insert one of %v -> state %d\n", step.Characters(), step.TargetState())
		}
	}
}

func readSymbols(path string) ([]string, error) {
	var f *os.File
	if path == "-" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}

	var symbols []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		symbols = append(symbols, line)
	}
	return symbols, scanner.Err()
}
