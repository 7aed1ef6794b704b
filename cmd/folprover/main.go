// Command folprover reads a first-order formula from stdin and prints
// "1" if it is a tautology, "0" otherwise.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gitrdm/folprover/internal/fol"
	"github.com/gitrdm/folprover/internal/prover"
	"github.com/gitrdm/folprover/internal/proverlog"
	"github.com/gitrdm/folprover/internal/surface"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging of the probing schedule")
	bound := flag.Int("bound", prover.DefaultBoundFactor, "give up once prefix_size/n exceeds this factor")
	flag.Parse()

	os.Exit(run(os.Stdin, os.Stdout, *debug, *bound))
}

func run(in io.Reader, out io.Writer, debug bool, bound int) (exitCode int) {
	logger := proverlog.New("folprover", debug, os.Stderr)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("internal invariant violation", "panic", r)
			exitCode = 2
		}
	}()

	raw, err := io.ReadAll(in)
	if err != nil {
		logger.Error("failed to read stdin", "error", err)
		return 1
	}

	ast, err := surface.Parse(string(raw))
	if err != nil {
		logger.Error("failed to parse formula", "error", err)
		return 1
	}

	interner := fol.NewInterner()
	formula := fol.Translate(interner, ast)

	tautology := prover.IsTautology(interner, formula, prover.Options{
		BoundFactor: bound,
		Logger:      logger,
	})

	if tautology {
		fmt.Fprintln(out, "1")
	} else {
		fmt.Fprintln(out, "0")
	}
	return 0
}
