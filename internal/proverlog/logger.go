// Package proverlog centralizes the hclog configuration shared by the
// prover driver and the command-line front end, so that both log
// through one named, leveled logger instead of the bare log package.
package proverlog

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// New builds the root logger. debug raises the level to Debug; callers
// that only want Info-and-above pass debug=false.
func New(name string, debug bool, out io.Writer) hclog.Logger {
	if out == nil {
		out = os.Stderr
	}
	level := hclog.Info
	if debug {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  name,
		Level: level,
		Output: out,
	})
}

// Discard is a no-op logger for tests that exercise a component's
// logging calls without asserting on their content.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}
