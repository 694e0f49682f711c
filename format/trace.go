// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"cardscope/luhn"
)

// TraceRenderer writes a step-by-step checksum trace as a small text
// table. Colors are applied only when the destination is a terminal
// and NoColor is unset.
type TraceRenderer struct {
	NoColor bool

	colors map[string]*color.Color
}

// NewTraceRenderer creates a renderer with the standard color palette.
func NewTraceRenderer() *TraceRenderer {
	return &TraceRenderer{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"yellow": color.New(color.FgYellow),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

// Render writes the trace to w. A nil trace writes nothing.
func (r *TraceRenderer) Render(w io.Writer, t *luhn.Trace) error {
	if t == nil {
		return nil
	}
	useColor := !r.NoColor && isTerminal(w)
	paint := func(name, s string) string {
		if !useColor {
			return s
		}
		return r.colors[name].Sprint(s)
	}

	fmt.Fprintf(w, "%s %s\n", paint("white", "Checksum trace for"), Mask(t.Input))
	fmt.Fprintf(w, "%-4s %-6s %-8s %-6s %s\n", "pos", "digit", "doubled", "value", "sum")
	for _, s := range t.Steps {
		doubled := "-"
		if s.Doubled {
			doubled = "x2"
		}
		line := fmt.Sprintf("%-4d %-6d %-8s %-6d %d", s.Position, s.Digit, doubled, s.Value, s.RunningSum)
		if s.Doubled {
			line = paint("cyan", line)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, strings.Repeat("-", 32))
	verdict := paint("green", "PASS")
	if !t.Valid {
		verdict = paint("red", "FAIL")
	}
	fmt.Fprintf(w, "total %d (mod 10 = %d): %s\n", t.Total, t.Total%10, verdict)
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
