package sequence

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// ErrContractViolation is the error carried by the panic raised when the
// generator state no longer satisfies the recurrence. It indicates a bug,
// never bad input.
var ErrContractViolation = errors.New("sequence: contract violation")

// A Generator produces the Kolakoski sequence one run at a time. Each call to
// Next reads back a previously emitted symbol to decide the length of the new
// run, while the parity of the step counter selects its symbol.
type Generator struct {
	history []uint8
	last    Run
	step    int
	logger  *slog.Logger
}

// New creates and initializes a new Generator with an empty history.
func New(opts ...Option) *Generator {
	g := &Generator{
		last:   Single(0),
		logger: newNopLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next produces the next run of the sequence. Steps 0 and 1 are seeded with
// Single(1) and Double(2,2). From step 2 onwards the symbol at position step
// of the history gives the run length, 1 or 2, and the step parity gives the
// symbol, 1 on even steps and 2 on odd steps.
//
// Next panics with an error wrapping ErrContractViolation if the lookup falls
// outside the history, which cannot happen on a generator created by New.
func (g *Generator) Next() Run {
	var r Run
	switch g.step {
	case 0:
		r = Single(SymbolOne)
	case 1:
		r = Double(SymbolTwo)
	default:
		v := SymbolOne
		if !g.IsStepEven() {
			v = SymbolTwo
		}
		if g.lookup() == SymbolOne {
			r = Single(v)
		} else {
			r = Double(v)
		}
	}
	g.history = r.AppendTo(g.history)
	g.last = r
	g.step++
	if g.logger.Enabled(context.Background(), slog.LevelDebug) {
		g.logger.Debug("run produced", "step", g.step-1, "run", r, "history_len", len(g.history))
	}
	return r
}

// lookup returns history[step].
func (g *Generator) lookup() uint8 {
	if g.step < 0 || g.step >= len(g.history) {
		g.violation(fmt.Errorf("%w: history index %d out of range [0:%d]", ErrContractViolation, g.step, len(g.history)))
	}
	x := g.history[g.step]
	if x != SymbolOne && x != SymbolTwo {
		g.violation(fmt.Errorf("%w: history[%d] = %d, want 1 or 2", ErrContractViolation, g.step, x))
	}
	return x
}

func (g *Generator) violation(err error) {
	g.logger.Error("generator state corrupted", "err", err, "step", g.step)
	panic(err)
}

// All returns an unbounded sequence of runs backed by Next. The sequence
// shares the generator progress: breaking out of a range loop and ranging
// again continues after the last produced run.
func (g *Generator) All() iter.Seq[Run] {
	return func(yield func(Run) bool) {
		for {
			if !yield(g.Next()) {
				return
			}
		}
	}
}

// Step returns the number of runs produced so far.
func (g *Generator) Step() int {
	return g.step
}

// IsStepEven reports whether the next run is produced on an even step.
func (g *Generator) IsStepEven() bool {
	return g.step%2 == 0
}

// Last returns the most recently produced run, or the Single(0) seed if Next
// was never called.
func (g *Generator) Last() Run {
	return g.last
}

// Len returns the number of symbols emitted so far.
func (g *Generator) Len() int {
	return len(g.history)
}

// History returns a copy of every symbol emitted so far, in order.
func (g *Generator) History() []uint8 {
	return slices.Clone(g.history)
}
