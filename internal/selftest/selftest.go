// Package selftest runs randomised round-trip checks of the bwt package.
//
// For every length i in [0, Ceil) two cases are generated:
//
//   - random/i  — i printable bytes drawn from a per-case seeded stream;
//   - periodic/i — "aaaaaaaaab" repeated i/10 times followed by i%10 'a's,
//     which produces many equal rotations and exercises tie-breaking.
//
// Each case asserts Invert(Transform(s)) == s. Cases run concurrently; the
// first failure cancels the remaining ones.
package selftest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/betwixt/bwt"
	"github.com/katalvlaran/betwixt/internal/ctxlog"
	"github.com/katalvlaran/betwixt/internal/trace"
)

// ErrRoundTrip indicates that a case did not survive Transform then Invert.
var ErrRoundTrip = errors.New("selftest: round trip failed")

// Config controls case generation and execution.
type Config struct {
	// Ceil is the number of lengths to test; lengths are 0..Ceil-1.
	Ceil int
	// Seed selects the random streams. Equal seeds give equal cases.
	Seed int64
	// Workers bounds the number of cases in flight (minimum 1).
	Workers int
	// Trace, when non-nil, receives the intermediate state of every case.
	Trace io.Writer
}

// Case is one generated input.
type Case struct {
	Name  string
	Input []byte
}

// CaseError reports the failing case and the cause.
type CaseError struct {
	Case Case
	Err  error
}

func (e *CaseError) Error() string {
	return fmt.Sprintf("case %s (%q): %v", e.Case.Name, e.Case.Input, e.Err)
}

func (e *CaseError) Unwrap() error { return e.Err }

// Report summarises a successful run.
type Report struct {
	Cases   int
	Symbols int
	Elapsed time.Duration
}

// Cases returns the generated cases in order: random/0, periodic/0,
// random/1, periodic/1, …
func Cases(ceil int, seed int64) []Case {
	cases := make([]Case, 0, 2*max(ceil, 0))
	for i := 0; i < ceil; i++ {
		cases = append(cases,
			Case{Name: fmt.Sprintf("random/%d", i), Input: randText(caseRNG(seed, i), i)},
			Case{Name: fmt.Sprintf("periodic/%d", i), Input: periodic(i)},
		)
	}
	return cases
}

func periodic(i int) []byte {
	b := bytes.Repeat([]byte("aaaaaaaaab"), i/10)
	return append(b, bytes.Repeat([]byte("a"), i%10)...)
}

// Run generates the cases for cfg and checks each round trip with opts.
// It returns a *CaseError wrapping ErrRoundTrip on the first failure, or the
// context error if ctx is cancelled first.
func Run(ctx context.Context, cfg Config, opts ...bwt.Option) (Report, error) {
	log := ctxlog.Get(ctx)
	began := time.Now()
	cases := Cases(cfg.Ceil, cfg.Seed)

	// Traces are buffered per case and written in case order after Wait.
	var traces [][]byte
	if cfg.Trace != nil {
		traces = make([][]byte, len(cases))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))

	symbols := 0
	for i, c := range cases {
		if gctx.Err() != nil {
			break
		}
		symbols += len(c.Input)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var w io.Writer
			if traces != nil {
				buf := &bytes.Buffer{}
				defer func() { traces[i] = buf.Bytes() }()
				w = buf
			}
			if err := Check(c, w, opts...); err != nil {
				return err
			}
			log.Debug("case passed", "case", c.Name, "length", len(c.Input))
			return nil
		})
	}

	err := g.Wait()
	if werr := writeTraces(cfg.Trace, traces); werr != nil && err == nil {
		err = werr
	}
	if err != nil {
		log.Error("selftest failed", "error", err)
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	rep := Report{Cases: len(cases), Symbols: symbols, Elapsed: time.Since(began)}
	log.Info("selftest passed", "cases", rep.Cases, "symbols", rep.Symbols, "elapsed", rep.Elapsed)
	return rep, nil
}

func writeTraces(w io.Writer, traces [][]byte) error {
	for _, t := range traces {
		if len(t) == 0 {
			continue
		}
		if _, err := w.Write(t); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
	}
	return nil
}

// Check runs one round trip. When w is non-nil the rotation matrix and the
// pairing table are written to it.
func Check(c Case, w io.Writer, opts ...bwt.Option) error {
	last, start := bwt.Transform(c.Input, opts...)
	if w != nil && len(c.Input) >= 2 {
		if err := trace.Forward(w, c.Input); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
		if err := trace.Inverse(w, last, start); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
	}

	back, err := bwt.Invert(last, start, opts...)
	if err != nil {
		return &CaseError{Case: c, Err: fmt.Errorf("%w: %w", ErrRoundTrip, err)}
	}
	if !bytes.Equal(back, c.Input) {
		return &CaseError{Case: c, Err: fmt.Errorf("%w: got %q", ErrRoundTrip, back)}
	}
	return nil
}
