// Package repl implements the interactive loop of the betwixt command: read a
// line, print its transform with a caret under the start offset, then print
// the inverted text.
//
//	text> banana
//
//	nnbaaa
//	   ^
//
//	banana
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/katalvlaran/betwixt/bwt"
	"github.com/katalvlaran/betwixt/internal/ctxlog"
	"github.com/katalvlaran/betwixt/internal/trace"
)

// Prompt is written before every line is read.
const Prompt = "text> "

// ErrMismatch indicates that a line did not survive the round trip.
var ErrMismatch = errors.New("repl: round trip mismatch")

// Options configures Run.
type Options struct {
	Verbose bool
	Origin  bwt.Origin
}

// Option represents a functional option for Run.
type Option func(*Options)

// WithVerbose writes the rotation matrix and pairing table for every line.
func WithVerbose(v bool) Option {
	return func(o *Options) {
		o.Verbose = v
	}
}

// WithOrigin selects the origin convention used in both directions.
func WithOrigin(origin bwt.Origin) Option {
	return func(o *Options) {
		o.Origin = origin
	}
}

// Run reads lines from in until an empty line, EOF or ctx cancellation and
// writes the results to out. Lines are handled as runes so the caret lines up
// under multi-byte characters.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts ...Option) error {
	o := Options{Origin: bwt.OriginFirst}
	for _, opt := range opts {
		opt(&o)
	}
	log := ctxlog.Get(ctx)
	w := bufio.NewWriter(out)
	sc := bufio.NewScanner(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := w.WriteString(Prompt); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read line: %w", err)
			}
			return nil
		}
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			return nil
		}

		if err := process(w, []rune(line), o); err != nil {
			log.Error("line failed", "line", line, "error", err)
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
		log.Debug("line processed", "length", len(line))
	}
}

func process(w io.Writer, s []rune, o Options) error {
	bo := bwt.WithOrigin(o.Origin)

	if o.Verbose && len(s) >= 2 {
		if err := trace.Forward(w, s); err != nil {
			return err
		}
	}
	last, start := bwt.Transform(s, bo)
	if _, err := fmt.Fprintf(w, "\n%s\n%s^\n\n", string(last), strings.Repeat(" ", start)); err != nil {
		return err
	}

	if o.Verbose && len(s) >= 2 {
		if err := trace.Inverse(w, last, start); err != nil {
			return err
		}
	}
	back, err := bwt.Invert(last, start, bo)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMismatch, err)
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", string(back)); err != nil {
		return err
	}
	if !slices.Equal(back, s) {
		return fmt.Errorf("%w: %q became %q", ErrMismatch, string(s), string(back))
	}
	return nil
}
