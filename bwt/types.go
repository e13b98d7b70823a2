package bwt

import (
	"cmp"
	"errors"
)

// Sentinel errors returned by Invert.
var (
	// ErrOutOfRange indicates that the start offset passed to Invert does not
	// name a row of the transformed sequence, i.e. start ∉ [0, len).
	ErrOutOfRange = errors.New("bwt: start offset out of range")

	// ErrMalformedInput indicates that the transformed sequence and start
	// offset could not have been produced by Transform: the reconstruction
	// walk does not cover every row before returning to the start row.
	ErrMalformedInput = errors.New("bwt: malformed transformed input")
)

// Origin selects which rotation the start offset refers to.
//
//   - OriginFirst  — the rotation beginning at offset 0 (the input itself).
//   - OriginSecond — the rotation beginning at offset 1. Offsets match the
//     original betwixt tool bit for bit.
type Origin int

const (
	// OriginFirst reports the sorted row of the input's own rotation.
	OriginFirst Origin = iota

	// OriginSecond reports the sorted row of the rotation starting at the
	// second symbol.
	OriginSecond
)

// String returns a short lowercase name of the origin.
func (o Origin) String() string {
	switch o {
	case OriginFirst:
		return "first"
	case OriginSecond:
		return "second"
	default:
		return "unknown"
	}
}

// offset returns the rotation start position this origin refers to.
func (o Origin) offset() int {
	if o == OriginSecond {
		return 1
	}
	return 0
}

// Options configures Transform and Invert.
//
// Origin – rotation the start offset refers to (default OriginFirst).
type Options struct {
	Origin Origin
}

// Option represents a functional option for Transform and Invert.
type Option func(*Options)

// WithOrigin sets the origin convention. Unknown values fall back to
// OriginFirst.
func WithOrigin(o Origin) Option {
	return func(opts *Options) {
		if o != OriginSecond {
			o = OriginFirst
		}
		opts.Origin = o
	}
}

// DefaultOptions returns Options with the classic convention (OriginFirst).
func DefaultOptions() Options {
	return Options{Origin: OriginFirst}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// occurrence is a symbol tagged with its 1-based rank among equal symbols
// seen so far in one sequence. Within a sequence occurrences are unique.
type occurrence[E cmp.Ordered] struct {
	symbol E
	rank   int
}

// compare orders occurrences by symbol, then by rank.
func (a occurrence[E]) compare(b occurrence[E]) int {
	if c := cmp.Compare(a.symbol, b.symbol); c != 0 {
		return c
	}
	return cmp.Compare(a.rank, b.rank)
}
