// Package betwixt is a small playground for the Burrows-Wheeler Transform,
// the reversible sort behind bzip2 and FM-index search.
//
// 🚀 What is in here?
//
//	bwt/               — the transform itself: rotation sorting, forward and
//	                     inverse transforms, the standard permutation
//	cmd/betwixt/       — command line: randomised self test and an interactive
//	                     loop that shows each step
//	internal/selftest/ — concurrent round-trip checks over generated inputs
//	internal/repl/     — line reader used by the command
//	internal/trace/    — text rendering of rotation matrices and pairings
//	internal/config/   — YAML configuration
//	internal/ctxlog/   — slog logger carried in context
//
// Quick example:
//
//	last, start := bwt.TransformString("banana") // "nnbaaa", 3
//	back, _ := bwt.InvertString(last, start)     // "banana"
//
//	go install github.com/katalvlaran/betwixt/cmd/betwixt@latest
package betwixt
