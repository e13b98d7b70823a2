// Command betwixt demonstrates the Burrows-Wheeler Transform: it can run a
// randomised round-trip self test, an interactive loop, or both.
//
//	betwixt -t            run the self test
//	betwixt -r            read lines and show their transform
//	betwixt -t -v         self test with intermediate steps
//	betwixt -config f.yml load settings from a YAML file
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/betwixt/bwt"
	"github.com/katalvlaran/betwixt/internal/config"
	"github.com/katalvlaran/betwixt/internal/ctxlog"
	"github.com/katalvlaran/betwixt/internal/repl"
	"github.com/katalvlaran/betwixt/internal/selftest"
)

const descr = `A Go implementation of the Burrows-Wheeler Transform
for exploring "Better Compression with a Reversible Sort".`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("betwixt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: betwixt [-t] [-r] [-v] [flags]\n\n%s\n\n", descr)
		fs.PrintDefaults()
	}

	var test, verbose, interactive bool
	fs.BoolVar(&test, "t", false, "run fuzz tests")
	fs.BoolVar(&test, "test", false, "run fuzz tests")
	fs.BoolVar(&verbose, "v", false, "show intermediate steps")
	fs.BoolVar(&verbose, "verbose", false, "show intermediate steps")
	fs.BoolVar(&interactive, "r", false, "run a REPL")
	fs.BoolVar(&interactive, "repl", false, "run a REPL")
	cfgPath := fs.String("config", "", "YAML configuration file")
	ceil := fs.Int("ceil", 0, "self test: number of lengths to test")
	seed := fs.Int64("seed", 0, "self test: random seed")
	workers := fs.Int("workers", 0, "self test: concurrent cases")
	origin := fs.String("origin", "", "start offset convention: first or second")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(ctx, *cfgPath); err != nil {
			fmt.Fprintln(stderr, "betwixt:", err)
			return 1
		}
	}

	// Flags override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v", "verbose":
			cfg.Verbose = verbose
		case "ceil":
			cfg.Selftest.Ceil = *ceil
		case "seed":
			cfg.Selftest.Seed = *seed
		case "workers":
			cfg.Selftest.Workers = *workers
		case "origin":
			cfg.Transform.Origin = *origin
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "betwixt:", err)
		return 2
	}

	ctx, err := ctxlog.Setup(ctx, stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(stderr, "betwixt:", err)
		return 2
	}
	log := ctxlog.Get(ctx)

	if !test && !interactive {
		fs.Usage()
		return 0
	}

	if test {
		stc := selftest.Config{
			Ceil:    cfg.Selftest.Ceil,
			Seed:    cfg.Selftest.Seed,
			Workers: cfg.Selftest.Workers,
		}
		if cfg.Verbose {
			stc.Trace = stdout
		}
		if _, err := selftest.Run(ctx, stc, bwt.WithOrigin(cfg.Origin())); err != nil {
			log.Error("self test failed", "error", err)
			return 1
		}
	}

	if interactive {
		err := repl.Run(ctx, stdin, stdout,
			repl.WithVerbose(cfg.Verbose),
			repl.WithOrigin(cfg.Origin()),
		)
		if err != nil {
			log.Error("repl failed", "error", err)
			return 1
		}
	}

	return 0
}
