// Command dotlayout loads a .dot file, lays the graph out, and writes the
// rendered SVG to disk: the Go counterpart of the reference crate's run
// binary.
package main

import (
	"context"
	"fmt"
	"os"

	"cdr.dev/slog"
	"cdr.dev/slog/sloggers/sloghuman"
	"github.com/spf13/pflag"
	"golang.org/x/xerrors"

	"github.com/dotlayout/dotlayout/builder"
	"github.com/dotlayout/dotlayout/dot"
	"github.com/dotlayout/dotlayout/pipeline"
	"github.com/dotlayout/dotlayout/svgsink"
	"github.com/dotlayout/dotlayout/watch"
)

func main() {
	var (
		debug      = pflag.BoolP("debug", "d", false, "enable debug options")
		noLayout   = pflag.Bool("no-layout", false, "disable the node layout pass")
		noOptz     = pflag.Bool("no-optz", false, "disable the graph optimizations")
		dumpAST    = pflag.BoolP("ast", "a", false, "dump the graph AST instead of rendering")
		outputPath = pflag.StringP("output", "o", "/tmp/out.svg", "path of the output file")
		watchAddr  = pflag.StringP("watch", "w", "", "serve a live-reloading preview on this address instead of writing a file (e.g. :8080)")
	)
	pflag.Parse()

	log := sloghuman.Make(os.Stderr)
	ctx := context.Background()

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dotlayout [flags] INPUT.dot")
		pflag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := pflag.Arg(0)

	if *watchAddr != "" {
		if err := watch.Serve(ctx, log, *watchAddr, inputPath, pipeline.Options{
			Debug:                *debug,
			DisableOptimizations: *noOptz,
			DisableLayout:        *noLayout,
		}); err != nil {
			log.Fatal(ctx, "watch server failed", slog.Error(err))
		}
		return
	}

	contents, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatal(ctx, "can't open input file", slog.Error(err))
	}

	ast, err := dot.NewParser(string(contents)).Parse()
	if err != nil {
		var perr *dot.ParseError
		if xerrors.As(err, &perr) {
			fmt.Fprintln(os.Stderr, perr.Context())
		}
		log.Fatal(ctx, "could not parse input", slog.Error(err))
	}

	if *dumpAST {
		dot.DumpAST(os.Stdout, ast)
		return
	}

	vg, warn := builder.Build(ast)
	if warn != nil {
		log.Warn(ctx, "attribute warnings while building graph", slog.Error(warn))
	}

	sink := svgsink.New()
	pipeline.Run(ctx, log, vg, sink, pipeline.Options{
		Debug:                *debug,
		DisableOptimizations: *noOptz,
		DisableLayout:        *noLayout,
	})

	if err := os.WriteFile(*outputPath, []byte(sink.Finalize()), 0o644); err != nil {
		log.Fatal(ctx, "could not write output file", slog.F("path", *outputPath), slog.Error(err))
	}
	log.Info(ctx, "wrote output", slog.F("path", *outputPath))
}
