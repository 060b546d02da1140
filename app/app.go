package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/on-the-ground/collatz_ive_go/driver"
	"github.com/on-the-ground/collatz_ive_go/effects/binding"
	"github.com/on-the-ground/collatz_ive_go/effects/configkeys"
	"github.com/on-the-ground/collatz_ive_go/effects/log"
	"github.com/on-the-ground/collatz_ive_go/memo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2

	logBufferSize = 64
)

type options struct {
	maxN          int64
	output        string
	backend       string
	capacity      int64
	progressEvery int64
	verbose       bool
}

func newFlagSet(stderr io.Writer, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("collatz", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Int64Var(&opts.maxN, "max", driver.DefaultMaxN, "compute step counts for 1..max")
	fs.StringVar(&opts.output, "out", driver.DefaultOutputPath, `output file ("-" for stdout)`)
	fs.StringVar(&opts.backend, "memo", string(memo.BackendMap), "memo table: "+backendNames())
	fs.Int64Var(&opts.capacity, "memo-capacity", memo.DefaultCapacity, "entry bound for the rotating and ristretto tables")
	fs.Int64Var(&opts.progressEvery, "progress", 0, "log progress every N integers (needs -v)")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	return fs
}

func backendNames() string {
	names := make([]string, 0, len(memo.Backends()))
	for _, b := range memo.Backends() {
		names = append(names, string(b))
	}
	return strings.Join(names, "|")
}

// newLogger writes human-readable lines to stderr without timestamps.
func newLogger(stderr io.Writer, verbose bool) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(stderr),
		level,
	))
}

func (o options) bindings() map[string]any {
	b := driver.DefaultBindings()
	b[configkeys.ConfigCollatzMaxN] = o.maxN
	b[configkeys.ConfigCollatzOutputPath] = o.output
	b[configkeys.ConfigCollatzMemoBackend] = o.backend
	b[configkeys.ConfigCollatzMemoCapacity] = o.capacity
	b[configkeys.ConfigCollatzProgressEvery] = o.progressEvery
	return b
}

// Run parses args, runs the computation and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(stderr, &opts)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return exitUsage
	}

	ctx, endOfLog := log.WithZapEffectHandler(context.Background(), logBufferSize, newLogger(stderr, opts.verbose))
	defer endOfLog()

	ctx, endOfBinding := binding.WithEffectHandler(ctx, 1, 1, opts.bindings())
	defer endOfBinding()

	if err := driver.Run(ctx, stdout); err != nil {
		reportFailure(ctx, opts, err)
		return exitFail
	}
	return exitOK
}

func reportFailure(ctx context.Context, opts options, err error) {
	msg := "collatz run failed"
	fields := map[string]interface{}{"error": err.Error()}
	switch {
	case errors.Is(err, driver.ErrOutputUnavailable):
		msg = "failed to open " + opts.output
	case errors.Is(err, driver.ErrOutputWrite):
		msg = "failed to write " + opts.output
	}
	log.Effect(ctx, log.LogError, msg, fields)
}
