package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/on-the-ground/collatz_ive_go/effects"
	"github.com/on-the-ground/collatz_ive_go/effects/log"
	"github.com/on-the-ground/collatz_ive_go/memo"
	"github.com/on-the-ground/collatz_ive_go/pure"
)

var (
	// ErrOutputUnavailable means the output destination could not be opened. Nothing was computed.
	ErrOutputUnavailable = errors.New("output unavailable")

	// ErrOutputWrite means writing or closing the output failed part way through.
	ErrOutputWrite = errors.New("output write failed")
)

// Run writes "<i>: <steps>" for i = 1..max_n to the configured output,
// sharing one memo table across the whole range.
//
// Configuration is read through the binding effect and diagnostics go through
// the log effect, so both handlers must be registered on ctx.
// stdout is used when the output path is StdoutPath.
func Run(ctx context.Context, stdout io.Writer) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	table, err := memo.Open(cfg.backend, cfg.capacity)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	defer table.Close()

	out, closeOut, err := openOutput(cfg.outputPath, stdout)
	if err != nil {
		return err
	}

	start := time.Now()
	memoizer := pure.NewMemoizer(table)
	w := NewLineWriter(out)
	if err := writeRange(ctx, cfg, memoizer, w); err != nil {
		_ = closeOut()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = closeOut()
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}

	stats := memoizer.Stats()
	span := effects.Since(start)
	log.Effect(ctx, log.LogDebug, "collatz run finished", map[string]interface{}{
		"max_n":       cfg.maxN,
		"output":      cfg.outputPath,
		"memo":        string(cfg.backend),
		"memo_size":   table.Len(),
		"lookups":     stats.Lookups,
		"hits":        stats.Hits,
		"stores":      stats.Stores,
		"span":        span.In(time.UTC).FormatRFC5545(true),
		"duration_ms": span.Duration().Milliseconds(),
	})
	return nil
}

func writeRange(ctx context.Context, cfg config, memoizer *pure.Memoizer, w *LineWriter) error {
	for i := int64(1); i <= cfg.maxN; i++ {
		steps, err := memoizer.Steps(i)
		if err != nil {
			return fmt.Errorf("steps(%d): %w", i, err)
		}
		if err := w.WriteRecord(i, steps); err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrOutputWrite, i, err)
		}
		if cfg.progressEvery > 0 && i%cfg.progressEvery == 0 {
			log.Effect(ctx, log.LogDebug, "progress", map[string]interface{}{
				"n":     i,
				"steps": steps,
			})
		}
	}
	return nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == StdoutPath {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrOutputUnavailable, err)
	}
	return f, f.Close, nil
}
