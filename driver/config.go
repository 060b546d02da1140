package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/collatz_ive_go/effects/binding"
	"github.com/on-the-ground/collatz_ive_go/effects/configkeys"
	"github.com/on-the-ground/collatz_ive_go/memo"
)

const (
	DefaultMaxN       int64 = 10_000_000
	DefaultOutputPath       = "output.txt"

	// StdoutPath selects standard output as the output destination.
	StdoutPath = "-"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultBindings returns the configuration a run uses when nothing is overridden.
func DefaultBindings() map[string]any {
	return map[string]any{
		configkeys.ConfigCollatzMaxN:          DefaultMaxN,
		configkeys.ConfigCollatzOutputPath:    DefaultOutputPath,
		configkeys.ConfigCollatzMemoBackend:   string(memo.BackendMap),
		configkeys.ConfigCollatzMemoCapacity:  int64(memo.DefaultCapacity),
		configkeys.ConfigCollatzProgressEvery: int64(0),
	}
}

type config struct {
	maxN          int64
	outputPath    string
	backend       memo.Backend
	capacity      int64
	progressEvery int64
}

func loadConfig(ctx context.Context) (cfg config, err error) {
	if cfg.maxN, err = binding.GetTyped[int64](ctx, configkeys.ConfigCollatzMaxN); err != nil {
		return cfg, err
	}
	if cfg.outputPath, err = binding.GetTyped[string](ctx, configkeys.ConfigCollatzOutputPath); err != nil {
		return cfg, err
	}
	backend, err := binding.GetTyped[string](ctx, configkeys.ConfigCollatzMemoBackend)
	if err != nil {
		return cfg, err
	}
	cfg.backend = memo.Backend(backend)
	if cfg.capacity, err = binding.GetTyped[int64](ctx, configkeys.ConfigCollatzMemoCapacity); err != nil {
		return cfg, err
	}
	if cfg.progressEvery, err = binding.GetTyped[int64](ctx, configkeys.ConfigCollatzProgressEvery); err != nil {
		return cfg, err
	}

	switch {
	case cfg.maxN < 0:
		return cfg, fmt.Errorf("%w: max_n %d is negative", ErrInvalidConfig, cfg.maxN)
	case cfg.outputPath == "":
		return cfg, fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	case cfg.progressEvery < 0:
		return cfg, fmt.Errorf("%w: progress interval %d is negative", ErrInvalidConfig, cfg.progressEvery)
	}
	return cfg, nil
}
