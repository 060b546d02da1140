package effectmodel

import "errors"

type EffectEnum string

const (
	EffectLog     EffectEnum = "collatz_ive_go_effect_enum_log"
	EffectBinding EffectEnum = "collatz_ive_go_effect_enum_binding"
)

type EffectScopeConfig struct {
	BufferSize int // default: 1
	NumWorkers int // default: 1
}

func NewEffectScopeConfig(bufferSize int, numWorkers int) EffectScopeConfig {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return EffectScopeConfig{
		BufferSize: bufferSize,
		NumWorkers: numWorkers,
	}
}

type Partitionable interface {
	PartitionKey() string
}

// ErrNoEffectHandler is raised when an effect is performed on a context
// that carries no handler for its enum.
var ErrNoEffectHandler = errors.New("no effect handler registered for this effect")

// ErrClosedScope is returned when an effect is sent to a handler whose scope has ended.
var ErrClosedScope = errors.New("effect scope is closed")
