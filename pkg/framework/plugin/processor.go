// Package plugin defines the capability interface shared by all block
// processors and a Base that carries their metadata, parameters, buses
// and persisted state.
package plugin

import (
	"fmt"
	"io"

	"github.com/justyntemme/blockfx/pkg/framework/bus"
	"github.com/justyntemme/blockfx/pkg/framework/debug"
	"github.com/justyntemme/blockfx/pkg/framework/param"
	"github.com/justyntemme/blockfx/pkg/framework/process"
	"github.com/justyntemme/blockfx/pkg/framework/state"
)

// BlockProcessor is the contract between a processor and whatever drives
// it. Prepare and Reset run off the audio thread. ProcessBlock must not
// block, allocate, log or do I/O.
type BlockProcessor interface {
	// Prepare fixes sample rate, block size and channel counts, allocates
	// everything ProcessBlock needs and resets processing state.
	Prepare(cfg Config) error

	// ProcessBlock consumes ctx.Input and ctx.InputEvents and fills
	// ctx.Output and ctx.OutputEvents.
	ProcessBlock(ctx *process.Context)

	// Reset releases playback state without changing the topology.
	Reset()
}

// Plugin is a BlockProcessor that also describes itself.
type Plugin interface {
	BlockProcessor
	Info() Info
	Buses() *bus.Configuration
	Parameters() *param.Registry
}

// Stateful processors can save and restore their parameters.
type Stateful interface {
	SaveState(w io.Writer) error
	LoadState(r io.Reader) error
}

// Base provides the common parts of a Plugin. Processors embed it and
// call Base.Prepare from their own Prepare.
type Base struct {
	info   Info
	params *param.Registry
	buses  *bus.Configuration
	state  *state.Manager
	config Config
	log    *debug.Logger
}

// NewBase creates a base with an empty parameter registry.
func NewBase(info Info, buses *bus.Configuration) *Base {
	params := param.NewRegistry()
	return &Base{
		info:   info,
		params: params,
		buses:  buses,
		state:  state.NewManager(params),
		log:    debug.Default().With(info.Name),
	}
}

// Info returns the processor metadata.
func (b *Base) Info() Info {
	return b.info
}

// Buses returns the declared bus configuration.
func (b *Base) Buses() *bus.Configuration {
	return b.buses
}

// Parameters returns the parameter registry for configuration
func (b *Base) Parameters() *param.Registry {
	return b.params
}

// Config returns the configuration of the last successful Prepare.
func (b *Base) Config() Config {
	return b.config
}

// SampleRate returns the current sample rate
func (b *Base) SampleRate() float64 {
	return b.config.SampleRate
}

// Logger returns the processor's logger.
func (b *Base) Logger() *debug.Logger {
	return b.log
}

// Prepare validates cfg against the declared buses and records it.
func (b *Base) Prepare(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", b.info.Name, err)
	}
	if err := b.buses.Supports(cfg.Main); err != nil {
		return fmt.Errorf("%s: main bus: %w", b.info.Name, err)
	}
	if !b.buses.HasSidechain() && !cfg.Sidechain.IsDisabled() {
		return fmt.Errorf("%s: no sidechain input", b.info.Name)
	}
	b.config = cfg
	b.log.Debug("prepared: %s", cfg)
	return nil
}

// SaveState writes the parameter values.
func (b *Base) SaveState(w io.Writer) error {
	return b.state.Save(w)
}

// LoadState restores parameter values written by SaveState.
func (b *Base) LoadState(r io.Reader) error {
	if err := b.state.Load(r); err != nil {
		return fmt.Errorf("%s: %w", b.info.Name, err)
	}
	return nil
}

// StateSize returns the length of a saved state in bytes.
func (b *Base) StateSize() int {
	return b.state.Size()
}
