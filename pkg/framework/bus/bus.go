// Package bus describes the audio and event buses a processor exposes:
// a main audio layout (same on input and output), an optional sidechain
// layout, and event input/output.
package bus

import (
	"errors"
	"fmt"
)

// MaxChannels is the largest channel count accepted on any bus.
const MaxChannels = 32

// Configuration is the bus set declared by a processor.
type Configuration struct {
	Main        Layout
	Sidechain   Layout
	EventInput  bool
	EventOutput bool

	// RequireNamedLayout rejects discrete main layouts (speaker positions
	// must be known, e.g. for per-speaker meters).
	RequireNamedLayout bool
}

// HasAudio reports whether the main bus carries audio.
func (c *Configuration) HasAudio() bool {
	return !c.Main.IsDisabled()
}

// HasSidechain reports whether a sidechain input is declared.
func (c *Configuration) HasSidechain() bool {
	return !c.Sidechain.IsDisabled()
}

// Supports reports whether main can replace the declared main layout.
func (c *Configuration) Supports(main Layout) error {
	if !c.HasAudio() {
		if !main.IsDisabled() {
			return errors.New("processor has no audio bus")
		}
		return nil
	}
	if main.IsDisabled() {
		return errors.New("main bus cannot be disabled")
	}
	if main.Size() > MaxChannels {
		return fmt.Errorf("channel count %d exceeds maximum of %d", main.Size(), MaxChannels)
	}
	if c.RequireNamedLayout && main.IsDiscrete() {
		return fmt.Errorf("layout %s has no speaker positions", main)
	}
	return nil
}

// Builder provides a fluent API for building bus configurations
type Builder struct {
	config Configuration
	errs   []error
}

// NewBuilder creates a new bus configuration builder
func NewBuilder() *Builder {
	return &Builder{config: Configuration{Main: Disabled, Sidechain: Disabled}}
}

// WithMain sets the main input/output layout
func (b *Builder) WithMain(l Layout) *Builder {
	if l.Size() > MaxChannels {
		b.errs = append(b.errs, fmt.Errorf("main: %d channels exceeds maximum of %d", l.Size(), MaxChannels))
	}
	b.config.Main = l
	return b
}

// WithSidechain adds a sidechain input
func (b *Builder) WithSidechain(l Layout) *Builder {
	if l.IsDisabled() {
		b.errs = append(b.errs, errors.New("sidechain layout is disabled"))
	}
	b.config.Sidechain = l
	return b
}

// WithEventInput adds an event (MIDI) input bus
func (b *Builder) WithEventInput() *Builder {
	b.config.EventInput = true
	return b
}

// WithEventOutput adds an event (MIDI) output bus
func (b *Builder) WithEventOutput() *Builder {
	b.config.EventOutput = true
	return b
}

// RequireNamedLayout rejects discrete main layouts
func (b *Builder) RequireNamedLayout() *Builder {
	b.config.RequireNamedLayout = true
	return b
}

// Build returns the built configuration or an error
func (b *Builder) Build() (*Configuration, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("bus configuration: %w", errors.Join(b.errs...))
	}
	if !b.config.HasAudio() && !b.config.EventOutput {
		return nil, errors.New("bus configuration must have a main audio bus or an event output")
	}
	if b.config.RequireNamedLayout && b.config.Main.IsDiscrete() {
		return nil, fmt.Errorf("layout %s has no speaker positions", b.config.Main)
	}
	c := b.config
	return &c, nil
}

// MustBuild returns the built configuration or panics on error
func (b *Builder) MustBuild() *Configuration {
	config, err := b.Build()
	if err != nil {
		panic(err)
	}
	return config
}

// NewMIDIEffect declares event input and output with no audio.
func NewMIDIEffect() *Configuration {
	return NewBuilder().WithEventInput().WithEventOutput().MustBuild()
}

// NewEffectWithSidechain declares a main bus plus a sidechain input.
func NewEffectWithSidechain(main, sidechain Layout) *Configuration {
	return NewBuilder().WithMain(main).WithSidechain(sidechain).MustBuild()
}

// NewSurroundEffect declares a main bus that must have speaker positions.
func NewSurroundEffect(main Layout) *Configuration {
	return NewBuilder().WithMain(main).RequireNamedLayout().MustBuild()
}
