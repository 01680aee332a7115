// Package arpeggiator is a MIDI effect that replaces held chords with a
// rising cycle of single notes.
package arpeggiator

import (
	"github.com/justyntemme/blockfx/pkg/dsp/arp"
	"github.com/justyntemme/blockfx/pkg/framework/bus"
	"github.com/justyntemme/blockfx/pkg/framework/param"
	"github.com/justyntemme/blockfx/pkg/framework/plugin"
	"github.com/justyntemme/blockfx/pkg/framework/process"
)

// Parameter IDs
const (
	ParamSpeed = iota
)

// DefaultSpeed is the initial speed, giving 0.15 s steps.
const DefaultSpeed = 0.5

// Processor implements plugin.Plugin for the arpeggiator.
type Processor struct {
	*plugin.Base

	speed *param.Parameter
	seq   *arp.Sequencer
}

// New creates an arpeggiator with speed at its default.
func New() *Processor {
	p := &Processor{
		Base: plugin.NewBase(plugin.Info{
			ID:       "com.blockfx.arpeggiator",
			Name:     "Arpeggiator",
			Version:  "1.0.0",
			Vendor:   "blockfx",
			Category: "Fx|MIDI",
		}, bus.NewMIDIEffect()),
		seq: arp.NewSequencer(),
	}

	p.speed = param.New(ParamSpeed, "Arpeggiator Speed").
		ShortName("Speed").
		Default(DefaultSpeed).
		Formatter(param.PercentFormatter, param.PercentParser).
		Build()
	p.Parameters().MustAdd(p.speed)

	return p
}

// Prepare records the configuration and clears held notes and timing.
func (p *Processor) Prepare(cfg plugin.Config) error {
	if err := p.Base.Prepare(cfg); err != nil {
		return err
	}
	p.seq.Reset()
	return nil
}

// ProcessBlock consumes the block's note events and emits the arpeggio.
// The block has no audio channels; only its length is used.
func (p *Processor) ProcessBlock(ctx *process.Context) {
	ctx.RequireChannels(0, 0)
	p.seq.ProcessBlock(
		ctx.InputEvents.Events(),
		ctx.NumSamples(),
		p.speed.GetPlainValue(),
		p.SampleRate(),
		ctx.OutputEvents,
	)
}

// Reset is a no-op; held notes survive until the next Prepare.
func (p *Processor) Reset() {}

// SetSpeed sets the speed parameter, clamped to [0, 1].
func (p *Processor) SetSpeed(speed float64) {
	p.speed.SetPlainValue(speed)
}

// Speed returns the current speed.
func (p *Processor) Speed() float64 {
	return p.speed.GetPlainValue()
}

// StepLength returns the step length in samples at the current speed.
func (p *Processor) StepLength() int {
	return arp.StepLength(p.Speed(), p.SampleRate())
}
