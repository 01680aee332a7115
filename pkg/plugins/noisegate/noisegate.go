// Package noisegate is an audio effect that mutes its main input unless a
// sidechain signal has recently been loud enough.
package noisegate

import (
	"sync/atomic"

	"github.com/justyntemme/blockfx/pkg/dsp/dynamics"
	"github.com/justyntemme/blockfx/pkg/framework/bus"
	"github.com/justyntemme/blockfx/pkg/framework/param"
	"github.com/justyntemme/blockfx/pkg/framework/plugin"
	"github.com/justyntemme/blockfx/pkg/framework/process"
)

// Parameter IDs, also the order of values in saved state.
const (
	ParamThreshold = iota
	ParamAlpha
)

// Parameter defaults
const (
	DefaultThreshold = 0.5
	DefaultAlpha     = 0.8
)

// Processor implements plugin.Plugin for the noise gate.
type Processor struct {
	*plugin.Base

	threshold *param.Parameter
	alpha     *param.Parameter
	gate      *dynamics.EnvelopeGate

	open atomic.Bool
}

// New creates a noise gate with a stereo main bus and a stereo sidechain.
// Any main layout and any sidechain layout, including none, can be
// prepared.
func New() *Processor {
	p := &Processor{
		Base: plugin.NewBase(plugin.Info{
			ID:       "com.blockfx.noisegate",
			Name:     "Noise Gate",
			Version:  "1.0.0",
			Vendor:   "blockfx",
			Category: "Fx|Dynamics",
		}, bus.NewEffectWithSidechain(bus.Stereo, bus.Stereo)),
		gate: dynamics.NewEnvelopeGate(44100),
	}

	p.threshold = param.New(ParamThreshold, "Threshold").
		Default(DefaultThreshold).
		Formatter(param.LevelFormatter, param.LevelParser).
		Build()
	p.alpha = param.New(ParamAlpha, "Alpha").
		Default(DefaultAlpha).
		Build()
	p.Parameters().MustAdd(p.threshold, p.alpha)

	return p
}

// Prepare records the configuration and closes the gate.
func (p *Processor) Prepare(cfg plugin.Config) error {
	if err := p.Base.Prepare(cfg); err != nil {
		return err
	}
	p.gate.Prepare(cfg.SampleRate)
	p.open.Store(false)
	return nil
}

// ProcessBlock gates ctx.Input into ctx.Output, keyed by ctx.Sidechain.
// Threshold and alpha are read once per block.
func (p *Processor) ProcessBlock(ctx *process.Context) {
	cfg := p.Config()
	ctx.RequireChannels(cfg.MainChannels(), cfg.SidechainChannels())

	threshold := float32(ctx.ParamPlain(ParamThreshold))
	alpha := float32(ctx.ParamPlain(ParamAlpha))
	p.gate.Process(ctx.Input, ctx.Output, ctx.Sidechain, threshold, alpha)

	p.open.Store(p.gate.IsOpen())
}

// Reset is a no-op; the gate keeps its envelope until the next Prepare.
func (p *Processor) Reset() {}

// IsOpen reports whether the gate was open at the end of the last block.
// Safe to call from any goroutine.
func (p *Processor) IsOpen() bool {
	return p.open.Load()
}

// SetThreshold sets the threshold parameter, clamped to [0, 1].
func (p *Processor) SetThreshold(v float64) {
	p.threshold.SetPlainValue(v)
}

// SetAlpha sets the smoothing parameter, clamped to [0, 1].
func (p *Processor) SetAlpha(v float64) {
	p.alpha.SetPlainValue(v)
}

// Threshold returns the current threshold.
func (p *Processor) Threshold() float64 {
	return p.threshold.GetPlainValue()
}

// Alpha returns the current smoothing coefficient.
func (p *Processor) Alpha() float64 {
	return p.alpha.GetPlainValue()
}
