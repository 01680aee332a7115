// Package surround is a pass-through multichannel effect that reports
// which channels carry signal and can inject a test tone into any one of
// them.
package surround

import (
	"sync/atomic"

	"github.com/justyntemme/blockfx/pkg/dsp/analysis"
	"github.com/justyntemme/blockfx/pkg/dsp/oscillator"
	"github.com/justyntemme/blockfx/pkg/framework/bus"
	"github.com/justyntemme/blockfx/pkg/framework/plugin"
	"github.com/justyntemme/blockfx/pkg/framework/process"
)

const noSelection = -1

// Processor implements plugin.Plugin for the surround monitor. It has no
// parameters, so its saved state is empty.
type Processor struct {
	*plugin.Base

	monitor *analysis.ActivityMonitor
	tone    *oscillator.ProbeTone

	// Pending Select, consumed at the start of the next block.
	selection atomic.Int32
}

// New creates a monitor declared for 5.1. Any layout with speaker
// positions can be prepared.
func New() *Processor {
	p := &Processor{
		Base: plugin.NewBase(plugin.Info{
			ID:       "com.blockfx.surround",
			Name:     "Surround",
			Version:  "1.0.0",
			Vendor:   "blockfx",
			Category: "Fx|Analyzer",
		}, bus.NewSurroundEffect(bus.Surround5_1)),
		monitor: analysis.NewActivityMonitor(0, 44100),
		tone:    oscillator.NewProbeTone(44100),
	}
	p.selection.Store(noSelection)
	return p
}

// Prepare sizes the per-channel state for cfg.Main, clears activity and
// silences the probe tone.
func (p *Processor) Prepare(cfg plugin.Config) error {
	if err := p.Base.Prepare(cfg); err != nil {
		return err
	}
	p.monitor.Prepare(cfg.MainChannels(), cfg.SampleRate)
	p.tone.Prepare(cfg.SampleRate)
	p.selection.Store(noSelection)
	return nil
}

// ProcessBlock copies input to output, updates channel activity from the
// input and then adds the probe tone.
func (p *Processor) ProcessBlock(ctx *process.Context) {
	ctx.RequireChannels(p.Config().MainChannels(), 0)

	if sel := p.selection.Swap(noSelection); sel != noSelection {
		p.tone.Trigger(int(sel))
	}

	ctx.PassThrough()
	p.monitor.Process(ctx.Output)
	p.tone.Process(ctx.Output)
}

// Reset clears channel activity.
func (p *Processor) Reset() {
	p.monitor.Reset()
}

// Select plays the probe tone on channel ch from the next block. Negative
// channels are ignored; channels beyond the layout play nothing. Safe to
// call from any goroutine.
func (p *Processor) Select(ch int) {
	if ch < 0 {
		return
	}
	p.selection.Store(int32(ch))
}

// IsActive reports whether channel ch carried signal within the last half
// second. Safe to call from any goroutine.
func (p *Processor) IsActive(ch int) bool {
	return p.monitor.IsActive(ch)
}

// Activity fills dst with per-channel activity; see IsActive.
func (p *Processor) Activity(dst []bool) []bool {
	return p.monitor.Snapshot(dst)
}

// NumChannels returns the prepared channel count.
func (p *Processor) NumChannels() int {
	return p.monitor.NumChannels()
}

// ChannelName returns the speaker name of channel ch in the prepared
// layout.
func (p *Processor) ChannelName(ch int) string {
	return p.Config().Main.ChannelName(ch)
}
