package process

import "github.com/justyntemme/blockfx/pkg/midi"

// GetNumChannels returns the minimum of input and output channels
func (ctx *Context) GetNumChannels() int {
	numChannels := ctx.NumInputChannels()
	if ctx.NumOutputChannels() < numChannels {
		numChannels = ctx.NumOutputChannels()
	}
	return numChannels
}

// EmitEvent appends e to the output list. It reports false if the list is
// full; the event is then dropped and counted.
func (ctx *Context) EmitEvent(e midi.Event) bool {
	return ctx.OutputEvents.Add(e)
}
