// Package process provides the per-block processing context handed to
// processors: audio views, sidechain, event lists and parameter access.
package process

import (
	"fmt"

	"github.com/justyntemme/blockfx/pkg/framework/param"
	"github.com/justyntemme/blockfx/pkg/midi"
)

// DefaultEventCapacity is the number of events each list holds when the
// caller does not ask for a specific size.
const DefaultEventCapacity = 512

// Context provides a clean API for block processing with zero allocations.
// Buffers are sized by Configure; SetBlockLength only reslices them.
type Context struct {
	Input      [][]float32
	Output     [][]float32
	Sidechain  [][]float32
	SampleRate float64

	// Events arriving with this block and events produced by it. Offsets
	// are relative to the start of the block.
	InputEvents  *midi.List
	OutputEvents *midi.List

	numSamples   int
	maxBlockSize int

	// Full-size backing storage behind the views above.
	inStore  [][]float32
	outStore [][]float32
	scStore  [][]float32

	params *param.Registry
}

// NewContext creates a context for blocks of up to maxBlockSize samples.
// Channel buffers are allocated by Configure.
func NewContext(maxBlockSize int, params *param.Registry) *Context {
	if params == nil {
		params = param.NewRegistry()
	}
	return &Context{
		maxBlockSize: maxBlockSize,
		InputEvents:  midi.NewList(DefaultEventCapacity),
		OutputEvents: midi.NewList(DefaultEventCapacity),
		params:       params,
	}
}

// Configure (re)allocates channel buffers and event lists. It is called
// from prepare, never from the audio thread. Old sample data is discarded.
func (c *Context) Configure(mainChannels, sidechainChannels, eventCapacity int) error {
	if mainChannels < 0 || sidechainChannels < 0 {
		return fmt.Errorf("negative channel count (main %d, sidechain %d)", mainChannels, sidechainChannels)
	}
	if eventCapacity <= 0 {
		eventCapacity = DefaultEventCapacity
	}

	c.inStore = allocChannels(mainChannels, c.maxBlockSize)
	c.outStore = allocChannels(mainChannels, c.maxBlockSize)
	c.scStore = allocChannels(sidechainChannels, c.maxBlockSize)
	c.Input = make([][]float32, mainChannels)
	c.Output = make([][]float32, mainChannels)
	c.Sidechain = make([][]float32, sidechainChannels)
	c.InputEvents = midi.NewList(eventCapacity)
	c.OutputEvents = midi.NewList(eventCapacity)
	c.SetBlockLength(c.maxBlockSize)
	return nil
}

func allocChannels(n, size int) [][]float32 {
	out := make([][]float32, n)
	for ch := range out {
		out[ch] = make([]float32, size)
	}
	return out
}

// SetBlockLength points the Input, Output and Sidechain views at the first
// n samples of the backing storage. Views supplied directly by the caller
// (without Configure) are left alone.
func (c *Context) SetBlockLength(n int) {
	if n < 0 {
		n = 0
	}
	if n > c.maxBlockSize {
		panic(fmt.Sprintf("process: block length %d exceeds maximum %d", n, c.maxBlockSize))
	}
	c.numSamples = n
	for ch := range c.inStore {
		c.Input[ch] = c.inStore[ch][:n]
		c.Output[ch] = c.outStore[ch][:n]
	}
	for ch := range c.scStore {
		c.Sidechain[ch] = c.scStore[ch][:n]
	}
}

// MaxBlockSize returns the largest block the context can hold.
func (c *Context) MaxBlockSize() int {
	return c.maxBlockSize
}

// Params returns the parameter registry.
func (c *Context) Params() *param.Registry {
	return c.params
}

// Param returns the current value of a parameter (0-1 normalized)
func (c *Context) Param(id uint32) float64 {
	if p := c.params.Get(id); p != nil {
		return p.GetValue()
	}
	return 0
}

// ParamPlain returns the current plain value of a parameter
func (c *Context) ParamPlain(id uint32) float64 {
	if p := c.params.Get(id); p != nil {
		return p.GetPlainValue()
	}
	return 0
}

// NumSamples returns the number of samples to process
func (c *Context) NumSamples() int {
	if c.numSamples > 0 {
		return c.numSamples
	}
	if len(c.Input) > 0 && len(c.Input[0]) > 0 {
		return len(c.Input[0])
	}
	if len(c.Output) > 0 && len(c.Output[0]) > 0 {
		return len(c.Output[0])
	}
	return 0
}

// NumInputChannels returns the number of input channels
func (c *Context) NumInputChannels() int {
	return len(c.Input)
}

// NumOutputChannels returns the number of output channels
func (c *Context) NumOutputChannels() int {
	return len(c.Output)
}

// NumSidechainChannels returns the number of sidechain channels
func (c *Context) NumSidechainChannels() int {
	return len(c.Sidechain)
}

// RequireChannels panics unless the main and sidechain channel counts
// match what the processor was prepared for. A mismatch means the caller
// broke the prepare contract.
func (c *Context) RequireChannels(main, sidechain int) {
	if len(c.Input) != main || len(c.Output) != main {
		panic(fmt.Sprintf("process: prepared for %d main channels, got %d in / %d out",
			main, len(c.Input), len(c.Output)))
	}
	if len(c.Sidechain) != sidechain {
		panic(fmt.Sprintf("process: prepared for %d sidechain channels, got %d",
			sidechain, len(c.Sidechain)))
	}
}

// PassThrough copies input to output (for bypass)
func (c *Context) PassThrough() {
	numChannels := c.GetNumChannels()
	for ch := 0; ch < numChannels; ch++ {
		copy(c.Output[ch], c.Input[ch])
	}
}

// Clear zeros the output buffers
func (c *Context) Clear() {
	for ch := range c.Output {
		clear(c.Output[ch])
	}
}

// ClearEvents empties both event lists, keeping their storage.
func (c *Context) ClearEvents() {
	c.InputEvents.Clear()
	c.OutputEvents.Clear()
}
