// Package host drives a processor offline: it splits arbitrary-length
// audio and event streams into blocks, runs them in order and collects
// the results.
package host

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/justyntemme/blockfx/pkg/framework/debug"
	"github.com/justyntemme/blockfx/pkg/framework/plugin"
	"github.com/justyntemme/blockfx/pkg/framework/process"
	"github.com/justyntemme/blockfx/pkg/midi"
)

// DefaultEventCapacity is the per-block event list size.
const DefaultEventCapacity = 1024

// ErrNotPrepared is returned when processing before Prepare.
var ErrNotPrepared = errors.New("host: processor not prepared")

// Input is a stream to render. Audio and Sidechain hold one slice per
// channel, all of equal length. Events need not be sorted.
type Input struct {
	Audio     [][]float32
	Sidechain [][]float32
	Events    []midi.TimedEvent

	// Length is the number of samples to render. Zero means the audio
	// length, or one past the last event when there is no audio.
	Length int
}

// Output is a rendered stream. Events are in emission order with absolute
// positions.
type Output struct {
	Audio   [][]float32
	Events  []midi.TimedEvent
	Blocks  int
	Dropped int // events that did not fit in a block's event list
}

// Host owns a processor and the context it is run with.
type Host struct {
	proc     plugin.Plugin
	ctx      *process.Context
	cfg      plugin.Config
	prepared bool

	eventCapacity int
	profiler      *debug.BlockProfiler
	log           *debug.Logger
}

// New creates a host for p. Call Prepare before rendering.
func New(p plugin.Plugin) *Host {
	return &Host{
		proc:          p,
		eventCapacity: DefaultEventCapacity,
		log:           debug.Default().With("host"),
	}
}

// SetEventCapacity sets the per-block event list size used by the next
// Prepare.
func (h *Host) SetEventCapacity(n int) {
	h.eventCapacity = n
}

// Prepare prepares the processor for cfg and allocates block buffers. It
// must be called again whenever the sample rate, block size or channel
// layout changes.
func (h *Host) Prepare(cfg plugin.Config) error {
	h.prepared = false
	if err := h.proc.Prepare(cfg); err != nil {
		return fmt.Errorf("prepare %s: %w", h.proc.Info().Name, err)
	}

	ctx := process.NewContext(cfg.MaxBlockSize, h.proc.Parameters())
	if err := ctx.Configure(cfg.MainChannels(), cfg.SidechainChannels(), h.eventCapacity); err != nil {
		return fmt.Errorf("prepare %s: %w", h.proc.Info().Name, err)
	}
	ctx.SampleRate = cfg.SampleRate

	h.ctx = ctx
	h.cfg = cfg
	h.profiler = debug.NewBlockProfiler(h.proc.Info().Name, cfg.SampleRate)
	h.prepared = true
	h.log.Debug("%s prepared: %s", h.proc.Info().Name, cfg)
	return nil
}

// Config returns the prepared configuration.
func (h *Host) Config() plugin.Config {
	return h.cfg
}

// Context returns the block context. Its Output and OutputEvents hold the
// result of the last block.
func (h *Host) Context() *process.Context {
	return h.ctx
}

// Profiler returns block timings since the last Prepare.
func (h *Host) Profiler() *debug.BlockProfiler {
	return h.profiler
}

// Processor returns the hosted processor.
func (h *Host) Processor() plugin.Plugin {
	return h.proc
}

// Release calls the processor's Reset.
func (h *Host) Release() {
	h.proc.Reset()
}

// ProcessBlock runs one block of n samples. in and sidechain supply at
// least n samples per channel and must match the prepared channel counts;
// a nil slice is read as silence. Events carry block-relative offsets.
// The result is left in Context().
func (h *Host) ProcessBlock(in, sidechain [][]float32, n int, events []midi.Event) error {
	if !h.prepared {
		return ErrNotPrepared
	}
	if n <= 0 || n > h.cfg.MaxBlockSize {
		return fmt.Errorf("host: block length %d outside 1..%d", n, h.cfg.MaxBlockSize)
	}
	if err := h.checkChannels(in, sidechain); err != nil {
		return err
	}

	for _, set := range [][][]float32{in, sidechain} {
		for ch := range set {
			if len(set[ch]) < n {
				return fmt.Errorf("host: channel %d has %d samples, block needs %d", ch, len(set[ch]), n)
			}
		}
	}

	h.runBlock(Input{Audio: in, Sidechain: sidechain}, 0, n, events)
	return nil
}

func (h *Host) checkChannels(in, sidechain [][]float32) error {
	if in != nil && len(in) != h.cfg.MainChannels() {
		return fmt.Errorf("host: prepared for %d main channels, got %d", h.cfg.MainChannels(), len(in))
	}
	if sidechain != nil && len(sidechain) != h.cfg.SidechainChannels() {
		return fmt.Errorf("host: prepared for %d sidechain channels, got %d", h.cfg.SidechainChannels(), len(sidechain))
	}
	return nil
}

// loadChannels copies src[ch][start:start+len(dst[ch])] into dst, or
// zeroes dst when src is nil.
func loadChannels(dst, src [][]float32, start int) {
	for ch := range dst {
		if src == nil {
			clear(dst[ch])
			continue
		}
		copy(dst[ch], src[ch][start:start+len(dst[ch])])
	}
}

// Render processes in from start to end in blocks of the prepared size;
// the last block may be shorter. Each event is delivered in the block
// containing its position, with a block-relative offset. Events at or
// past the end are discarded.
func (h *Host) Render(in Input) (*Output, error) {
	if !h.prepared {
		return nil, ErrNotPrepared
	}
	if err := h.checkChannels(in.Audio, in.Sidechain); err != nil {
		return nil, err
	}

	length, err := streamLength(in)
	if err != nil {
		return nil, err
	}

	events := append([]midi.TimedEvent(nil), in.Events...)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Position < events[j].Position
	})

	out := &Output{Audio: make([][]float32, h.cfg.MainChannels())}
	for ch := range out.Audio {
		out.Audio[ch] = make([]float32, length)
	}

	started := time.Now()
	blockSize := h.cfg.MaxBlockSize
	blockEvents := make([]midi.Event, 0, h.eventCapacity)
	next := 0

	for start := 0; start < length; start += blockSize {
		n := min(blockSize, length-start)

		blockEvents = blockEvents[:0]
		for next < len(events) && events[next].Position < int64(start+n) {
			te := events[next]
			next++
			if te.Position < 0 {
				continue
			}
			blockEvents = append(blockEvents, te.Event.WithOffset(int32(te.Position-int64(start))))
		}

		h.runBlock(in, start, n, blockEvents)

		for ch := range out.Audio {
			copy(out.Audio[ch][start:start+n], h.ctx.Output[ch])
		}
		for _, e := range h.ctx.OutputEvents.Events() {
			out.Events = append(out.Events, midi.TimedEvent{Position: int64(start) + int64(e.Offset), Event: e})
		}
		out.Dropped += h.ctx.InputEvents.Dropped() + h.ctx.OutputEvents.Dropped()
		out.Blocks++
	}

	if out.Dropped > 0 {
		h.log.Warn("%s: %d events dropped, block event lists hold %d", h.proc.Info().Name, out.Dropped, h.eventCapacity)
	}
	h.log.Debug("%s: rendered %d samples in %d blocks (%v)", h.proc.Info().Name, length, out.Blocks, time.Since(started))
	return out, nil
}

// runBlock loads block [start, start+n) of in into the context and runs it.
func (h *Host) runBlock(in Input, start, n int, events []midi.Event) {
	ctx := h.ctx
	ctx.SetBlockLength(n)
	loadChannels(ctx.Input, in.Audio, start)
	loadChannels(ctx.Sidechain, in.Sidechain, start)
	ctx.ClearEvents()
	for _, e := range events {
		ctx.InputEvents.Add(e)
	}

	stop := h.profiler.Start(n)
	h.proc.ProcessBlock(ctx)
	stop()
}

func streamLength(in Input) (int, error) {
	audioLen := -1
	for _, set := range [][][]float32{in.Audio, in.Sidechain} {
		for ch := range set {
			if audioLen >= 0 && len(set[ch]) != audioLen {
				return 0, fmt.Errorf("host: channel lengths differ (%d and %d)", audioLen, len(set[ch]))
			}
			audioLen = len(set[ch])
		}
	}

	switch {
	case in.Length > 0:
		if audioLen >= 0 && in.Length > audioLen {
			return 0, fmt.Errorf("host: length %d exceeds audio length %d", in.Length, audioLen)
		}
		return in.Length, nil
	case audioLen >= 0:
		return audioLen, nil
	}

	var last int64 = -1
	for _, e := range in.Events {
		if e.Position > last {
			last = e.Position
		}
	}
	return int(last + 1), nil
}
