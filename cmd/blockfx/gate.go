package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/justyntemme/blockfx/pkg/config"
	"github.com/justyntemme/blockfx/pkg/dsp"
	"github.com/justyntemme/blockfx/pkg/framework/bus"
	"github.com/justyntemme/blockfx/pkg/framework/plugin"
	"github.com/justyntemme/blockfx/pkg/host"
	"github.com/justyntemme/blockfx/pkg/plugins/noisegate"
)

func runGate(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("gate", flag.ContinueOnError)
	threshold := fs.Float64("threshold", cfg.NoiseGate.Threshold, "sidechain level that opens the gate (0-1)")
	alpha := fs.Float64("alpha", cfg.NoiseGate.Alpha, "sidechain smoothing (0-1)")
	seconds := fs.Float64("seconds", 6, "length to render")
	freq := fs.Float64("freq", 220, "test tone frequency in Hz")
	rate := fs.Float64("rate", 0.25, "sidechain pulses per second")
	play := fs.Bool("play", false, "play the gated tone")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *seconds <= 0 {
		return fmt.Errorf("gate: seconds must be positive")
	}

	gate := noisegate.New()
	gate.SetThreshold(*threshold)
	gate.SetAlpha(*alpha)

	sr := cfg.Audio.SampleRate
	h := host.New(gate)
	if err := h.Prepare(plugin.Config{
		SampleRate:   sr,
		MaxBlockSize: cfg.Audio.BlockSize,
		Main:         bus.Stereo,
		Sidechain:    bus.Stereo,
	}); err != nil {
		return err
	}
	defer h.Release()

	length := int(math.Ceil(*seconds * sr))
	main := toneSignal(2, length, sr, *freq, 0.5)
	side := pulseSignal(2, length, sr, *rate, 0.1)
	out := channels(2, length)

	th := gate.Parameters().Get(noisegate.ParamThreshold)
	fmt.Printf("gate: threshold %s, alpha %.2f, %.0f Hz tone, sidechain %.2f Hz\n",
		th.FormatValue(th.GetValue()), gate.Alpha(), *freq, *rate)

	inViews := make([][]float32, 2)
	scViews := make([][]float32, 2)
	open := false
	for start := 0; start < length; start += cfg.Audio.BlockSize {
		n := min(cfg.Audio.BlockSize, length-start)
		if err := h.ProcessBlock(blockViews(inViews, main, start, n), blockViews(scViews, side, start, n), n, nil); err != nil {
			return err
		}
		for ch := range out {
			copy(out[ch][start:start+n], h.Context().Output[ch])
		}
		if gate.IsOpen() != open {
			open = gate.IsOpen()
			state := "closed"
			if open {
				state = "open"
			}
			fmt.Printf("  %7.3fs  %s\n", float64(start+n)/sr, state)
		}
	}
	fmt.Printf("input  peak %.3f  rms %.3f\n", dsp.Peak(main[0]), dsp.RMS(main[0]))
	fmt.Printf("output peak %.3f  rms %.3f\n", dsp.Peak(out[0]), dsp.RMS(out[0]))
	fmt.Println(h.Profiler().Report())

	if *play {
		return playInterleaved(interleave(out), int(sr), 2)
	}
	return nil
}
