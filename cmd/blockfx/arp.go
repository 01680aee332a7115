package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/justyntemme/blockfx/pkg/config"
	"github.com/justyntemme/blockfx/pkg/framework/bus"
	"github.com/justyntemme/blockfx/pkg/framework/debug"
	"github.com/justyntemme/blockfx/pkg/framework/plugin"
	"github.com/justyntemme/blockfx/pkg/host"
	"github.com/justyntemme/blockfx/pkg/midi"
	"github.com/justyntemme/blockfx/pkg/plugins/arpeggiator"
)

func runArp(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("arp", flag.ContinueOnError)
	in := fs.String("in", "", "input MIDI file")
	out := fs.String("out", "arp.mid", "output MIDI file")
	speed := fs.Float64("speed", cfg.Arpeggiator.Speed, "arpeggio speed (0-1)")
	tail := fs.Float64("tail", 1, "seconds rendered past the last input event")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("arp: -in is required")
	}
	if *speed < 0 || *speed > 1 {
		return fmt.Errorf("arp: speed %v outside 0..1", *speed)
	}

	sr := cfg.Audio.SampleRate
	tl, err := midi.ReadSMF(*in, sr)
	if err != nil {
		return err
	}
	debug.Info("read %d events from %s at %.1f BPM", len(tl.Events), *in, tl.BPM)

	arp := arpeggiator.New()
	arp.SetSpeed(*speed)

	h := host.New(arp)
	if err := h.Prepare(plugin.Config{
		SampleRate:   sr,
		MaxBlockSize: cfg.Audio.BlockSize,
		Main:         bus.Disabled,
	}); err != nil {
		return err
	}
	defer h.Release()

	length := tl.Length() + int64(math.Ceil(*tail*sr))
	res, err := h.Render(host.Input{Events: tl.Events, Length: int(length)})
	if err != nil {
		return err
	}

	if err := midi.WriteSMF(*out, res.Events, sr, tl.BPM); err != nil {
		return err
	}

	fmt.Printf("%s: %d events in, %d events out, step %d samples, %d blocks\n",
		*out, len(tl.Events), len(res.Events), arp.StepLength(), res.Blocks)
	fmt.Println(h.Profiler().Report())
	return nil
}
