package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/justyntemme/blockfx/pkg/config"
	"github.com/justyntemme/blockfx/pkg/framework/plugin"
	"github.com/justyntemme/blockfx/pkg/plugins/arpeggiator"
	"github.com/justyntemme/blockfx/pkg/plugins/noisegate"
)

type statefulPlugin interface {
	plugin.Plugin
	plugin.Stateful
}

func runState(cfg *config.Config, args []string) error {
	if len(args) == 0 || (args[0] != "save" && args[0] != "load") {
		return fmt.Errorf("state: want save or load")
	}
	op := args[0]

	fs := flag.NewFlagSet("state "+op, flag.ContinueOnError)
	file := fs.String("file", "", "state file")
	name := fs.String("plugin", "gate", "gate or arp")
	threshold := fs.Float64("threshold", cfg.NoiseGate.Threshold, "gate threshold to save")
	alpha := fs.Float64("alpha", cfg.NoiseGate.Alpha, "gate alpha to save")
	speed := fs.Float64("speed", cfg.Arpeggiator.Speed, "arpeggiator speed to save")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("state: -file is required")
	}

	var p statefulPlugin
	switch *name {
	case "gate":
		g := noisegate.New()
		g.SetThreshold(*threshold)
		g.SetAlpha(*alpha)
		p = g
	case "arp":
		a := arpeggiator.New()
		a.SetSpeed(*speed)
		p = a
	default:
		return fmt.Errorf("state: unknown plugin %q", *name)
	}

	if op == "save" {
		if err := saveState(p, *file); err != nil {
			return err
		}
	} else if err := loadState(p, *file); err != nil {
		return err
	}

	fmt.Printf("%s %s %s\n", op, p.Info().Name, *file)
	for _, prm := range p.Parameters().All() {
		fmt.Printf("  %-10s %s\n", prm.Name, prm.FormatValue(prm.GetValue()))
	}
	return nil
}

func saveState(p statefulPlugin, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create state file: %w", err)
	}
	if err := p.SaveState(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func loadState(p statefulPlugin, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open state file: %w", err)
	}
	defer f.Close()
	return p.LoadState(f)
}
