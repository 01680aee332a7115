// Command blockfx runs the blockfx processors offline and interactively.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/justyntemme/blockfx/pkg/config"
	"github.com/justyntemme/blockfx/pkg/framework/debug"
)

type command struct {
	name  string
	usage string
	run   func(cfg *config.Config, args []string) error
}

var commands = []command{
	{"arp", "render a MIDI file through the arpeggiator", runArp},
	{"gate", "gate a test tone with a pulsing sidechain", runGate},
	{"monitor", "show surround channel activity", runMonitor},
	{"state", "save or load processor state", runState},
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: blockfx [-config path] [-v] <command> [flags]\n\ncommands:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.usage)
	}
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "config file (default ~/.config/blockfx/config.json)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	debug.SetLevel(cfg.Level())
	if *verbose {
		debug.SetLevel(debug.LogLevelDebug)
	}

	name, args := flag.Arg(0), flag.Args()[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if err := c.run(cfg, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "unknown command %q\n", name)
	usage()
	os.Exit(2)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}
