package plugin

import (
	"errors"
	"fmt"

	"github.com/justyntemme/blockfx/pkg/framework/bus"
)

// Config is the topology a processor is prepared for. It stays fixed
// until the next Prepare.
type Config struct {
	SampleRate   float64
	MaxBlockSize int
	Main         bus.Layout
	Sidechain    bus.Layout
}

// MainChannels returns the main bus channel count.
func (c Config) MainChannels() int {
	return c.Main.Size()
}

// SidechainChannels returns the sidechain channel count.
func (c Config) SidechainChannels() int {
	return c.Sidechain.Size()
}

// Validate checks the values every processor relies on.
func (c Config) Validate() error {
	var errs []error
	if !(c.SampleRate > 0) {
		errs = append(errs, fmt.Errorf("invalid sample rate %v", c.SampleRate))
	}
	if c.MaxBlockSize <= 0 {
		errs = append(errs, fmt.Errorf("invalid block size %d", c.MaxBlockSize))
	}
	if c.Main.Size() > bus.MaxChannels || c.Sidechain.Size() > bus.MaxChannels {
		errs = append(errs, errors.New("too many channels"))
	}
	return errors.Join(errs...)
}

func (c Config) String() string {
	s := fmt.Sprintf("%.0f Hz, %d samples, main %s", c.SampleRate, c.MaxBlockSize, c.Main)
	if !c.Sidechain.IsDisabled() {
		s += ", sidechain " + c.Sidechain.String()
	}
	return s
}
