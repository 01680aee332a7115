package plugin

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/justyntemme/blockfx/pkg/framework/bus"
	"github.com/justyntemme/blockfx/pkg/framework/param"
)

func TestInfoValidate(t *testing.T) {
	tests := []struct {
		name    string
		info    Info
		wantErr bool
	}{
		{"complete", Info{ID: "com.blockfx.gate", Name: "Noise Gate"}, false},
		{"missing ID", Info{Name: "Noise Gate"}, true},
		{"missing name", Info{ID: "com.blockfx.gate"}, true},
		{"empty", Info{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.info.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInfoString(t *testing.T) {
	if got := (Info{Name: "Arpeggiator", Version: "1.0.0"}).String(); got != "Arpeggiator 1.0.0" {
		t.Errorf("got %q", got)
	}
	if got := (Info{Name: "Surround"}).String(); got != "Surround" {
		t.Errorf("got %q", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"stereo", Config{SampleRate: 44100, MaxBlockSize: 512, Main: bus.Stereo}, false},
		{"zero sample rate", Config{MaxBlockSize: 512, Main: bus.Stereo}, true},
		{"negative sample rate", Config{SampleRate: -1, MaxBlockSize: 512}, true},
		{"zero block size", Config{SampleRate: 44100, Main: bus.Stereo}, true},
		{"too many channels", Config{SampleRate: 44100, MaxBlockSize: 64, Main: bus.Discrete(bus.MaxChannels + 1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBasePrepare(t *testing.T) {
	gate := NewBase(Info{ID: "gate", Name: "Gate"}, bus.NewEffectWithSidechain(bus.Stereo, bus.Stereo))
	arp := NewBase(Info{ID: "arp", Name: "Arp"}, bus.NewMIDIEffect())
	surround := NewBase(Info{ID: "surround", Name: "Surround"}, bus.NewSurroundEffect(bus.Surround5_1))

	tests := []struct {
		name    string
		base    *Base
		cfg     Config
		wantErr bool
	}{
		{"gate with sidechain", gate, Config{SampleRate: 48000, MaxBlockSize: 256, Main: bus.Stereo, Sidechain: bus.Mono}, false},
		{"gate disabled main", gate, Config{SampleRate: 48000, MaxBlockSize: 256}, true},
		{"arp no audio", arp, Config{SampleRate: 44100, MaxBlockSize: 512}, false},
		{"arp with audio", arp, Config{SampleRate: 44100, MaxBlockSize: 512, Main: bus.Stereo}, true},
		{"arp with sidechain", arp, Config{SampleRate: 44100, MaxBlockSize: 512, Sidechain: bus.Mono}, true},
		{"surround 7.1", surround, Config{SampleRate: 48000, MaxBlockSize: 512, Main: bus.Surround7_1}, false},
		{"surround discrete", surround, Config{SampleRate: 48000, MaxBlockSize: 512, Main: bus.Discrete(4)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.base.Prepare(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Prepare() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tt.base.SampleRate() != tt.cfg.SampleRate {
				t.Errorf("SampleRate = %f, want %f", tt.base.SampleRate(), tt.cfg.SampleRate)
			}
		})
	}
}

func TestBaseState(t *testing.T) {
	b := NewBase(Info{ID: "arp", Name: "Arp"}, bus.NewMIDIEffect())
	b.Parameters().MustAdd(param.New(0, "Speed").Default(0.5).Build())

	if b.StateSize() != 4 {
		t.Fatalf("StateSize = %d, want 4", b.StateSize())
	}

	b.Parameters().Get(0).SetPlainValue(0.25)
	var buf bytes.Buffer
	if err := b.SaveState(&buf); err != nil {
		t.Fatal(err)
	}

	b.Parameters().ResetAll()
	if err := b.LoadState(&buf); err != nil {
		t.Fatal(err)
	}
	if got := b.Parameters().Get(0).GetPlainValue(); got != 0.25 {
		t.Errorf("speed = %f after load, want 0.25", got)
	}

	err := b.LoadState(strings.NewReader("ab"))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}
