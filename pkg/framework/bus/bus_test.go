package bus

import "testing"

func TestParseLayout(t *testing.T) {
	tests := []struct {
		in       string
		size     int
		discrete bool
		wantErr  bool
	}{
		{"mono", 1, false, false},
		{"Stereo", 2, false, false},
		{"5.1", 6, false, false},
		{"7.1", 8, false, false},
		{"disabled", 0, false, false},
		{"4", 4, true, false},
		{"0", 0, false, true},
		{"64", 0, false, true},
		{"quad-ish", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l, err := ParseLayout(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLayout(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if l.Size() != tt.size {
				t.Errorf("Size = %d, want %d", l.Size(), tt.size)
			}
			if l.IsDiscrete() != tt.discrete {
				t.Errorf("IsDiscrete = %v, want %v", l.IsDiscrete(), tt.discrete)
			}
		})
	}
}

func TestChannelNames(t *testing.T) {
	want := []string{"L", "R", "C", "Lfe", "Ls", "Rs"}
	for i, name := range want {
		if got := Surround5_1.ChannelName(i); got != name {
			t.Errorf("5.1 channel %d = %q, want %q", i, got, name)
		}
	}

	if got := Discrete(3).ChannelName(2); got != "3" {
		t.Errorf("Discrete channel name = %q, want 3", got)
	}
	if got := Stereo.ChannelName(5); got != "" {
		t.Errorf("Out of range channel name = %q", got)
	}
	if !Surround5_1.Equal(Surround5_1) || Surround5_1.Equal(Surround5_0) {
		t.Error("Equal is wrong")
	}
}

func TestBuilder(t *testing.T) {
	t.Run("MIDIEffect", func(t *testing.T) {
		c := NewMIDIEffect()
		if c.HasAudio() || !c.EventInput || !c.EventOutput {
			t.Errorf("Unexpected MIDI effect configuration: %+v", c)
		}
		if err := c.Supports(Disabled); err != nil {
			t.Errorf("MIDI effect should accept disabled main: %v", err)
		}
		if err := c.Supports(Stereo); err == nil {
			t.Error("MIDI effect should reject audio")
		}
	})

	t.Run("Sidechain", func(t *testing.T) {
		c := NewEffectWithSidechain(Stereo, Stereo)
		if !c.HasSidechain() || c.Sidechain.Size() != 2 {
			t.Error("Sidechain not configured")
		}
		if _, err := NewBuilder().WithMain(Stereo).WithSidechain(Disabled).Build(); err == nil {
			t.Error("Disabled sidechain should fail")
		}
	})

	t.Run("NoOutputs", func(t *testing.T) {
		if _, err := NewBuilder().WithEventInput().Build(); err == nil {
			t.Error("Configuration without outputs should fail")
		}
	})

	t.Run("Surround", func(t *testing.T) {
		c := NewSurroundEffect(Stereo)
		if err := c.Supports(Surround7_1); err != nil {
			t.Errorf("7.1 should be supported: %v", err)
		}
		if err := c.Supports(Discrete(4)); err == nil {
			t.Error("Discrete layout should be rejected")
		}
		if err := c.Supports(Disabled); err == nil {
			t.Error("Disabled main should be rejected")
		}
	})
}
