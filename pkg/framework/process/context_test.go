package process

import (
	"strings"
	"testing"

	"github.com/justyntemme/blockfx/pkg/framework/param"
	"github.com/justyntemme/blockfx/pkg/midi"
)

func TestContextConfigure(t *testing.T) {
	ctx := NewContext(512, param.NewRegistry())
	if err := ctx.Configure(2, 1, 16); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	if ctx.NumInputChannels() != 2 || ctx.NumOutputChannels() != 2 || ctx.NumSidechainChannels() != 1 {
		t.Errorf("channels: in=%d out=%d sc=%d",
			ctx.NumInputChannels(), ctx.NumOutputChannels(), ctx.NumSidechainChannels())
	}
	if ctx.NumSamples() != 512 {
		t.Errorf("Expected 512 samples after Configure, got %d", ctx.NumSamples())
	}
	if ctx.InputEvents.Cap() != 16 || ctx.OutputEvents.Cap() != 16 {
		t.Errorf("event capacity %d/%d, want 16", ctx.InputEvents.Cap(), ctx.OutputEvents.Cap())
	}

	if err := ctx.Configure(-1, 0, 0); err == nil {
		t.Error("expected error for negative channel count")
	}
}

func TestContextSetBlockLength(t *testing.T) {
	ctx := NewContext(256, nil)
	if err := ctx.Configure(1, 2, 0); err != nil {
		t.Fatal(err)
	}

	ctx.SetBlockLength(100)
	if ctx.NumSamples() != 100 || len(ctx.Input[0]) != 100 || len(ctx.Output[0]) != 100 || len(ctx.Sidechain[1]) != 100 {
		t.Errorf("views not resliced to 100 samples")
	}

	allocs := testing.AllocsPerRun(100, func() {
		ctx.SetBlockLength(64)
		ctx.SetBlockLength(256)
	})
	if allocs != 0 {
		t.Errorf("SetBlockLength allocated %f times", allocs)
	}
}

func TestContextSetBlockLengthTooLong(t *testing.T) {
	ctx := NewContext(64, nil)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for oversized block")
		}
	}()
	ctx.SetBlockLength(65)
}

func TestContextPassThroughAndClear(t *testing.T) {
	ctx := NewContext(4, nil)
	if err := ctx.Configure(2, 0, 0); err != nil {
		t.Fatal(err)
	}
	copy(ctx.Input[0], []float32{1, 2, 3, 4})
	copy(ctx.Input[1], []float32{-1, -2, -3, -4})

	ctx.PassThrough()
	if ctx.Output[0][2] != 3 || ctx.Output[1][3] != -4 {
		t.Errorf("PassThrough did not copy: %v", ctx.Output)
	}

	ctx.Clear()
	for ch := range ctx.Output {
		for i, v := range ctx.Output[ch] {
			if v != 0 {
				t.Errorf("Output[%d][%d] = %f after Clear", ch, i, v)
			}
		}
	}
}

func TestContextEvents(t *testing.T) {
	ctx := NewContext(512, nil)
	if err := ctx.Configure(0, 0, 4); err != nil {
		t.Fatal(err)
	}

	ctx.InputEvents.Add(midi.NoteOn(0, 60, 100, 100))
	ctx.InputEvents.Add(midi.NoteOff(0, 60, 200))

	if got := ctx.InputEvents.InRange(0, 150); len(got) != 1 {
		t.Errorf("Expected 1 event in range [0, 150), got %d", len(got))
	}

	if !ctx.EmitEvent(midi.NoteOn(0, 64, 127, 10)) {
		t.Error("EmitEvent failed on empty list")
	}
	if ctx.OutputEvents.Len() != 1 {
		t.Errorf("Expected 1 output event, got %d", ctx.OutputEvents.Len())
	}

	ctx.ClearEvents()
	if ctx.InputEvents.Len() != 0 || ctx.OutputEvents.Len() != 0 {
		t.Error("Expected no events after ClearEvents")
	}
}

func TestRequireChannels(t *testing.T) {
	ctx := NewContext(16, nil)
	if err := ctx.Configure(2, 1, 0); err != nil {
		t.Fatal(err)
	}

	ctx.RequireChannels(2, 1)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on channel mismatch")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "6 main channels") {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	ctx.RequireChannels(6, 1)
}

func TestContextParams(t *testing.T) {
	reg := param.NewRegistry()
	reg.MustAdd(param.New(1, "Speed").Default(0.25).Build())
	ctx := NewContext(16, reg)

	if got := ctx.Param(1); got != 0.25 {
		t.Errorf("Param(1) = %f, want 0.25", got)
	}
	if got := ctx.Param(99); got != 0 {
		t.Errorf("Param(99) = %f, want 0", got)
	}
}
