package oscillator

import (
	"math"
	"testing"
)

func zeros(channels, n int) [][]float32 {
	out := make([][]float32, channels)
	for ch := range out {
		out[ch] = make([]float32, n)
	}
	return out
}

func TestProbeToneSilentUntilTriggered(t *testing.T) {
	p := NewProbeTone(1000)
	buf := zeros(2, 64)
	p.Process(buf)

	for ch := range buf {
		for i, v := range buf[ch] {
			if v != 0 {
				t.Fatalf("buf[%d][%d] = %f before Trigger", ch, i, v)
			}
		}
	}
	if p.Active() {
		t.Error("probe active before Trigger")
	}
}

func TestProbeToneBurst(t *testing.T) {
	const sr = 1000.0
	p := NewProbeTone(sr)
	p.Trigger(1)

	total := 0
	var samples []float32
	for block := 0; block < 20; block++ {
		buf := zeros(2, 128)
		p.Process(buf)
		for _, v := range buf[0] {
			if v != 0 {
				t.Fatal("tone leaked into unselected channel")
			}
		}
		samples = append(samples, buf[1]...)
		total += 128
	}

	for i, v := range samples {
		var want float32
		if i < 1000 {
			want = float32(math.Sin(2 * math.Pi * 440 / sr * float64(i)))
		}
		if math.Abs(float64(v-want)) > 1e-6 {
			t.Fatalf("sample %d = %f, want %f", i, v, want)
		}
	}
	if p.Active() || p.Remaining() != 0 {
		t.Errorf("burst still active after %d samples", total)
	}
}

func TestProbeToneAddsToSignal(t *testing.T) {
	p := NewProbeTone(48000)
	p.Trigger(0)

	buf := zeros(1, 4)
	for i := range buf[0] {
		buf[0][i] = 0.5
	}
	p.Process(buf)

	// sin(0) = 0, so the first sample keeps the input unchanged.
	if buf[0][0] != 0.5 {
		t.Errorf("buf[0] = %f, want 0.5", buf[0][0])
	}
	if buf[0][1] <= 0.5 {
		t.Errorf("buf[1] = %f, want tone added above 0.5", buf[0][1])
	}
}

func TestProbeToneRetrigger(t *testing.T) {
	p := NewProbeTone(1000)
	p.Trigger(0)
	p.Process(zeros(1, 600))
	if p.Remaining() != 400 {
		t.Fatalf("Remaining = %d, want 400", p.Remaining())
	}

	p.Trigger(0)
	if p.Remaining() != 1000 {
		t.Errorf("Remaining after retrigger = %d, want 1000", p.Remaining())
	}
}

func TestProbeToneOutOfRangeChannel(t *testing.T) {
	p := NewProbeTone(1000)
	p.Trigger(5)

	buf := zeros(2, 100)
	p.Process(buf)
	for ch := range buf {
		for _, v := range buf[ch] {
			if v != 0 {
				t.Fatal("tone injected for out of range channel")
			}
		}
	}
	if p.Remaining() != 1000 {
		t.Errorf("burst advanced without a target: Remaining = %d", p.Remaining())
	}
}

func TestProbeToneFractionalRate(t *testing.T) {
	p := NewProbeTone(44100.5)
	p.Trigger(0)
	if p.Remaining() != 44101 {
		t.Errorf("Remaining = %d, want 44101", p.Remaining())
	}
}
