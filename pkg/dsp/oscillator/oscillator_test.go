package oscillator

import (
	"math"
	"testing"
)

func TestOscillatorSine(t *testing.T) {
	o := New(8, 1)
	buf := make([]float32, 8)
	o.FillSine(buf)

	for i, v := range buf {
		want := math.Sin(2 * math.Pi * float64(i) / 8)
		if math.Abs(float64(v)-want) > 1e-6 {
			t.Errorf("sample %d = %f, want %f", i, v, want)
		}
	}
}

func TestOscillatorAmplitude(t *testing.T) {
	o := New(4, 1)
	o.SetAmplitude(0.25)
	o.SetPhase(0.25)
	if got := o.Sine(); math.Abs(float64(got)-0.25) > 1e-6 {
		t.Errorf("peak = %f, want 0.25", got)
	}
}

func TestOscillatorGate(t *testing.T) {
	o := New(8, 1)
	buf := make([]float32, 16)
	o.FillGate(buf, 0.375)

	for i, v := range buf {
		want := float32(0)
		if i%8 < 3 {
			want = 1
		}
		if v != want {
			t.Errorf("sample %d = %f, want %f", i, v, want)
		}
	}
}

func TestOscillatorAddSineAndReset(t *testing.T) {
	o := New(4, 1)
	buf := []float32{1, 1, 1, 1}
	o.AddSine(buf)
	if math.Abs(float64(buf[1])-2) > 1e-6 || math.Abs(float64(buf[3])) > 1e-6 {
		t.Errorf("AddSine = %v", buf)
	}

	o.Reset()
	if got := o.Sine(); got != 0 {
		t.Errorf("first sample after Reset = %f", got)
	}
}
