package main

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestInterleave(t *testing.T) {
	got := interleave([][]float32{{1, 2, 3}, {4, 5, 6}})
	want := []float32{1, 4, 2, 5, 3, 6}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if interleave(nil) != nil {
		t.Error("interleave(nil) should be nil")
	}
}

func TestFloat32LE(t *testing.T) {
	buf := float32LE([]float32{0.5, -1})
	if len(buf) != 8 {
		t.Fatalf("len = %d, want 8", len(buf))
	}
	if v := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])); v != -1 {
		t.Errorf("second sample = %v, want -1", v)
	}
	if buf[3] != 0x3f {
		t.Errorf("high byte of 0.5 = %#x, want 0x3f", buf[3])
	}
}

func TestSignals(t *testing.T) {
	tone := toneSignal(3, 100, 1000, 250, 0.5)
	if len(tone) != 3 {
		t.Fatalf("channels = %d", len(tone))
	}
	if math.Abs(float64(tone[2][1])-0.5) > 1e-6 {
		t.Errorf("tone peak = %v, want 0.5", tone[2][1])
	}

	pulse := pulseSignal(2, 16, 8, 1, 0.5)
	for i, v := range pulse[1] {
		want := float32(0)
		if i%8 < 4 {
			want = 1
		}
		if v != want {
			t.Errorf("pulse[%d] = %v, want %v", i, v, want)
		}
	}

	if got := toneSignal(0, 10, 1000, 1, 1); len(got) != 0 {
		t.Errorf("zero channels gave %d", len(got))
	}
}

func TestBlockViews(t *testing.T) {
	src := [][]float32{{0, 1, 2, 3}, {4, 5, 6, 7}}
	views := blockViews(make([][]float32, 2), src, 1, 2)
	if views[0][0] != 1 || views[1][1] != 6 || len(views[0]) != 2 {
		t.Errorf("views = %v", views)
	}
}

func TestBurstChannel(t *testing.T) {
	tests := []struct {
		position int64
		want     int
	}{
		{0, 0},
		{99, 0},
		{100, 1},
		{599, 5},
		{600, 0},
	}
	for _, tt := range tests {
		if got := burstChannel(tt.position, 100, 6); got != tt.want {
			t.Errorf("burstChannel(%d) = %d, want %d", tt.position, got, tt.want)
		}
	}
}
