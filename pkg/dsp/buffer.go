// Package dsp provides buffer measurements shared by the processors and tools.
package dsp

import "math"

// ChannelMean returns the average of sample j across channels, or 0 when
// there are no channels.
func ChannelMean(channels [][]float32, j int) float32 {
	if len(channels) == 0 {
		return 0
	}
	var sum float32
	for _, ch := range channels {
		sum += ch[j]
	}
	return sum / float32(len(channels))
}

// Peak finds the maximum absolute value in a buffer
func Peak(buffer []float32) float32 {
	peak := float32(0)
	for _, sample := range buffer {
		abs := float32(math.Abs(float64(sample)))
		if abs > peak {
			peak = abs
		}
	}
	return peak
}

// RMS calculates the root mean square of a buffer
func RMS(buffer []float32) float32 {
	if len(buffer) == 0 {
		return 0
	}

	sum := float32(0)
	for _, sample := range buffer {
		sum += sample * sample
	}

	return float32(math.Sqrt(float64(sum / float32(len(buffer)))))
}
