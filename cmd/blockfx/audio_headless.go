//go:build headless

package main

import "errors"

func playInterleaved(samples []float32, sampleRate, channelCount int) error {
	return errors.New("audio output not available in headless builds")
}
