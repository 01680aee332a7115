//go:build !headless

package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

// playInterleaved plays interleaved float32 frames and returns when
// playback ends.
func playInterleaved(samples []float32, sampleRate, channelCount int) error {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("audio output: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(bytes.NewReader(float32LE(samples)))
	defer player.Close()

	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return player.Err()
}
