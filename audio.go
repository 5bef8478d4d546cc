package main

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	chimeSampleRate = 44100
	chimeFrequency  = 880.0
	chimeDuration   = 400 * time.Millisecond
)

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxReady      bool
)

// initAudioContext initializes the global audio context once
func initAudioContext() {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   chimeSampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			log.Printf("Failed to initialize audio context: %v", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		audioCtxReady = true
		log.Println("Audio context initialized successfully")
	})
}

// playChime plays a short synthesized tone to mark an event start
func playChime() {
	initAudioContext()

	if !audioCtxReady || globalAudioCtx == nil {
		log.Printf("Audio context not ready")
		return
	}

	pcm := synthesizeTone(chimeFrequency, chimeDuration)

	// Play in a goroutine so it doesn't block the notification check
	go func() {
		player := globalAudioCtx.NewPlayer(bytes.NewReader(pcm))
		player.Play()

		for player.IsPlaying() {
			time.Sleep(time.Millisecond)
		}

		if err := player.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}
	}()
}

// synthesizeTone renders a sine tone as signed 16-bit little-endian PCM,
// with a linear fade-out so the tone ends without a click
func synthesizeTone(freq float64, duration time.Duration) []byte {
	sampleCount := int(chimeSampleRate * duration.Seconds())

	buf := new(bytes.Buffer)
	for i := 0; i < sampleCount; i++ {
		t := float64(i) / chimeSampleRate
		fade := 1 - float64(i)/float64(sampleCount)
		sample := math.Sin(2*math.Pi*freq*t) * fade * 0.4

		binary.Write(buf, binary.LittleEndian, int16(sample*math.MaxInt16))
	}

	return buf.Bytes()
}
