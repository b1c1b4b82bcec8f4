package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type sounds struct {
	ok bool
}

// newSounds starts the speaker. Without audio the editor runs silently.
func newSounds() *sounds {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[termedit] audio initialization failed: %v", err)
		return &sounds{}
	}
	return &sounds{ok: true}
}

func (s *sounds) tone(freq float64, d time.Duration) {
	if !s.ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// saved plays a short high tone, or a longer low one when the save failed.
func (s *sounds) saved(err error) {
	if err != nil {
		s.tone(220, 300*time.Millisecond)
		return
	}
	s.tone(880, 80*time.Millisecond)
}

func (s *sounds) Close() {
	if s.ok {
		speaker.Close()
	}
}
