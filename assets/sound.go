package assets

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

func audioCtx() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// TonePCM renders a sine tone as 16-bit little-endian stereo samples, the
// format audio players take from bytes.
func TonePCM(freq float64, d time.Duration) []byte {
	n := int(d.Seconds() * sampleRate)
	if n < 0 {
		n = 0
	}
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
		// short linear fade out to avoid a click at the end
		if rem := n - i; rem < sampleRate/100 {
			v *= float64(rem) / float64(sampleRate/100)
		}
		s := uint16(int16(v * 0.3 * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}

// PlayTone plays a short tone without blocking.
func PlayTone(freq float64, d time.Duration) {
	p := audioCtx().NewPlayerFromBytes(TonePCM(freq, d))
	p.Play()
}
