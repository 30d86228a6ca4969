package haptics

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate       = beep.SampleRate(44100)
	defaultFrequency = 880.0
	defaultLength    = 60 * time.Millisecond
	toneAmplitude    = 0.6
)

var speakerInit struct {
	once sync.Once
	err  error
}

// Beeper plays a short decaying tone for each pulse.
type Beeper struct {
	frequency float64
	length    time.Duration
}

// NewBeeper opens the speaker once per process and returns a tone pulser.
func NewBeeper(frequency float64, length time.Duration) (*Beeper, error) {
	if frequency <= 0 {
		frequency = defaultFrequency
	}
	if length <= 0 {
		length = defaultLength
	}
	speakerInit.once.Do(func() {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			speakerInit.err = fmt.Errorf("init speaker: %w", err)
		}
	})
	if speakerInit.err != nil {
		return nil, speakerInit.err
	}
	return &Beeper{frequency: frequency, length: length}, nil
}

// Pulse queues the tone on the speaker mixer without waiting for playback.
func (beeper *Beeper) Pulse() {
	speaker.Play(tone(sampleRate, beeper.frequency, beeper.length))
}

// tone returns a sine tone with a linear fade-out so the tick does not click.
func tone(rate beep.SampleRate, frequency float64, length time.Duration) beep.Streamer {
	total := rate.N(length)
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if position >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && position < total {
			elapsed := float64(position) / float64(rate)
			envelope := 1 - float64(position)/float64(total)
			value := math.Sin(2*math.Pi*frequency*elapsed) * envelope * toneAmplitude
			samples[n][0] = value
			samples[n][1] = value
			position++
			n++
		}
		return n, true
	})
}
