package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Bounce blip shape
const (
	blipFreq    = 660.0
	blipLength  = 60 * time.Millisecond
	blipAttack  = 5 * time.Millisecond
	blipRelease = 40 * time.Millisecond
)

// sineOsc generates a fixed-length sine wave
type sineOsc struct {
	freq     float64
	phase    float64
	total    int
	position int
	rate     beep.SampleRate
}

func newSineOsc(freq float64, duration time.Duration, rate beep.SampleRate) *sineOsc {
	return &sineOsc{
		freq:  freq,
		total: rate.N(duration),
		rate:  rate,
	}
}

func (o *sineOsc) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *sineOsc) Err() error { return nil }

// envelope applies linear attack/release shaping so the blip starts and ends
// without clicks
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att = total / 2
		rel = total - att
	}
	return &envelope{
		streamer: s,
		attack:   att,
		release:  rel,
		total:    total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release && e.release > 0 {
			vol = float64(remaining) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newBlip builds one complete bounce blip streamer
func newBlip(rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newSineOsc(blipFreq, blipLength, rate), blipLength, blipAttack, blipRelease, rate)
}
