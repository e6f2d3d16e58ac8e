package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/flipmatch/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase, keeping it in [0, 1)
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes a streamer with linear attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateRevealSound generates a short flip tick
func CreateRevealSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(1200.0, constants.RevealSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.RevealSoundDuration, time.Millisecond, 20*time.Millisecond, rate)
	return newVolume(shaped, 0.3)
}

// CreateMatchSound generates a bright ding for a resolved pair
func CreateMatchSound(rate beep.SampleRate) beep.Streamer {
	// Fundamental (A5) with an octave overtone
	fund := NewOscillator(880.0, constants.MatchSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.MatchSoundDuration, constants.MatchSoundAttack, constants.MatchSoundRelease, rate)

	over := NewOscillator(1760.0, constants.MatchSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.MatchSoundDuration, constants.MatchSoundAttack, constants.MatchSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, 0.8)
}

// CreateMismatchSound generates a short harsh buzz for a failed turn
func CreateMismatchSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(110.0, constants.MismatchSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.MismatchSoundDuration, constants.MismatchSoundAttack, constants.MismatchSoundRelease, rate)
	return newVolume(shaped, 0.6)
}

// CreateVictorySound generates an ascending three-note chime
func CreateVictorySound(rate beep.SampleRate) beep.Streamer {
	// C6 - E6 - G6
	freqs := []float64{1046.50, 1318.51, 1567.98}
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		osc := NewOscillator(f, constants.VictoryNoteDuration, WaveSquare, rate)
		notes = append(notes, NewEnvelope(osc, constants.VictoryNoteDuration, constants.VictoryNoteAttack, constants.VictoryNoteRelease, rate))
	}
	return newVolume(beep.Seq(notes...), 0.7)
}
