package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BlipGenerator generates a short fixed-pitch blip
type BlipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBlipGenerator creates a blip sound generator
func NewBlipGenerator(sr beep.SampleRate, freq float64) *BlipGenerator {
	return &BlipGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.25 * math.Sin(2*math.Pi*g.freq*t)

		// Short attack envelope avoids a click on onset
		envelope := math.Min(t/0.005, 1.0)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// SweepGenerator generates a linear frequency sweep
type SweepGenerator struct {
	sr       beep.SampleRate
	fromFreq float64
	toFreq   float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep from fromFreq to toFreq over the given duration
func NewSweepGenerator(sr beep.SampleRate, fromFreq, toFreq float64, duration time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:       sr,
		fromFreq: fromFreq,
		toFreq:   toFreq,
		samples:  sr.N(duration),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.samples)
		if progress > 1.0 {
			progress = 1.0
		}
		freq := g.fromFreq + (g.toFreq-g.fromFreq)*progress

		// Phase accumulation keeps the sweep continuous as frequency changes
		g.phase += freq / float64(g.sr)
		if g.phase >= 1.0 {
			g.phase -= 1.0
		}

		// Fade out over the second half
		amplitude := 0.2
		if progress > 0.5 {
			amplitude *= 2 * (1.0 - progress)
		}

		sample := amplitude * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
