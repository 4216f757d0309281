package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/lobber/parameter"
)

// LaunchFrequency maps launch power to a tone frequency, one step per unit above powerMin
func LaunchFrequency(power, powerMin float64) float64 {
	return parameter.LaunchToneBaseHz + math.Max(power-powerMin, 0)*parameter.LaunchToneStepHz
}

// LaunchTone is a sine at freq, faded in over a tenth and out over half of duration
func LaunchTone(rate beep.SampleRate, freq float64, duration time.Duration, vol float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.1f Hz: %w", freq, err)
	}
	return gain(Shape(sine, rate, duration, duration/10, duration/2), vol), nil
}

// ramp applies linear in/out gain over a known length; Take does the cut
type ramp struct {
	src             beep.Streamer
	pos, total      int
	attack, release int
}

// Shape limits s to duration and ramps it in over attack and out over release
func Shape(s beep.Streamer, rate beep.SampleRate, duration, attack, release time.Duration) beep.Streamer {
	total := rate.N(duration)
	return beep.Take(total, &ramp{
		src:     s,
		total:   total,
		attack:  rate.N(attack),
		release: rate.N(release),
	})
}

func (r *ramp) level(pos int) float64 {
	g := 1.0
	if r.attack > 0 {
		g = min(g, float64(pos)/float64(r.attack))
	}
	if r.release > 0 {
		g = min(g, float64(r.total-pos)/float64(r.release))
	}
	return max(g, 0)
}

func (r *ramp) Stream(samples [][2]float64) (int, bool) {
	n, ok := r.src.Stream(samples)
	for i := range samples[:n] {
		g := r.level(r.pos + i)
		samples[i][0] *= g
		samples[i][1] *= g
	}
	r.pos += n
	return n, ok
}

func (r *ramp) Err() error { return r.src.Err() }

// gain scales s linearly; effects.Volume works in log2 so zero is mapped to Silent
func gain(s beep.Streamer, vol float64) beep.Streamer {
	v := &effects.Volume{Streamer: s, Base: 2}
	if vol <= 0 {
		v.Silent = true
	} else {
		v.Volume = math.Log2(vol)
	}
	return v
}
