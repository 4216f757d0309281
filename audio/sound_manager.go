package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/lobber/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// Cues plays short feedback sounds through a shared mixer
// Playing before Initialize, after Close, or when the device failed to open is a silent no-op
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	powerMin    float64
	volume      float64
	logger      zerolog.Logger
}

// NewCues creates an idle cue player; powerMin anchors the launch pitch
func NewCues(powerMin float64, logger zerolog.Logger) *Cues {
	return &Cues{
		mixer:    &beep.Mixer{},
		powerMin: powerMin,
		volume:   0.5,
		logger:   logger.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the speaker and starts the mixer
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(c.mixer)
	c.initialized = true
	c.logger.Info().Int("sample_rate", int(sampleRate)).Msg("audio ready")
	return nil
}

// Close stops all sounds and releases the speaker
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// PlayLaunch plays a short tone whose pitch rises with launch power
func (c *Cues) PlayLaunch(power float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	tone, err := LaunchTone(sampleRate, LaunchFrequency(power, c.powerMin), parameter.LaunchToneDuration, c.volume)
	if err != nil {
		c.logger.Warn().Err(err).Float64("power", power).Msg("launch tone")
		return
	}

	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}
