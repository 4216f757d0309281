package parameter

import "time"

// Audio cues
const (
	// AudioSampleRate is the output sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// LaunchToneBaseHz is the launch cue pitch at minimum power
	LaunchToneBaseHz = 220.0

	// LaunchToneStepHz raises the cue pitch per unit of power above the minimum
	LaunchToneStepHz = 110.0

	// LaunchToneDuration is the launch cue length
	LaunchToneDuration = 60 * time.Millisecond
)
