package loop

import "time"

// Game configuration constants.
// All tunable loop parameters are centralized here for easy adjustment.

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Max render resolution. Larger terminals center the play area and draw a
// border around it instead of stretching further.
const (
	maxTermWidth  = 160
	maxTermHeight = 50
)

// Presentation timing
const (
	labelLifetimeSeconds  = 1.1 // Floating feedback labels
	bannerDisplaySeconds  = 2.2 // Milestone fact banner
	shakeDurationSeconds  = 0.25
	shakeAmplitudeColumns = 1
)

// Inactivity
const (
	inactivityPauseSeconds      = 30  // Auto-pause a running game
	inactivityDisconnectSeconds = 300 // Drop the session entirely
)
