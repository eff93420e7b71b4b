package game

import (
	"math"
	"math/rand"
	"time"
)

// Default paddle geometry.
const (
	paddleWidth     = 80.0
	paddleHeight    = 32.0
	paddleSpeed     = 380.0
	paddleBottomGap = 14.0 // Distance from paddle to the bottom edge
)

// Spawn cadence ramp: every 15 seconds of elapsed run time the interval
// between spawns shrinks by a fixed step, down to a floor. The ramp is
// independent of the tier's base interval.
const (
	SpawnIntervalStep  = 80  // Milliseconds removed per ramp step
	SpawnIntervalFloor = 450 // Minimum spawn interval in milliseconds
	spawnRampSeconds   = 15
)

// Session owns all mutable simulation state for one player: score, combo,
// progress, the countdown, the paddle and the active falling items. It is
// the single owner of that state; callers mutate it only through methods,
// all from one goroutine.
type Session struct {
	Difficulty Difficulty
	Settings   Settings

	Score         int
	Combo         int
	BestCombo     int // High-water mark, persisted by the caller
	BestPct       map[Difficulty]int
	Progress      float64 // 0..ProgressGoal, fractional internally
	Timer         int     // Seconds remaining
	SpawnInterval int     // Current milliseconds between spawns
	Won           bool

	Items  []*Item
	Paddle Paddle

	heldLeft, heldRight bool
	milestones          []bool
	rng                 *rand.Rand
}

// NewSession creates a session for the given tier with zeroed run state.
func NewSession(d Difficulty) *Session {
	s := &Session{
		BestPct: make(map[Difficulty]int),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.Reset(d)
	return s
}

// SetRand replaces the session's random source. Useful for deterministic tests.
func (s *Session) SetRand(r *rand.Rand) {
	s.rng = r
}

// Reset reinitializes all per-run state to the given tier's defaults.
// Best-combo and best-percent survive resets; they span runs.
func (s *Session) Reset(d Difficulty) {
	s.Difficulty = d
	s.Settings = SettingsFor(d)
	s.Score = 0
	s.Combo = 0
	s.Progress = 0
	s.Timer = s.Settings.Timer
	s.SpawnInterval = s.Settings.SpawnInterval
	s.Won = false
	s.Items = s.Items[:0]
	s.milestones = make([]bool, len(milestoneThresholds))
	s.heldLeft = false
	s.heldRight = false

	s.Paddle = Paddle{
		X:     (PlayWidth - paddleWidth) / 2,
		Y:     PlayHeight - paddleBottomGap - paddleHeight,
		W:     paddleWidth,
		H:     paddleHeight,
		Speed: paddleSpeed,
	}
}

// SetHeld records which movement keys are currently held.
func (s *Session) SetHeld(left, right bool) {
	s.heldLeft = left
	s.heldRight = right
}

// MovePaddleTo centers the paddle on the given x coordinate, clamped to the
// play area. Used for pointer-driven positioning.
func (s *Session) MovePaddleTo(x float64) {
	s.Paddle.X = clamp(x-s.Paddle.W/2, 0, PlayWidth-s.Paddle.W)
}

// TapAt consumes the topmost unconsumed item under the given point,
// catching a can or taking a hazard hit directly. Returns the resulting
// events, or nil if no item was hit. Safe to race with the frame loop's
// collision pass: a consumed item is never processed twice.
func (s *Session) TapAt(x, y float64) []Event {
	for _, it := range s.Items {
		if it.Consumed {
			continue
		}
		if it.Contains(x, y) {
			return s.consume(it)
		}
	}
	return nil
}

// CountdownTick advances the one-second countdown. Returns whether the run
// is out of time and whether the spawn cadence changed (the caller must
// reschedule its spawn timer when it did).
func (s *Session) CountdownTick() (timeUp, faster bool) {
	if s.Timer <= 0 {
		return true, false
	}
	s.Timer--
	if s.Timer%spawnRampSeconds == 0 && s.SpawnInterval > SpawnIntervalFloor {
		s.SpawnInterval -= SpawnIntervalStep
		if s.SpawnInterval < SpawnIntervalFloor {
			s.SpawnInterval = SpawnIntervalFloor
		}
		faster = true
	}
	return s.Timer <= 0, faster
}

// ProgressPercent returns the progress rounded for display. The win check
// uses the unrounded value; only presentation rounds.
func (s *Session) ProgressPercent() int {
	return int(math.Round(s.Progress))
}

// FinalPercent returns the display percent capped at the tier's goal,
// as recorded in the per-tier best list.
func (s *Session) FinalPercent() int {
	pct := s.ProgressPercent()
	if goal := int(s.Settings.ProgressGoal); pct > goal {
		pct = goal
	}
	return pct
}
