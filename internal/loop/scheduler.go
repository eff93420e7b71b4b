package loop

// Scheduler drives the two recurring timers of a run, item spawning and the
// one-second countdown, off accumulated frame time. Using frame deltas
// instead of wall-clock timers keeps the run fully deterministic under test
// and makes pause trivial: a stopped scheduler simply ignores Advance.
type Scheduler struct {
	running       bool
	spawnInterval float64 // Seconds between spawns
	spawnAcc      float64
	tickAcc       float64
}

// NewScheduler creates a stopped scheduler with the given spawn interval in
// milliseconds.
func NewScheduler(spawnIntervalMS int) *Scheduler {
	return &Scheduler{spawnInterval: float64(spawnIntervalMS) / 1000}
}

// Start begins (or resumes) the timers. Accumulated partial intervals are
// discarded, so resuming from pause restarts both periods from zero.
func (s *Scheduler) Start() {
	s.running = true
	s.spawnAcc = 0
	s.tickAcc = 0
}

// Stop halts the timers.
func (s *Scheduler) Stop() {
	s.running = false
}

// Running reports whether the timers are active.
func (s *Scheduler) Running() bool {
	return s.running
}

// RescheduleSpawn changes the spawn period to the given interval in
// milliseconds. The accumulated partial period carries over, so a ramp-up
// mid-period never skips or doubles a spawn.
func (s *Scheduler) RescheduleSpawn(intervalMS int) {
	s.spawnInterval = float64(intervalMS) / 1000
}

// SpawnIntervalMS returns the current spawn period in milliseconds.
func (s *Scheduler) SpawnIntervalMS() int {
	return int(s.spawnInterval * 1000)
}

// Advance accumulates dt seconds and returns how many spawns and countdown
// ticks are due. A stopped scheduler returns zero for both.
func (s *Scheduler) Advance(dt float64) (spawns, ticks int) {
	if !s.running {
		return 0, 0
	}
	s.spawnAcc += dt
	for s.spawnAcc >= s.spawnInterval {
		s.spawnAcc -= s.spawnInterval
		spawns++
	}
	s.tickAcc += dt
	for s.tickAcc >= 1 {
		s.tickAcc--
		ticks++
	}
	return spawns, ticks
}
