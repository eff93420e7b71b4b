package loop

import (
	"github.com/tomz197/wellfall/internal/game"
	"github.com/tomz197/wellfall/internal/store"
)

// Phase represents the current lifecycle phase of a run.
type Phase int

const (
	PhaseIdle    Phase = iota // Title screen, run not started
	PhaseRunning              // Active gameplay
	PhasePaused               // Timers halted, state frozen
	PhaseWon                  // Goal reached before the countdown ran out
	PhaseLost                 // Countdown ran out first
)

// Controller owns the lifecycle of a run: it connects the simulation, the
// spawn/countdown scheduler and persisted bests, and enforces which
// operations are legal in which phase. It has no presentation of its own;
// the frame loop renders from the state it exposes.
type Controller struct {
	Session *game.Session
	sched   *Scheduler
	store   *store.Store
	phase   Phase
}

// NewController creates an idle controller for the given tier, loading
// persisted bests from the store.
func NewController(st *store.Store, d game.Difficulty) *Controller {
	session := game.NewSession(d)
	session.BestCombo = st.GetInt(store.KeyBestCombo)
	for _, tier := range game.Difficulties {
		session.BestPct[tier] = st.GetInt(store.BestPctKey(tier))
	}
	return &Controller{
		Session: session,
		sched:   NewScheduler(session.SpawnInterval),
		store:   st,
		phase:   PhaseIdle,
	}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Start begins a run. From a finished run it resets first; from pause it
// resumes. Starting an already running run is a no-op.
func (c *Controller) Start() {
	switch c.phase {
	case PhaseRunning:
		return
	case PhaseWon, PhaseLost:
		c.Session.Reset(c.Session.Difficulty)
		c.sched.RescheduleSpawn(c.Session.SpawnInterval)
	case PhasePaused:
		// Resume with whatever cadence the run had ramped to.
	}
	c.sched.Start()
	c.phase = PhaseRunning
}

// PauseToggle flips between running and paused. It only applies mid-run;
// idle and finished runs have nothing to pause.
func (c *Controller) PauseToggle() {
	switch c.phase {
	case PhaseRunning:
		c.sched.Stop()
		c.phase = PhasePaused
	case PhasePaused:
		c.sched.Start()
		c.phase = PhaseRunning
	}
}

// Pause halts a running run. Used for inactivity auto-pause.
func (c *Controller) Pause() {
	if c.phase == PhaseRunning {
		c.sched.Stop()
		c.phase = PhasePaused
	}
}

// Reset abandons the current run and reinitializes per-run state for the
// same tier. Bests survive. With autoStart the new run begins immediately,
// otherwise the controller returns to idle.
func (c *Controller) Reset(autoStart bool) {
	c.Session.Reset(c.Session.Difficulty)
	c.sched.Stop()
	c.sched.RescheduleSpawn(c.Session.SpawnInterval)
	if autoStart {
		c.sched.Start()
		c.phase = PhaseRunning
	} else {
		c.phase = PhaseIdle
	}
}

// SelectDifficulty switches the tier. Only legal while idle, so a tier
// switch can never rewrite a run in flight. Returns whether it applied.
func (c *Controller) SelectDifficulty(d game.Difficulty) bool {
	if c.phase != PhaseIdle {
		return false
	}
	c.Session.Reset(d)
	c.sched.RescheduleSpawn(c.Session.SpawnInterval)
	return true
}

// TapAt forwards a pointer tap into the simulation. Only a running run
// consumes items.
func (c *Controller) TapAt(x, y float64) []game.Event {
	if c.phase != PhaseRunning {
		return nil
	}
	events := c.Session.TapAt(x, y)
	c.afterEvents(events)
	return events
}

// Advance drives the run forward by dt seconds: due spawns, item movement
// and collisions, then due countdown ticks. Returns the simulation events
// of this frame for the caller to present.
func (c *Controller) Advance(dt float64) []game.Event {
	if c.phase != PhaseRunning {
		return nil
	}

	spawns, ticks := c.sched.Advance(dt)
	for i := 0; i < spawns; i++ {
		c.Session.SpawnItem()
	}

	events := c.Session.Step(dt)

	for i := 0; i < ticks && c.phase == PhaseRunning; i++ {
		timeUp, faster := c.Session.CountdownTick()
		if faster {
			c.sched.RescheduleSpawn(c.Session.SpawnInterval)
		}
		if timeUp {
			c.endRun(PhaseLost)
		}
	}

	c.afterEvents(events)
	return events
}

// afterEvents applies run-level consequences of simulation events: a win
// ends the run, and a new best combo is persisted immediately so a dropped
// connection cannot lose it.
func (c *Controller) afterEvents(events []game.Event) {
	for _, ev := range events {
		if ev.Kind == game.EventWin && c.phase == PhaseRunning {
			c.endRun(PhaseWon)
		}
	}
	if c.Session.BestCombo > c.store.GetInt(store.KeyBestCombo) {
		c.store.SetInt(store.KeyBestCombo, c.Session.BestCombo)
	}
}

// endRun stops the timers and records the tier's best fill percent.
func (c *Controller) endRun(result Phase) {
	c.sched.Stop()
	c.phase = result

	pct := c.Session.FinalPercent()
	key := store.BestPctKey(c.Session.Difficulty)
	if pct > c.store.GetInt(key) {
		c.store.SetInt(key, pct)
		c.Session.BestPct[c.Session.Difficulty] = pct
	}
}
