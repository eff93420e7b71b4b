package game

import "testing"

// catchWithoutBonus catches one can and suppresses the combo counter so the
// per-tier combo bonus never fires. Used to test the base progress arithmetic.
func catchWithoutBonus(s *Session) []Event {
	events := catchOne(s)
	s.Combo = 0
	return events
}

func TestWinAfterTwentyCatchesOnNormal(t *testing.T) {
	s := newTestSession(DifficultyNormal)

	for i := 0; i < 19; i++ {
		catchWithoutBonus(s)
	}
	if s.Won {
		t.Fatalf("won after 19 catches with progress %v", s.Progress)
	}

	events := catchWithoutBonus(s)
	if s.Progress != 100 {
		t.Fatalf("progress=%v after 20 catches, want 100", s.Progress)
	}
	if !s.Won || countKind(events, EventWin) != 1 {
		t.Fatalf("no win after 20 catches: %+v", events)
	}
}

func TestEasyModeEndToEndWin(t *testing.T) {
	s := newTestSession(DifficultyEasy)

	var won bool
	for i := 0; i < 15; i++ {
		if countKind(catchWithoutBonus(s), EventWin) > 0 {
			won = true
		}
	}
	// 15 catches at 6 points reach the Easy goal of 90 exactly.
	if s.Progress != 90 || !won {
		t.Fatalf("progress=%v won=%v after 15 easy catches, want 90 and true", s.Progress, won)
	}
	if s.Score != 15 {
		t.Fatalf("final score=%d, want 15", s.Score)
	}
}

func TestResetRestoresTierDefaults(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	for i := 0; i < 5; i++ {
		s.SpawnItem()
	}
	catchOne(s)
	s.CountdownTick()

	s.Reset(DifficultyNormal)

	if len(s.Items) != 0 {
		t.Fatalf("%d items after reset, want 0", len(s.Items))
	}
	if s.Timer != s.Settings.Timer {
		t.Fatalf("timer=%d after reset, want %d", s.Timer, s.Settings.Timer)
	}
	if s.SpawnInterval != s.Settings.SpawnInterval {
		t.Fatalf("spawnInterval=%d after reset, want %d", s.SpawnInterval, s.Settings.SpawnInterval)
	}
	if s.Score != 0 || s.Combo != 0 || s.Progress != 0 || s.Won {
		t.Fatalf("run state survived reset: score=%d combo=%d progress=%v won=%v",
			s.Score, s.Combo, s.Progress, s.Won)
	}
}

func TestResetAppliesNewTier(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	s.Reset(DifficultyHard)

	if s.Difficulty != DifficultyHard {
		t.Fatalf("difficulty=%s, want hard", s.Difficulty)
	}
	if s.Timer != 45 || s.SpawnInterval != 680 || s.Settings.ProgressGoal != 120 {
		t.Fatalf("hard tier not applied: timer=%d interval=%d goal=%v",
			s.Timer, s.SpawnInterval, s.Settings.ProgressGoal)
	}
}

func TestBestPctSurvivesReset(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	s.BestPct[DifficultyNormal] = 40
	s.Reset(DifficultyEasy)
	if s.BestPct[DifficultyNormal] != 40 {
		t.Fatalf("bestPct lost on reset: %v", s.BestPct)
	}
}

func TestCountdownTick(t *testing.T) {
	s := newTestSession(DifficultyNormal)

	timeUp, faster := s.CountdownTick()
	if timeUp || faster {
		t.Fatalf("timeUp=%v faster=%v on first tick, want false false", timeUp, faster)
	}
	if s.Timer != 59 {
		t.Fatalf("timer=%d after one tick, want 59", s.Timer)
	}
}

func TestSpawnCadenceRampEvery15Seconds(t *testing.T) {
	s := newTestSession(DifficultyNormal)

	ramps := 0
	for s.Timer > 0 {
		timeUp, faster := s.CountdownTick()
		if faster {
			ramps++
		}
		if timeUp {
			break
		}
	}
	// From 60s the ramp fires at 45, 30, 15 and 0.
	if ramps != 4 {
		t.Fatalf("ramped %d times over a normal run, want 4", ramps)
	}
	if want := 900 - 4*SpawnIntervalStep; s.SpawnInterval != want {
		t.Fatalf("spawnInterval=%d at run end, want %d", s.SpawnInterval, want)
	}
}

func TestSpawnCadenceFloor(t *testing.T) {
	s := newTestSession(DifficultyHard)

	var timeUp bool
	for !timeUp {
		timeUp, _ = s.CountdownTick()
	}
	// Hard starts at 680ms and ramps at 30, 15 and 0; the last step is
	// clamped at the floor instead of dropping to 440.
	if s.SpawnInterval != SpawnIntervalFloor {
		t.Fatalf("spawnInterval=%d at run end, want floor %d", s.SpawnInterval, SpawnIntervalFloor)
	}
	if s.Timer != 0 {
		t.Fatalf("timer=%d at time up, want 0", s.Timer)
	}
}

func TestCountdownReportsTimeUp(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	s.Timer = 1
	timeUp, _ := s.CountdownTick()
	if !timeUp || s.Timer != 0 {
		t.Fatalf("timeUp=%v timer=%d, want true and 0", timeUp, s.Timer)
	}
	// Ticking past zero stays up without going negative.
	timeUp, _ = s.CountdownTick()
	if !timeUp || s.Timer != 0 {
		t.Fatalf("timeUp=%v timer=%d past zero, want true and 0", timeUp, s.Timer)
	}
}

func TestFinalPercentCappedAtGoal(t *testing.T) {
	s := newTestSession(DifficultyEasy)
	s.Progress = 90
	if got := s.FinalPercent(); got != 90 {
		t.Fatalf("final percent=%d, want 90", got)
	}
	s.Progress = 89.4
	if got := s.FinalPercent(); got != 89 {
		t.Fatalf("final percent=%d, want 89", got)
	}
}
