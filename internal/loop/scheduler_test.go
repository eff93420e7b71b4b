package loop

import "testing"

func TestStoppedSchedulerIgnoresAdvance(t *testing.T) {
	s := NewScheduler(900)
	if spawns, ticks := s.Advance(10); spawns != 0 || ticks != 0 {
		t.Fatalf("stopped scheduler fired: spawns=%d ticks=%d", spawns, ticks)
	}
}

func TestSpawnAndTickCadence(t *testing.T) {
	s := NewScheduler(900)
	s.Start()

	var spawns, ticks int
	// Three simulated seconds in quarter-second slices. Quarters are exact
	// in binary, so the accumulator totals stay exact too.
	for i := 0; i < 12; i++ {
		sp, tk := s.Advance(0.25)
		spawns += sp
		ticks += tk
	}
	if spawns != 3 {
		t.Fatalf("spawns=%d over 3s at 900ms, want 3", spawns)
	}
	if ticks != 3 {
		t.Fatalf("ticks=%d over 3s, want 3", ticks)
	}
}

func TestLargeDeltaYieldsMultipleFirings(t *testing.T) {
	s := NewScheduler(500)
	s.Start()
	spawns, ticks := s.Advance(2.0)
	if spawns != 4 {
		t.Fatalf("spawns=%d for a 2s delta at 500ms, want 4", spawns)
	}
	if ticks != 2 {
		t.Fatalf("ticks=%d for a 2s delta, want 2", ticks)
	}
}

func TestRescheduleCarriesPartialPeriod(t *testing.T) {
	s := NewScheduler(1000)
	s.Start()

	// 0.75s into a 1000ms period, then speed up to 800ms. The accumulated
	// time counts toward the new period, so 0.25s later the spawn is due.
	s.Advance(0.75)
	s.RescheduleSpawn(800)
	if spawns, _ := s.Advance(0.25); spawns != 1 {
		t.Fatalf("spawns=%d after reschedule, want 1", spawns)
	}
}

func TestStartResetsAccumulators(t *testing.T) {
	s := NewScheduler(1000)
	s.Start()
	s.Advance(0.9)
	s.Stop()

	// Resuming restarts the period from zero: 0.2s is not enough.
	s.Start()
	if spawns, _ := s.Advance(0.2); spawns != 0 {
		t.Fatalf("spawns=%d right after resume, want 0", spawns)
	}
	if spawns, _ := s.Advance(0.81); spawns != 1 {
		t.Fatal("spawn not due a full period after resume")
	}
}
