package game

import "testing"

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestMilestonesFireOnceEach(t *testing.T) {
	s := newTestSession(DifficultyNormal)

	s.Progress = 30
	events := s.checkMilestones()
	if countKind(events, EventMilestone) != 1 {
		t.Fatalf("expected one milestone at 30%%, got %+v", events)
	}

	// Re-evaluating at the same progress must not fire again.
	events = s.checkMilestones()
	if len(events) != 0 {
		t.Fatalf("milestone fired twice: %+v", events)
	}
}

func TestJumpAcrossSeveralThresholds(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	s.Progress = 10
	if events := s.checkMilestones(); len(events) != 0 {
		t.Fatalf("unexpected events at 10%%: %+v", events)
	}

	// A single jump from 10% to 80% fires 25, 50 and 75 once each,
	// in ascending order.
	s.Progress = 80
	events := s.checkMilestones()
	if got := countKind(events, EventMilestone); got != 3 {
		t.Fatalf("got %d milestones for the 10%%->80%% jump, want 3", got)
	}
	if events[0].Badge != "25%" || events[1].Badge != "50%" || events[2].Badge != "75%" {
		t.Fatalf("milestones out of order: %+v", events)
	}
	if events := s.checkMilestones(); len(events) != 0 {
		t.Fatalf("thresholds re-fired: %+v", events)
	}
}

func TestWinTakesPriorityOverThresholds(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	s.Progress = s.Settings.ProgressGoal
	events := s.checkMilestones()

	if !s.Won {
		t.Fatal("session not marked won at goal")
	}
	if len(events) != 1 || events[0].Kind != EventWin {
		t.Fatalf("expected a lone win event, got %+v", events)
	}
}

func TestWinUsesUnroundedProgress(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	s.Progress = 99.6 // Displays as 100% but is below the goal
	events := s.checkMilestones()
	if s.Won {
		t.Fatal("won below the goal")
	}
	if s.ProgressPercent() != 100 {
		t.Fatalf("display percent=%d, want 100", s.ProgressPercent())
	}
	if countKind(events, EventWin) != 0 {
		t.Fatalf("unexpected win event: %+v", events)
	}
}

func TestMilestonesResetPerRun(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	s.Progress = 60
	s.checkMilestones()
	if s.MilestonesFired() != 2 {
		t.Fatalf("fired=%d, want 2", s.MilestonesFired())
	}

	s.Reset(DifficultyNormal)
	if s.MilestonesFired() != 0 {
		t.Fatalf("fired=%d after reset, want 0", s.MilestonesFired())
	}
	s.Progress = 30
	if got := countKind(s.checkMilestones(), EventMilestone); got != 1 {
		t.Fatalf("got %d milestones in new run, want 1", got)
	}
}
