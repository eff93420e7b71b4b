package game

import "testing"

func TestZeroDeltaIsANoOp(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	it := s.SpawnItem()
	y := it.Y
	s.SetHeld(false, true)
	x := s.Paddle.X

	// The first frame of a run uses dt=0 to avoid a startup jump.
	if events := s.Step(0); len(events) != 0 {
		t.Fatalf("unexpected events on zero-delta step: %+v", events)
	}
	if it.Y != y || s.Paddle.X != x {
		t.Fatal("zero-delta step moved objects")
	}
}

func TestItemsFallWithSpeed(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	it := &Item{X: 10, Y: 0, W: CanSize, H: CanSize, Speed: 100}
	s.Items = append(s.Items, it)

	s.Step(0.5)
	if it.Y != 50 {
		t.Fatalf("y=%v after 0.5s at speed 100, want 50", it.Y)
	}
}

func TestPaddleMovementAndClamp(t *testing.T) {
	s := newTestSession(DifficultyNormal)

	s.SetHeld(true, false)
	for i := 0; i < 600; i++ {
		s.Step(1.0 / 60)
	}
	if s.Paddle.X != 0 {
		t.Fatalf("paddle x=%v after holding left, want clamped to 0", s.Paddle.X)
	}

	s.SetHeld(false, true)
	for i := 0; i < 600; i++ {
		s.Step(1.0 / 60)
	}
	if want := PlayWidth - s.Paddle.W; s.Paddle.X != want {
		t.Fatalf("paddle x=%v after holding right, want clamped to %v", s.Paddle.X, want)
	}

	// Both keys held cancel out.
	s.MovePaddleTo(PlayWidth / 2)
	x := s.Paddle.X
	s.SetHeld(true, true)
	s.Step(1.0 / 60)
	if s.Paddle.X != x {
		t.Fatalf("paddle moved with both keys held: %v -> %v", x, s.Paddle.X)
	}
}

func TestCatchAtInclusiveBoundary(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	// After one step the item's bottom edge exactly touches the paddle's
	// top edge. Bounds are inclusive, so this is a catch, not a pass-by.
	it := &Item{X: s.Paddle.X, Y: s.Paddle.Y - CanSize - 10, W: CanSize, H: CanSize, Speed: 100}
	s.Items = append(s.Items, it)

	events := s.Step(0.1)
	if countKind(events, EventCatch) != 1 {
		t.Fatalf("expected a catch at the boundary, got %+v", events)
	}
	if countKind(events, EventMiss) != 0 {
		t.Fatalf("boundary catch also counted as miss: %+v", events)
	}
	if len(s.Items) != 0 {
		t.Fatalf("%d items left after catch, want 0", len(s.Items))
	}
}

func TestMissOnExit(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	s.Combo = 3
	it := &Item{X: 0, Y: PlayHeight + ExitMargin, W: CanSize, H: CanSize, Speed: 100}
	s.Items = append(s.Items, it)

	events := s.Step(0.1)
	if countKind(events, EventMiss) != 1 {
		t.Fatalf("expected a miss, got %+v", events)
	}
	if s.Combo != 0 {
		t.Fatalf("combo=%d after miss, want 0", s.Combo)
	}
	if len(s.Items) != 0 {
		t.Fatalf("%d items left after exit, want 0", len(s.Items))
	}
}

func TestHazardExitIsNotAMiss(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	s.Combo = 3
	it := &Item{X: 0, Y: PlayHeight + ExitMargin, W: HazardSize, H: HazardSize, Speed: 100, Hazard: true}
	s.Items = append(s.Items, it)

	events := s.Step(0.1)
	if len(events) != 0 {
		t.Fatalf("hazard exit produced events: %+v", events)
	}
	if s.Combo != 3 {
		t.Fatalf("combo=%d after hazard exit, want 3", s.Combo)
	}
	if len(s.Items) != 0 {
		t.Fatal("hazard not removed after exit")
	}
}

func TestTapConsumesOnce(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	it := &Item{X: 100, Y: 100, W: CanSize, H: CanSize, Speed: 0}
	s.Items = append(s.Items, it)

	events := s.TapAt(110, 110)
	if countKind(events, EventCatch) != 1 {
		t.Fatalf("expected a catch from tap, got %+v", events)
	}

	// A stale reference must not be double-processed: a second tap and the
	// frame loop's own pass both see the consumed flag.
	if events := s.TapAt(110, 110); events != nil {
		t.Fatalf("second tap re-consumed the item: %+v", events)
	}
	if events := s.Step(1.0 / 60); len(events) != 0 {
		t.Fatalf("frame pass re-processed consumed item: %+v", events)
	}
	if s.Score != 1 {
		t.Fatalf("score=%d, want 1", s.Score)
	}
	if len(s.Items) != 0 {
		t.Fatal("consumed item still in the active set after a step")
	}
}

func TestTapOutsideItemsIsNil(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	s.SpawnItem()
	if events := s.TapAt(-100, -100); events != nil {
		t.Fatalf("tap outside all items produced events: %+v", events)
	}
}

func TestTapOnHazardAppliesHit(t *testing.T) {
	s := newTestSession(DifficultyNormal)
	s.Score = 5
	s.Combo = 2
	it := &Item{X: 200, Y: 50, W: HazardSize, H: HazardSize, Hazard: true}
	s.Items = append(s.Items, it)

	events := s.TapAt(210, 60)
	if countKind(events, EventHazard) != 1 {
		t.Fatalf("expected a hazard hit from tap, got %+v", events)
	}
	if s.Score != 4 || s.Combo != 0 {
		t.Fatalf("score=%d combo=%d after hazard tap, want 4 and 0", s.Score, s.Combo)
	}
}
