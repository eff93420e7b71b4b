package game

// Step advances the simulation by dt seconds: paddle movement from held
// keys, item fall, paddle collision and off-screen exits. Collision takes
// precedence over the exit test, so an item caught exactly at the boundary
// is caught, not missed. Returns the presentation events produced this frame.
func (s *Session) Step(dt float64) []Event {
	var events []Event

	dx := 0.0
	if s.heldLeft {
		dx -= s.Paddle.Speed * dt
	}
	if s.heldRight {
		dx += s.Paddle.Speed * dt
	}
	if dx != 0 {
		s.Paddle.X = clamp(s.Paddle.X+dx, 0, PlayWidth-s.Paddle.W)
	}

	kept := s.Items[:0] // reuse backing array
	for _, it := range s.Items {
		it.Y += it.Speed * dt

		if it.Consumed {
			continue // consumed out of band (pointer tap); drop it
		}

		if s.Paddle.Intersects(it) {
			events = append(events, s.consume(it)...)
			continue
		}

		if it.Y > PlayHeight+ExitMargin {
			if !it.Hazard {
				events = append(events, s.miss(it)...)
			}
			continue
		}

		kept = append(kept, it)
	}
	s.Items = kept

	return events
}

// consume resolves a caught item: catch handling for cans, hit handling for
// hazards. Marks the item consumed so a second path cannot double-apply it.
func (s *Session) consume(it *Item) []Event {
	if it.Consumed {
		return nil
	}
	it.Consumed = true
	if it.Hazard {
		return s.hazardHit(it)
	}
	return s.catch(it)
}
