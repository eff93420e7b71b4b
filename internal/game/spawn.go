package game

import "math"

// SpawnItem creates one falling item at the top of the play area and adds it
// to the active set. Hazards are chosen by a weighted coin flip. The fall
// speed has a random base plus a ramp that grows as the countdown shrinks,
// scaled by the tier's speed multiplier.
func (s *Session) SpawnItem() *Item {
	hazard := s.rng.Float64() < s.Settings.HazardChance

	size := CanSize
	if hazard {
		size = HazardSize
	}

	x := math.Max(SpawnMargin, s.rng.Float64()*(PlayWidth-(size+SpawnMargin)))

	base := 120 + s.rng.Float64()*80 + (100-float64(s.Timer))*0.8
	it := &Item{
		X:      x,
		Y:      SpawnY,
		W:      size,
		H:      size,
		Speed:  base * s.Settings.SpeedMultiplier,
		Hazard: hazard,
	}
	s.Items = append(s.Items, it)
	return it
}
