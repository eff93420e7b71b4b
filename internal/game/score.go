package game

import "fmt"

// catch applies a successful catch: score and combo increment, progress
// gain, combo bonus at the tier's cadence, then milestone evaluation.
func (s *Session) catch(it *Item) []Event {
	s.Score++
	s.Combo++
	if s.Combo > s.BestCombo {
		s.BestCombo = s.Combo
	}

	s.Progress = clamp(s.Progress+s.Settings.ProgressPerCan, 0, s.Settings.ProgressGoal)

	ev := Event{
		Kind:  EventCatch,
		Label: "+1",
		X:     it.X + it.W/2,
		Y:     s.Paddle.Y,
	}
	if s.Settings.ComboBonusEvery > 0 && s.Combo%s.Settings.ComboBonusEvery == 0 {
		s.Progress = clamp(s.Progress+s.Settings.ComboBonusProgress, 0, s.Settings.ProgressGoal)
		ev.Kind = EventComboBonus
		ev.Label = fmt.Sprintf("+%g%% combo!", s.Settings.ComboBonusProgress)
	}

	events := []Event{ev}
	return append(events, s.checkMilestones()...)
}

// hazardHit applies a hazard: score penalty (floored at zero), combo reset
// and the tier's optional progress penalty. Progress never increases here,
// so no milestone re-check is needed.
func (s *Session) hazardHit(it *Item) []Event {
	s.Score -= s.Settings.HazardScorePenalty
	if s.Score < 0 {
		s.Score = 0
	}
	s.Combo = 0

	label := fmt.Sprintf("-%d", s.Settings.HazardScorePenalty)
	if s.Settings.HitProgressPenalty > 0 {
		s.Progress = clamp(s.Progress-s.Settings.HitProgressPenalty, 0, s.Settings.ProgressGoal)
		label = fmt.Sprintf("-%d & -%g%%", s.Settings.HazardScorePenalty, s.Settings.HitProgressPenalty)
	}

	return []Event{{
		Kind:     EventHazard,
		Label:    label,
		X:        it.X + it.W/2,
		Y:        s.Paddle.Y,
		Negative: true,
	}}
}

// miss applies an uncaught can exiting the play area: combo reset and the
// tier's optional progress penalty. Easy mode sets the penalty to zero, so
// a miss only breaks the combo there.
func (s *Session) miss(it *Item) []Event {
	s.Combo = 0
	if s.Settings.MissPenalty > 0 {
		s.Progress = clamp(s.Progress-s.Settings.MissPenalty, 0, s.Settings.ProgressGoal)
	}
	return []Event{{
		Kind:     EventMiss,
		Label:    "miss",
		X:        it.X + it.W/2,
		Y:        PlayHeight - 24,
		Negative: true,
	}}
}
