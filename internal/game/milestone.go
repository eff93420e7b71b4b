package game

// milestoneThreshold is a one-shot progress threshold that surfaces a fact.
type milestoneThreshold struct {
	Pct   float64
	Fact  string
	Badge string
}

var milestoneThresholds = []milestoneThreshold{
	{Pct: 25, Fact: "Clean water cuts time spent hauling water, leaving more time for school and work.", Badge: "25%"},
	{Pct: 50, Fact: "Safe water helps reduce waterborne illnesses.", Badge: "50%"},
	{Pct: 75, Fact: "Communities thrive when clean water is close to home.", Badge: "75%"},
}

// checkMilestones evaluates the win condition and threshold crossings after
// a progress increase. Winning takes priority over threshold facts in the
// same call. Each threshold has an independent fired flag and fires at most
// once per run, so a single jump across several thresholds surfaces all of
// them, in ascending order.
func (s *Session) checkMilestones() []Event {
	if s.Progress >= s.Settings.ProgressGoal {
		s.Won = true
		return []Event{{Kind: EventWin}}
	}

	var events []Event
	for i, m := range milestoneThresholds {
		if s.Progress >= m.Pct && !s.milestones[i] {
			s.milestones[i] = true
			events = append(events, Event{Kind: EventMilestone, Fact: m.Fact, Badge: m.Badge})
		}
	}
	return events
}

// MilestonesFired returns how many thresholds have fired this run.
func (s *Session) MilestonesFired() int {
	n := 0
	for _, fired := range s.milestones {
		if fired {
			n++
		}
	}
	return n
}
