package game

// EventKind identifies a gameplay effect produced by the simulation.
type EventKind int

const (
	EventCatch      EventKind = iota // A can was caught
	EventComboBonus                  // A catch that also triggered a combo bonus
	EventHazard                      // A hazard was hit
	EventMiss                        // A can exited the play area uncaught
	EventMilestone                   // A progress threshold fired for the first time
	EventWin                         // Progress reached the goal
)

// Event is a presentation effect emitted by the simulation. The core never
// renders or plays audio itself; the loop applies events to the terminal.
type Event struct {
	Kind     EventKind
	Label    string  // Floating feedback text ("+1", "miss", ...)
	X, Y     float64 // Logical position for the feedback label
	Negative bool    // Render the label as a penalty
	Fact     string  // Milestone fact text
	Badge    string  // Milestone badge label
}
