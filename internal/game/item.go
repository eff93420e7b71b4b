package game

// Logical play area dimensions. Game objects use these coordinates;
// rendering scales them to the actual terminal size.
const (
	PlayWidth  = 640.0
	PlayHeight = 480.0
)

// Item geometry and spawn placement.
const (
	CanSize     = 56.0 // Cans are square
	HazardSize  = 46.0 // Hazards are slightly narrower
	SpawnY      = -64.0
	SpawnMargin = 8.0  // Minimum gap to the play-area edges
	ExitMargin  = 80.0 // Items are removed this far below the bottom edge
)

// Item is a falling object: a catchable water can or a hazard.
// Items live in the session's active set from spawn until they are
// consumed or exit the bottom of the play area.
type Item struct {
	X, Y     float64
	W, H     float64
	Speed    float64 // Fall speed in units per second
	Hazard   bool
	Consumed bool // Set once when caught or hit; guards double-processing
}

// Contains reports whether the point lies within the item's bounds.
func (it *Item) Contains(x, y float64) bool {
	return x >= it.X && x <= it.X+it.W && y >= it.Y && y <= it.Y+it.H
}

// Paddle is the player-controlled catcher near the bottom of the play area.
type Paddle struct {
	X, Y  float64
	W, H  float64
	Speed float64 // Units per second for key-driven movement
}

// Intersects reports axis-aligned overlap between the paddle and an item.
// Bounds are inclusive so an item touching the paddle edge counts as caught.
func (p Paddle) Intersects(it *Item) bool {
	return it.Y+it.H >= p.Y && it.Y <= p.Y+p.H &&
		it.X+it.W >= p.X && it.X <= p.X+p.W
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
