package game

// Difficulty identifies one of the hardcoded tuning tiers.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all tiers in selection order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

// Settings is the immutable tuning table for one difficulty tier.
type Settings struct {
	Label              string
	Timer              int     // Run length in seconds
	SpawnInterval      int     // Milliseconds between spawns at run start
	HazardChance       float64 // Probability a spawned item is a hazard
	ProgressPerCan     float64 // Progress points per caught can
	ProgressGoal       float64 // Progress needed to win
	SpeedMultiplier    float64 // Scales item fall speed
	MissPenalty        float64 // Progress lost when a can exits uncaught
	HitProgressPenalty float64 // Progress lost on a hazard hit
	HazardScorePenalty int     // Score lost on a hazard hit
	ComboBonusEvery    int     // Combo length that triggers a bonus
	ComboBonusProgress float64 // Extra progress granted by a combo bonus
}

var difficultySettings = map[Difficulty]Settings{
	DifficultyEasy: {
		Label:              "Easy",
		Timer:              90,
		SpawnInterval:      1000,
		HazardChance:       0.15,
		ProgressPerCan:     6,
		ProgressGoal:       90, // Win earlier on Easy
		SpeedMultiplier:    0.85,
		MissPenalty:        0, // No progress loss on miss
		HitProgressPenalty: 0, // Hazards only cost score
		HazardScorePenalty: 1,
		ComboBonusEvery:    4,
		ComboBonusProgress: 2,
	},
	DifficultyNormal: {
		Label:              "Normal",
		Timer:              60,
		SpawnInterval:      900,
		HazardChance:       0.25,
		ProgressPerCan:     5,
		ProgressGoal:       100,
		SpeedMultiplier:    1.0,
		MissPenalty:        1,
		HitProgressPenalty: 1,
		HazardScorePenalty: 1,
		ComboBonusEvery:    5,
		ComboBonusProgress: 2,
	},
	DifficultyHard: {
		Label:              "Hard",
		Timer:              45,
		SpawnInterval:      680,
		HazardChance:       0.55, // More than half the drops are hazards
		ProgressPerCan:     4,
		ProgressGoal:       120, // Higher win goal
		SpeedMultiplier:    1.3,
		MissPenalty:        2,
		HitProgressPenalty: 2,
		HazardScorePenalty: 2,
		ComboBonusEvery:    6,
		ComboBonusProgress: 3,
	},
}

// SettingsFor returns the tuning table for the given tier.
// Unknown tiers fall back to Normal.
func SettingsFor(d Difficulty) Settings {
	if s, ok := difficultySettings[d]; ok {
		return s
	}
	return difficultySettings[DifficultyNormal]
}

// ParseDifficulty maps a string to a known tier, falling back to Normal.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return Difficulty(s)
	}
	return DifficultyNormal
}
