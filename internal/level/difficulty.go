package level

import "fmt"

// Difficulty sets the per-level time limit.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// DifficultyCount is the number of selectable difficulties.
const DifficultyCount = 3

var difficultyNames = map[Difficulty]string{
	DifficultyEasy:   "easy",
	DifficultyMedium: "medium",
	DifficultyHard:   "hard",
}

func (d Difficulty) String() string { return difficultyNames[d] }

// TimeLimit returns the level time budget in seconds.
func (d Difficulty) TimeLimit() float64 {
	switch d {
	case DifficultyMedium:
		return 60
	case DifficultyHard:
		return 45
	default:
		return 90
	}
}

// ParseDifficulty maps a preset name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for d, name := range difficultyNames {
		if name == s {
			return d, nil
		}
	}
	return DifficultyEasy, fmt.Errorf("level: unknown difficulty %q", s)
}
