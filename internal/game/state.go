package game

import "github.com/farmtofeast/harvest-hustle/internal/level"

// ScreenID identifies the active screen of the state machine.
type ScreenID int

const (
	ScreenTitle ScreenID = iota
	ScreenMode
	ScreenLevelSelect
	ScreenIntro
	ScreenPlay
	ScreenCooking
	ScreenClear
	ScreenOver
	ScreenWin
	ScreenEnterInitials
	ScreenHighScores
)

func (s ScreenID) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenMode:
		return "mode"
	case ScreenLevelSelect:
		return "level_select"
	case ScreenIntro:
		return "intro"
	case ScreenPlay:
		return "play"
	case ScreenCooking:
		return "cooking"
	case ScreenClear:
		return "clear"
	case ScreenOver:
		return "over"
	case ScreenWin:
		return "win"
	case ScreenEnterInitials:
		return "enter_initials"
	case ScreenHighScores:
		return "highscores"
	}
	return "unknown"
}

// Intent records where the machine goes after the high-scores screen.
type Intent int

const (
	AfterReset   Intent = iota // full reset back to title
	AfterRestart               // keep session, back to mode select
)

// State is the single live runtime state, exclusively owned by the Machine
// and mutated only inside its tick. Level-scoped fields are reset by
// initLevel; the rest persists across levels.
type State struct {
	Screen      ScreenID
	Difficulty  level.Difficulty
	Level       int
	LevelSelect int

	// Now is the simulation clock in seconds, advanced by tick dt.
	// All timers and timestamps use it; nothing reads the wall clock.
	Now      float64
	TimeLeft float64

	PX, PY float64

	Collected map[level.Kind]int
	Needed    map[level.Kind]int

	Items    []Item
	Animals  []Animal
	Trees    []Tree
	WaveRows []int

	CookProgress  int
	CookProgress2 int

	// Touch and rotate locks reference entities by ID; 0 means no lock.
	TouchTarget  uint64
	TouchStart   float64
	RotateTarget uint64
	RotateCount  int

	Penalty    int
	Score      int
	LevelScore int

	LastMove   float64
	LastScroll float64

	IntroPage    int
	ScrollOffset int
	OverChoice   int

	Initials     string
	InitialChar  int
	NewHighScore bool
	AfterScores  Intent
}

// NewState returns the power-on state.
func NewState() State {
	return State{
		Screen:     ScreenTitle,
		Difficulty: level.DifficultyEasy,
		TimeLeft:   90,
		PX:         64,
		PY:         32,
		Collected:  make(map[level.Kind]int),
		Needed:     make(map[level.Kind]int),
	}
}

// Complete reports whether every needed kind has been collected in full.
func (st *State) Complete() bool {
	for kind, need := range st.Needed {
		if st.Collected[kind] < need {
			return false
		}
	}
	return true
}

// FindItem returns the live item with the given ID, or nil.
func (st *State) FindItem(id uint64) *Item {
	for i := range st.Items {
		if st.Items[i].ID == id {
			return &st.Items[i]
		}
	}
	return nil
}

// FindAnimal returns the animal with the given ID, or nil.
func (st *State) FindAnimal(id uint64) *Animal {
	for i := range st.Animals {
		if st.Animals[i].ID == id {
			return &st.Animals[i]
		}
	}
	return nil
}
