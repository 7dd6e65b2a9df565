package core

// Background identifies the backdrop a scene is drawn over.
type Background int

const (
	// BackgroundBlank is used by menu and status screens.
	BackgroundBlank Background = iota
	// BackgroundSide draws the lateral view: a ground line near the bottom.
	BackgroundSide
	// BackgroundTopDown draws the bird's-eye arena border.
	BackgroundTopDown
)

// SpriteKind names a drawable thing. The core never touches bitmaps; the
// platform owns the mapping from kind to glyph or icon.
type SpriteKind string

// Sprites that are not ingredients or animals.
const (
	SpritePlayer SpriteKind = "player"
	SpriteBasket SpriteKind = "basket"
	SpriteTree   SpriteKind = "tree"
	SpriteWave   SpriteKind = "wave"
)

// Sprite places one icon at a device-space position (center anchored).
type Sprite struct {
	Kind SpriteKind
	X, Y float64
}

// Label places a line of text at a device-space position.
type Label struct {
	Text string
	X, Y int
}

// Bar is a horizontal progress bar. Progress is in [0, 1].
type Bar struct {
	X, Y, W, H int
	Progress   float64
}

// Scene is the declarative description of one frame. The core emits a Scene
// every tick; rendering it is entirely the platform's problem.
type Scene struct {
	Background Background
	Sprites    []Sprite
	Labels     []Label
	Bars       []Bar
}

// Renderer presents a scene. Present must not block the simulation.
type Renderer interface {
	Present(Scene)
}

// Cue is a symbolic audio event. Playback duration is the audio collaborator's
// concern; the simulation never waits on it.
type Cue int

const (
	CueStart Cue = iota
	CueCollect
	CueFail
	CuePenalty
	CueLevelClear
	CueWin
	CueSelect
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueCollect:
		return "collect"
	case CueFail:
		return "fail"
	case CuePenalty:
		return "penalty"
	case CueLevelClear:
		return "levelClear"
	case CueWin:
		return "win"
	case CueSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Audio plays symbolic cues, fire-and-forget.
type Audio interface {
	Play(Cue)
}

// PatternKind identifies an indicator LED pattern.
type PatternKind int

const (
	PatternOff PatternKind = iota
	PatternSuccess
	PatternFail
	PatternSpawnFlash
	PatternComplete
	PatternCooking
	PatternPenalty
)

// Pattern is an indicator request. Progress is only meaningful for
// PatternCooking and is in [0, 100].
type Pattern struct {
	Kind     PatternKind
	Progress int
}

// Indicator drives the single addressable LED.
type Indicator interface {
	Set(Pattern)
}
