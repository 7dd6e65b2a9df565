// Package game implements the simulation core of Harvest Hustle: the screen
// state machine, the per-level entity simulation, the multi-modal collection
// rules, and scoring. The package is pure; rendering, audio, the indicator
// LED, and input sampling are collaborators injected into the Machine, and
// any of them may be nil (the corresponding side effect is skipped).
package game

import (
	"github.com/farmtofeast/harvest-hustle/internal/core"
	"github.com/farmtofeast/harvest-hustle/internal/highscore"
	"github.com/farmtofeast/harvest-hustle/internal/level"
)

// Player movement.
const (
	moveStep     = 6
	moveDebounce = 0.1

	playerMinX, playerMaxX = 12, 116
	playerMinY, playerMaxY = 16, 46
)

// Clear-screen scroll.
const (
	scrollStep     = 15
	scrollDebounce = 0.15
	scrollMin      = -50
	scrollMax      = 100
)

const cookIncrement = 2

// RunRecorder stores finished runs. Recording is best effort; the machine
// swallows errors.
type RunRecorder interface {
	RecordRun(difficulty string, score, levelsCleared int, outcome string) error
}

// Collaborators are the injected side-effect interfaces. Every field may be
// nil.
type Collaborators struct {
	Renderer  core.Renderer
	Audio     core.Audio
	Indicator core.Indicator
	Scores    *highscore.Store
	Recorder  RunRecorder
}

// Machine is the top-level game state machine. It exclusively owns the
// runtime State and mutates it only inside Tick; there is no terminal
// screen, the machine always loops back to an earlier one.
type Machine struct {
	catalog *level.Catalog
	collab  Collaborators

	sim    *Simulator
	engine Engine

	board []highscore.Entry
	st    State
}

// NewMachine builds a machine over the given catalog. The leaderboard is
// loaded once at construction; an absent score store yields the default
// board.
func NewMachine(catalog *level.Catalog, seed int64, collab Collaborators) *Machine {
	m := &Machine{
		catalog: catalog,
		collab:  collab,
		sim:     NewSimulator(seed),
		st:      NewState(),
	}
	if collab.Scores != nil {
		m.board = collab.Scores.Load()
	} else {
		m.board = highscore.Default()
	}
	return m
}

// State exposes the runtime state for inspection. Callers must not mutate it.
func (m *Machine) State() *State { return &m.st }

// Board returns the current leaderboard.
func (m *Machine) Board() []highscore.Entry { return m.board }

// Tick advances the machine by one loop iteration: dt seconds of timer time
// and exactly one tick of entity movement. It dispatches render, audio, and
// indicator requests to the collaborators before returning.
func (m *Machine) Tick(in core.Input, dt float64) {
	m.st.Now += dt

	switch m.st.Screen {
	case ScreenTitle:
		m.tickTitle(in)
	case ScreenMode:
		m.tickMode(in)
	case ScreenLevelSelect:
		m.tickLevelSelect(in)
	case ScreenIntro:
		m.tickIntro(in)
	case ScreenPlay:
		m.tickPlay(in, dt)
	case ScreenCooking:
		m.tickCooking(in)
	case ScreenClear:
		m.tickClear(in)
	case ScreenOver:
		m.tickOver(in)
	case ScreenWin:
		m.tickWin(in)
	case ScreenEnterInitials:
		m.tickEnterInitials(in)
	case ScreenHighScores:
		m.tickHighScores(in)
	}
}

// Collaborator dispatch, nil tolerant.

func (m *Machine) present(s core.Scene) {
	if m.collab.Renderer != nil {
		m.collab.Renderer.Present(s)
	}
}

func (m *Machine) play(c core.Cue) {
	if m.collab.Audio != nil {
		m.collab.Audio.Play(c)
	}
}

func (m *Machine) indicate(p core.Pattern) {
	if m.collab.Indicator != nil {
		m.collab.Indicator.Set(p)
	}
}

func (m *Machine) record(outcome string, levelsCleared int) {
	if m.collab.Recorder == nil {
		return
	}
	//nolint:errcheck // best effort, a failed history write never reaches the player
	m.collab.Recorder.RecordRun(m.st.Difficulty.String(), m.st.Score, levelsCleared, outcome)
}

func (m *Machine) def() level.Definition {
	d, err := m.catalog.Get(m.st.Level)
	if err != nil {
		return level.Definition{}
	}
	return d
}

// initLevel resets all level-scoped state and repopulates the field for the
// current level and difficulty.
func (m *Machine) initLevel() {
	def := m.def()
	st := &m.st

	st.TimeLeft = st.Difficulty.TimeLimit()
	st.PX = 64
	if def.View == level.ViewTopDown {
		st.PY = 30
	} else {
		st.PY = 45
	}
	st.Collected = make(map[level.Kind]int)
	st.Needed = def.Needs()
	st.Items = nil
	st.Animals = nil
	st.Trees = nil
	st.WaveRows = nil
	st.CookProgress = 0
	st.CookProgress2 = 0
	st.TouchTarget = 0
	st.RotateTarget = 0
	st.RotateCount = 0
	st.Penalty = 0
	st.LevelScore = 0

	m.sim.ResetTimers()
	m.sim.Populate(st, def)
}

func (m *Machine) tickTitle(in core.Input) {
	m.present(buildTitle())
	if in.ButtonEdge {
		m.play(core.CueStart)
		m.indicate(core.Pattern{Kind: core.PatternSuccess})
		m.st.Screen = ScreenMode
	}
}

func (m *Machine) tickMode(in core.Input) {
	if in.RotationDelta > 0 {
		m.st.Difficulty = (m.st.Difficulty + 1) % level.DifficultyCount
		m.play(core.CueSelect)
	}
	m.present(buildMode(&m.st))
	if in.ButtonEdge {
		m.indicate(core.Pattern{Kind: core.PatternSuccess})
		m.st.LevelSelect = 0
		m.st.Screen = ScreenLevelSelect
	}
}

func (m *Machine) tickLevelSelect(in core.Input) {
	if in.RotationDelta > 0 {
		m.st.LevelSelect = (m.st.LevelSelect + 1) % m.catalog.Count()
		m.play(core.CueSelect)
	}
	m.present(buildLevelSelect(&m.st, m.catalog))
	if in.ButtonEdge {
		m.play(core.CueStart)
		m.indicate(core.Pattern{Kind: core.PatternSuccess})
		m.st.Level = m.st.LevelSelect
		m.st.ScrollOffset = 0
		m.st.IntroPage = 0
		m.st.Screen = ScreenIntro
	}
}

func (m *Machine) tickIntro(in core.Input) {
	def := m.def()
	morePages := len(def.Ingredients) > 3 && m.st.IntroPage == 0

	m.present(buildIntro(&m.st, def, morePages))

	if in.ButtonEdge {
		m.indicate(core.Pattern{Kind: core.PatternSuccess})
		if morePages {
			m.st.IntroPage++
			return
		}
		m.st.IntroPage = 0
		m.st.ScrollOffset = 0
		m.initLevel()
		m.st.Screen = ScreenPlay
	}
}

func (m *Machine) tickPlay(in core.Input, dt float64) {
	def := m.def()
	st := &m.st

	st.TimeLeft -= dt
	if st.TimeLeft <= 0 {
		st.Screen = ScreenOver
		st.OverChoice = 0
		m.play(core.CueFail)
		m.indicate(core.Pattern{Kind: core.PatternFail})
		return
	}

	m.movePlayer(in.Motion, def)

	m.sim.Update(st, def, dt)

	events := m.engine.Check(st, def, in)
	for _, ev := range events {
		switch ev {
		case EventCollect:
			m.play(core.CueCollect)
			m.indicate(core.Pattern{Kind: core.PatternSuccess})
		case EventPenalty:
			m.play(core.CuePenalty)
			m.indicate(core.Pattern{Kind: core.PatternPenalty})
		}
	}

	if m.sim.RunSpawns(st, def, dt) {
		m.indicate(core.Pattern{Kind: core.PatternSpawnFlash})
	}

	m.present(buildPlay(st, def))

	if st.Complete() {
		if def.Cooking != level.CookNone {
			st.Screen = ScreenCooking
		} else {
			st.Screen = ScreenClear
			m.play(core.CueLevelClear)
			m.indicate(core.Pattern{Kind: core.PatternComplete})
		}
	}
}

// movePlayer applies one tilt step, rate limited by the move debounce. The
// shake motion never moves the player.
func (m *Machine) movePlayer(motion core.Motion, def level.Definition) {
	st := &m.st
	if motion == core.MotionNone || motion == core.MotionShake {
		return
	}
	if st.Now-st.LastMove < moveDebounce {
		return
	}
	st.LastMove = st.Now

	switch motion {
	case core.MotionLeft:
		st.PX = core.ClampF(st.PX-moveStep, playerMinX, playerMaxX)
	case core.MotionRight:
		st.PX = core.ClampF(st.PX+moveStep, playerMinX, playerMaxX)
	case core.MotionForward:
		if def.View == level.ViewTopDown {
			st.PY = core.ClampF(st.PY-moveStep, playerMinY, playerMaxY)
		}
	case core.MotionBackward:
		if def.View == level.ViewTopDown {
			st.PY = core.ClampF(st.PY+moveStep, playerMinY, playerMaxY)
		}
	}
}

func (m *Machine) tickCooking(in core.Input) {
	def := m.def()
	st := &m.st

	if def.Cooking == level.CookDouble && st.CookProgress >= 100 {
		// Second phase: rotation.
		if in.RotationDelta != 0 {
			rot := in.RotationDelta
			if rot < 0 {
				rot = -rot
			}
			st.CookProgress2 = core.Min(100, st.CookProgress2+rot*5)
		}
	} else if in.ButtonHeld {
		st.CookProgress = core.Min(100, st.CookProgress+cookIncrement)
	}

	progress := st.CookProgress
	if def.Cooking == level.CookDouble && st.CookProgress >= 100 {
		progress = st.CookProgress2
	}
	m.indicate(core.Pattern{Kind: core.PatternCooking, Progress: progress})
	m.present(buildCooking(st, def))

	done := st.CookProgress >= 100
	if def.Cooking == level.CookDouble {
		done = st.CookProgress2 >= 100
	}
	if done {
		st.Screen = ScreenClear
		m.play(core.CueLevelClear)
		m.indicate(core.Pattern{Kind: core.PatternComplete})
	}
}

func (m *Machine) tickClear(in core.Input) {
	def := m.def()
	st := &m.st

	// Long dish names scroll by tilting.
	if dishNeedsScroll(def) && st.Now-st.LastScroll > scrollDebounce {
		switch in.Motion {
		case core.MotionLeft:
			st.ScrollOffset = core.Max(scrollMin, st.ScrollOffset-scrollStep)
			st.LastScroll = st.Now
		case core.MotionRight:
			st.ScrollOffset = core.Min(scrollMax, st.ScrollOffset+scrollStep)
			st.LastScroll = st.Now
		}
	}

	m.present(buildClear(st, def))

	if in.ButtonEdge {
		m.indicate(core.Pattern{Kind: core.PatternSuccess})
		st.Level++
		st.ScrollOffset = 0
		st.IntroPage = 0
		if st.Level >= m.catalog.Count() {
			m.play(core.CueWin)
			st.Screen = ScreenWin
		} else {
			st.Screen = ScreenIntro
		}
	}
}

func (m *Machine) tickOver(in core.Input) {
	st := &m.st

	if in.RotationDelta > 0 {
		st.OverChoice = (st.OverChoice + 1) % 2
		m.play(core.CueSelect)
	}

	m.present(buildOver(st))

	if !in.ButtonEdge {
		return
	}

	if st.OverChoice == 0 {
		// Retry forfeits the failed attempt's points.
		m.engine.Scores.Forfeit(st)
		m.play(core.CueStart)
		m.indicate(core.Pattern{Kind: core.PatternSuccess})
		st.ScrollOffset = 0
		st.IntroPage = 0
		m.initLevel()
		st.Screen = ScreenPlay
		return
	}

	m.record("gameover", st.Level)
	st.AfterScores = AfterRestart
	m.toScores()
}

func (m *Machine) tickWin(in core.Input) {
	m.present(buildWin(&m.st))

	if in.ButtonEdge {
		m.record("win", m.catalog.Count())
		m.st.AfterScores = AfterReset
		m.toScores()
	}
}

// toScores routes through initials entry when the finished run qualifies.
func (m *Machine) toScores() {
	st := &m.st
	if highscore.IsHighScore(st.Score, m.board) {
		st.NewHighScore = true
		st.Initials = ""
		st.InitialChar = 0
		st.Screen = ScreenEnterInitials
		return
	}
	st.Screen = ScreenHighScores
}

func (m *Machine) tickEnterInitials(in core.Input) {
	st := &m.st

	m.present(buildInitials(st))

	if in.RotationDelta > 0 {
		st.InitialChar = (st.InitialChar + 1) % 26
	}

	if in.ButtonEdge {
		st.Initials += string(rune('A' + st.InitialChar))
		st.InitialChar = 0

		if len(st.Initials) >= 3 {
			m.board = highscore.Insert(st.Initials, st.Score, m.board)
			if m.collab.Scores != nil {
				m.collab.Scores.Save(m.board)
			}
			m.play(core.CueLevelClear)
			st.Screen = ScreenHighScores
		}
	}
}

func (m *Machine) tickHighScores(in core.Input) {
	m.present(buildScores(m.board))

	if in.ButtonEdge {
		m.indicate(core.Pattern{Kind: core.PatternComplete})
		if m.st.AfterScores == AfterRestart {
			m.st.Score = 0
			m.st.NewHighScore = false
			m.st.Difficulty = level.DifficultyEasy
			m.st.Screen = ScreenMode
		} else {
			m.st = NewState()
		}
	}
}
