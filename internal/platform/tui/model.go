package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/farmtofeast/harvest-hustle/internal/core"
	"github.com/farmtofeast/harvest-hustle/internal/game"
	"github.com/farmtofeast/harvest-hustle/internal/highscore"
	"github.com/farmtofeast/harvest-hustle/internal/level"
)

// cueFlashFor is how long a played cue stays visible in the status line.
const cueFlashFor = 600 * time.Millisecond

// sceneSink captures the latest scene the machine presented.
type sceneSink struct {
	scene core.Scene
}

func (s *sceneSink) Present(sc core.Scene) { s.scene = sc }

// cueSink shows cues in the status line; the terminal has no speaker, so a
// short textual flash stands in for each beep.
type cueSink struct {
	last  core.Cue
	until time.Time
}

func (c *cueSink) Play(cue core.Cue) {
	c.last = cue
	c.until = time.Now().Add(cueFlashFor)
}

func (c *cueSink) active() bool { return time.Now().Before(c.until) }

// ledSink tracks the indicator pattern for the status line.
type ledSink struct {
	pattern core.Pattern
}

func (l *ledSink) Set(p core.Pattern) { l.pattern = p }

// Model is the Bubble Tea model hosting one game machine. The sinks are
// pointers so collaborator state survives the value-receiver copies Bubble
// Tea makes on every update.
type Model struct {
	machine *game.Machine
	screen  *core.Screen
	scene   *sceneSink
	audio   *cueSink
	led     *ledSink
	frame   *InputFrame
	keys    *KeyMapper

	config   core.RuntimeConfig
	width    int
	height   int
	quitting bool
}

// NewModel wires a machine to the terminal collaborators. scores and
// recorder may be nil; the machine tolerates absent collaborators.
func NewModel(catalog *level.Catalog, scores *highscore.Store, recorder game.RunRecorder, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	scene := &sceneSink{}
	audio := &cueSink{}
	led := &ledSink{}

	machine := game.NewMachine(catalog, cfg.Seed, game.Collaborators{
		Renderer:  scene,
		Audio:     audio,
		Indicator: led,
		Scores:    scores,
		Recorder:  recorder,
	})

	return Model{
		machine: machine,
		screen:  core.NewScreen(ViewW, ViewH),
		scene:   scene,
		audio:   audio,
		led:     led,
		frame:   &InputFrame{},
		keys:    NewKeyMapper(),
		config:  cfg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.Apply(msg, m.frame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick advances the machine by one fixed step. The step is derived
// from the tick rate, not from wall-clock deltas, so the simulation stays
// deterministic under scheduling jitter.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	m.machine.Tick(m.frame.Take(now), dt)
	return m, tickCmd(m.config.TickRate)
}

// View renders the latest presented scene plus a status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Rasterize(m.scene.scene, m.screen)
	body := RenderScreen(m.screen)

	content := lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// statusLine shows score, the last audio cue, and the indicator LED state.
func (m Model) statusLine() string {
	st := m.machine.State()

	line := statusStyle.Render(fmt.Sprintf(" score %d ", st.Score))
	if m.audio.active() {
		line += cueStyle.Render(fmt.Sprintf(" snd:%s ", m.audio.last))
	}
	if led := patternText(m.led.pattern); led != "" {
		line += statusStyle.Render(fmt.Sprintf(" led:%s ", led))
	}
	line += statusStyle.Render(" q quit")
	return line
}

func patternText(p core.Pattern) string {
	switch p.Kind {
	case core.PatternSuccess:
		return "green"
	case core.PatternFail:
		return "red"
	case core.PatternSpawnFlash:
		return "flash"
	case core.PatternComplete:
		return "rainbow"
	case core.PatternCooking:
		return fmt.Sprintf("amber %d%%", p.Progress)
	case core.PatternPenalty:
		return "red-blink"
	}
	return ""
}

// Run starts the Bubble Tea program with the given model.
func Run(catalog *level.Catalog, scores *highscore.Store, recorder game.RunRecorder, cfg core.RuntimeConfig) error {
	model := NewModel(catalog, scores, recorder, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
