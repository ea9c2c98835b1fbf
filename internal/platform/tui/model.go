package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// hudRows is the number of lines below the board: one status line and up
// to two lines of key help.
const hudRows = 3

var (
	editStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	runStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Options configures a Model beyond the simulation itself.
type Options struct {
	// Pattern is the seed pattern name recorded with the run.
	Pattern string
	// Logger receives save errors. Defaults to discarding.
	Logger *log.Logger
}

// Model is the Bubble Tea model for one simulation session.
type Model struct {
	sim        *life.Simulation
	canvas     *Canvas
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	pattern    string
	logger     *log.Logger
	lastTick   time.Time
	quitting   bool
	saved      bool // Whether the run has been recorded
}

// NewModel creates a model that drives sim. store may be nil.
func NewModel(sim *life.Simulation, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	keys := DefaultKeyMap()

	canvas := NewCanvas(sim.Board(), cfg.ScreenW, boardRows(cfg.ScreenH))
	canvas.SetTitle(opts.Pattern)

	return Model{
		sim:        sim,
		canvas:     canvas,
		store:      store,
		config:     cfg,
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		pattern:    opts.Pattern,
		logger:     logger,
	}
}

func boardRows(screenH int) int {
	return max(screenH-hudRows, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Help and quit take effect at once;
// simulation commands wait for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionHelp) {
		m.help.ShowAll = !m.help.ShowAll
		delete(m.inputFrame.Actions, core.ActionHelp)
	}
	return m, nil
}

// handleMouse turns a left press on the board into a cell trigger.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.canvas.Area().Contains(msg.X, msg.Y) {
		return m, nil // HUD
	}

	m.sim.Click(m.canvas.Pointer(msg.X, msg.Y), m.canvas.Viewport())
	return m, nil
}

// handleResize lays the board out for the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.canvas.Layout(msg.Width, boardRows(msg.Height))
	return m, nil
}

// handleTick runs one simulation tick with the time since the previous one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var delta time.Duration
	if !m.lastTick.IsZero() {
		delta = max(now.Sub(m.lastTick), 0)
	}
	m.lastTick = now

	if m.inputFrame.Has(core.ActionToggleRun) {
		m.sim.ToggleRun()
	}
	if m.inputFrame.Has(core.ActionClear) {
		m.canvas.Apply(m.sim.Clear())
	}

	m.canvas.Apply(m.sim.Tick(delta))

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the session in the history store once, if any
// generation ran.
func (m *Model) saveRun() {
	if m.saved || m.store == nil || m.sim.Generation() == 0 {
		return
	}
	m.saved = true

	rec := storage.RunRecord{
		Pattern:         m.pattern,
		Width:           m.sim.Board().Width(),
		Height:          m.sim.Board().Height(),
		Generations:     m.sim.Generation(),
		PeakPopulation:  m.sim.PeakPopulation(),
		FinalPopulation: m.sim.Population(),
	}
	if _, err := m.store.SaveRun(rec); err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "pattern", rec.Pattern, "generations", rec.Generations)
}

// status renders the line under the board.
func (m Model) status() string {
	state := editStyle.Render("EDIT")
	if m.sim.State() == life.Running {
		state = runStyle.Render("RUN ")
	}

	pattern := m.pattern
	if pattern == "" {
		pattern = "-"
	}
	info := fmt.Sprintf("  gen %d  pop %d  peak %d  pattern %s",
		m.sim.Generation(), m.sim.Population(), m.sim.PeakPopulation(), pattern)
	return state + statusStyle.Render(info)
}

// View renders the board followed by the HUD.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.canvas.Screen()),
		m.status(),
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program for sim on the local terminal.
func Run(sim *life.Simulation, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(sim, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Cell toggling
	)

	_, err := p.Run()
	return err
}
