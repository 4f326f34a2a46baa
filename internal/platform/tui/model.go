package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/miyoosquare/square/internal/core"
	"github.com/miyoosquare/square/internal/hsm"
)

// Model is the Bubble Tea model that drives a state machine. Input collects
// into a frame between ticks; every tick the frame is dispatched to the
// current state, the state updates, and the view renders whatever the
// current state drew into the screen buffer.
type Model struct {
	machine *hsm.Machine
	screen  *core.Screen
	config  core.RuntimeConfig
	frame   core.InputFrame
	keys    *KeyMapper
	logger  *log.Logger

	// quit is shared with the RequestQuit closure handed to the states.
	quit     *atomic.Bool
	quitting bool
}

// NewModel creates a model for the given machine. The machine should have
// its states registered and a current state set before the program runs.
func NewModel(machine *hsm.Machine, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		machine: machine,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		frame:   core.NewInputFrame(),
		keys:    NewKeyMapper(),
		logger:  logger,
		quit:    new(atomic.Bool),
	}
}

// Config returns the runtime config, including any seed filled in at
// construction time.
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// RequestQuit returns a closure that stops the loop on the next tick. Wire
// it into the state hooks before the program starts.
func (m Model) RequestQuit() func() {
	quit := m.quit
	return func() { quit.Store(true) }
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey collects input into the frame for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize grows or shrinks the screen buffer with the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick dispatches the collected input and runs one update.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.frame.Empty() {
		m.machine.HandleEvent(m.frame)
		m.frame.Clear()
	}
	m.machine.Update()

	if m.quit.Load() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state through the screen buffer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.machine.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model and blocks until
// the loop stops.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
