package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Session is everything a play session needs.
type Session struct {
	Engine  *snake.Engine
	Variant registry.Variant
	Config  config.SnakeConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // optional score log
	Logger  *log.Logger
	SaveDir string // where ctrl+s writes snapshots; empty disables saving
}

// Model is the Bubble Tea model for a snake session. It never ticks the
// engine itself; it renders the frames the runner sends and steers the
// engine from input.
type Model struct {
	engine    *snake.Engine
	rules     snake.Rules
	variant   registry.Variant
	store     *storage.Store
	logger    *log.Logger
	saveDir   string
	screen    *core.Screen
	config    core.RuntimeConfig
	app       Appearance
	keyMapper *KeyMapper
	help      help.Model
	input     core.InputFrame

	snap     snake.Snapshot
	over     *snake.GameOver
	ack      chan<- struct{}
	best     int
	dragFrom *core.Point
	status   string
	quitting bool
}

// NewModel creates the model. ack is signalled when the player confirms a
// game-over dialog.
func NewModel(s Session, ack chan<- struct{}) Model {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	best := 0
	if s.Store != nil {
		if high, err := s.Store.HighScore(s.Variant.ID); err != nil {
			logger.Warn("cannot read high score", "variant", s.Variant.ID, "err", err)
		} else {
			best = high
		}
	}

	h := help.New()
	h.Width = s.Runtime.ScreenW

	return Model{
		engine:    s.Engine,
		rules:     s.Engine.Rules(),
		variant:   s.Variant,
		store:     s.Store,
		logger:    logger,
		saveDir:   s.SaveDir,
		screen:    core.NewScreen(s.Runtime.ScreenW, max(s.Runtime.ScreenH-1, 0)),
		config:    s.Runtime,
		app:       AppearanceFrom(s.Config),
		keyMapper: NewKeyMapper(DefaultKeyMap()),
		help:      h,
		input:     core.NewInputFrame(),
		snap:      s.Engine.Snapshot(),
		ack:       ack,
		best:      best,
	}
}

// Init implements tea.Model. The runner goroutine drives the game.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		// Last row belongs to the help bar.
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.snap = msg.Snapshot
		return m, nil

	case GameOverMsg:
		return m.handleGameOver(msg.Over)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.input.Clear()
	if m.keyMapper.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}

	for _, action := range m.input.Actions {
		switch action {
		case core.ActionHelp:
			m.help.ShowAll = !m.help.ShowAll
		case core.ActionConfirm:
			m.acknowledge()
		case core.ActionSave:
			m.saveSnapshot()
		default:
			m.steer(action)
		}
	}
	return m, nil
}

func (m *Model) steer(action core.Action) {
	code := action.KeyCode()
	if code == 0 || m.over != nil {
		return
	}
	if !m.engine.Key(code) {
		m.logger.Debug("turn rejected", "action", action, "heading", m.snap.Direction)
	}
}

// handleMouse turns a press-drag-release into a swipe. A click without
// movement acknowledges the game-over dialog.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	layout, ok := boardLayout(m.screen.Bounds(), m.rules, m.app)
	if !ok {
		return m, nil
	}
	at := layout.ScreenToBoard(core.Point{X: msg.X, Y: msg.Y})

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.dragFrom = &at
		}

	case tea.MouseActionRelease:
		if m.dragFrom == nil {
			return m, nil
		}
		from := *m.dragFrom
		m.dragFrom = nil

		if from == at {
			m.acknowledge()
			return m, nil
		}
		if m.over == nil && !m.engine.Swipe(from, at) {
			m.logger.Debug("swipe ignored", "from", from, "to", at)
		}
	}
	return m, nil
}

func (m Model) handleGameOver(over snake.GameOver) (tea.Model, tea.Cmd) {
	m.over = &over
	m.snap = over.Final
	m.best = max(m.best, over.Score)

	if m.store != nil {
		if _, err := m.store.SaveScore(m.variant.ID, over.Score, string(over.Reason), over.Final.Tick); err != nil {
			m.logger.Warn("cannot save score", "err", err)
		}
	}
	return m, nil
}

// acknowledge releases a pending game-over report so the engine resets.
func (m *Model) acknowledge() {
	if m.over == nil {
		return
	}
	m.over = nil
	select {
	case m.ack <- struct{}{}:
	default:
	}
}

// saveSnapshot writes the current board as YAML for the sim command.
func (m *Model) saveSnapshot() {
	if m.saveDir == "" {
		return
	}
	if err := os.MkdirAll(m.saveDir, 0o755); err != nil {
		m.logger.Warn("cannot create snapshot directory", "dir", m.saveDir, "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.yaml", m.variant.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(m.saveDir, name)

	f, err := os.Create(path)
	if err != nil {
		m.logger.Warn("cannot save snapshot", "err", err)
		return
	}
	defer f.Close()

	if err := snake.EncodeSnapshot(f, m.engine.Snapshot()); err != nil {
		m.logger.Warn("cannot save snapshot", "err", err)
		return
	}
	m.status = "saved " + name
	m.logger.Info("snapshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	layout, ok := boardLayout(m.screen.Bounds(), m.rules, m.app)
	if !ok {
		DrawTooSmall(m.screen, m.rules, m.app)
	} else {
		DrawHUD(m.screen, layout, m.snap, HUD{Title: m.variant.Title, Best: m.best})
		DrawBoard(m.screen, layout, m.snap, m.rules, m.app)
		if m.over != nil {
			DrawGameOver(m.screen, layout, *m.over)
		}
	}

	footer := m.help.View(m.keyMapper.Keys())
	if m.status != "" {
		footer = m.status + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run plays a session until the player quits. The runner goroutine is
// stopped and joined before Run returns.
func Run(s Session) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ack := make(chan struct{}, 1)
	p := tea.NewProgram(
		NewModel(s, ack),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	presenter := &programPresenter{ctx: ctx, send: p.Send, ack: ack}
	runner := snake.NewRunner(s.Engine, s.Logger)

	done := make(chan error, 1)
	go func() {
		done <- runner.Run(ctx, presenter)
	}()

	_, err := p.Run()
	cancel()
	<-done
	return err
}
