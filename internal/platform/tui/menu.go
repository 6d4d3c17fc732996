package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

// MenuKeyMap defines the key bindings for the variant picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns the default picker bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel lets the player pick a rule variant.
type MenuModel struct {
	variants []registry.Variant
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap

	selected   string
	wantScores bool
	quitting   bool
}

// NewMenuModel creates a picker over all registered variants.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		variants: registry.List(),
		width:    width,
		height:   height,
		keys:     DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.variants)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.variants) > 0 {
				m.selected = m.variants[m.cursor].ID
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Scores):
			m.wantScores = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" || m.wantScores {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(title.Render(centerText("S N A K E", m.width)))
	b.WriteString("\n\n")

	for i, v := range m.variants {
		if i == m.cursor {
			b.WriteString(active.Render(centerText("> "+v.Title, m.width)))
		} else {
			b.WriteString(centerText("  "+v.Title, m.width))
		}
		b.WriteString("\n")
	}

	if len(m.variants) > 0 {
		b.WriteString("\n")
		b.WriteString(desc.Render(centerText(m.variants[m.cursor].Description, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText(helpLine(m.keys.ShortHelp()), m.width)))
	return b.String()
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, "  |  ")
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	VariantID       string
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the picker and returns the selection.
func RunMenu(width, height int) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := final.(MenuModel)
	switch {
	case !ok || m.quitting:
		return MenuResult{Quit: true}, nil
	case m.wantScores:
		return MenuResult{WantsScoreboard: true}, nil
	case m.selected == "":
		return MenuResult{Quit: true}, nil
	}
	return MenuResult{VariantID: m.selected}, nil
}
