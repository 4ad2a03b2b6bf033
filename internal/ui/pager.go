package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pagerKeyMap defines key bindings for the pager
type pagerKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k pagerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k pagerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Top, k.Bottom, k.Help, k.Quit},
	}
}

func newPagerKeyMap() pagerKeyMap {
	return pagerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup/b", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f", " "),
			key.WithHelp("pgdn/f", "page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PagerModel is a scrollable viewer for decoded output.
type PagerModel struct {
	Title   string
	Content string

	// UI state
	Width  int
	Height int
	Ready  bool

	viewport viewport.Model
	keys     pagerKeyMap
	help     help.Model
}

// NewPagerModel creates a pager over content
func NewPagerModel(title, content string) PagerModel {
	return PagerModel{
		Title:   title,
		Content: content,
		keys:    newPagerKeyMap(),
		help:    help.New(),
	}
}

// Init initializes the pager
func (m PagerModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses and resizes
func (m PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		case !m.Ready:
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	if !m.Ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// resize fits the viewport between the title bar and the help line
func (m *PagerModel) resize() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	height := m.Height - lipgloss.Height(m.titleView()) - lipgloss.Height(m.footerView())
	if height < 1 {
		height = 1
	}

	if !m.Ready {
		m.viewport = viewport.New(m.Width, height)
		m.viewport.KeyMap.Up = m.keys.Up
		m.viewport.KeyMap.Down = m.keys.Down
		m.viewport.KeyMap.PageUp = m.keys.PageUp
		m.viewport.KeyMap.PageDown = m.keys.PageDown
		m.viewport.SetContent(m.Content)
		m.Ready = true
		return
	}
	m.viewport.Width = m.Width
	m.viewport.Height = height
}

// View renders the pager
func (m PagerModel) View() string {
	if !m.Ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.titleView(), m.viewport.View(), m.footerView())
}

func (m PagerModel) titleView() string {
	return PagerTitleStyle.Render(m.Title)
}

func (m PagerModel) footerView() string {
	info := ""
	if m.Ready {
		info = PagerInfoStyle.Render(fmt.Sprintf(" %3.f%%", m.viewport.ScrollPercent()*100))
	}
	return strings.TrimRight(m.help.View(m.keys)+info, " ")
}

// ScrollOffset returns the index of the first visible line
func (m PagerModel) ScrollOffset() int {
	return m.viewport.YOffset
}

// RunPager opens the pager on the alternate screen and blocks until the
// user quits.
func RunPager(title, content string) error {
	p := tea.NewProgram(NewPagerModel(title, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
