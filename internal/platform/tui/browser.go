// Package tui provides the Bubble Tea frame browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/duckgen/internal/export"
	"github.com/vovakirdan/duckgen/internal/preview"
	"github.com/vovakirdan/duckgen/internal/sprite"
)

// BrowserKeyMap defines the key bindings for the frame browser.
type BrowserKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.First, k.Last, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.First, k.Last, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("up", "k", "left", "h"),
			key.WithHelp("up/k", "prev frame"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "j", "right", "l"),
			key.WithHelp("down/j", "next frame"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	browserTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	frameBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// BrowserModel is the Bubble Tea model for stepping through frames.
// Frames only change on key presses; there is no timer.
type BrowserModel struct {
	frames   []sprite.Frame
	prefix   string
	cursor   int
	table    table.Model
	help     help.Model
	keys     BrowserKeyMap
	renderer *preview.Renderer
	quitting bool
}

// NewBrowserModel creates a browser over the given frames.
func NewBrowserModel(frames []sprite.Frame, prefix string, color bool) BrowserModel {
	m := BrowserModel{
		frames:   frames,
		prefix:   prefix,
		keys:     DefaultBrowserKeyMap(),
		help:     help.New(),
		renderer: preview.NewRenderer(color),
	}
	m.table = m.createTable()
	return m
}

// createTable builds the frame list shown beside the preview.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 11},
		{Title: "Phase", Width: 6},
	}

	rows := make([]table.Row, len(m.frames))
	for i, f := range m.frames {
		rows[i] = table.Row{fmt.Sprintf("%02d", f.Index), f.Name, string(f.Phase)}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Cursor returns the index into the frame slice of the selected frame.
func (m BrowserModel) Cursor() int {
	return m.cursor
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.move(m.cursor - 1)
		case key.Matches(msg, m.keys.Next):
			m.move(m.cursor + 1)
		case key.Matches(msg, m.keys.First):
			m.move(0)
		case key.Matches(msg, m.keys.Last):
			m.move(len(m.frames) - 1)
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

// move selects the frame at i, clamped to the frame list.
func (m *BrowserModel) move(i int) {
	if len(m.frames) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.frames) {
		i = len(m.frames) - 1
	}
	m.cursor = i
	m.table.SetCursor(i)
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.frames) == 0 {
		return "No frames.\n"
	}

	f := m.frames[m.cursor]

	var b strings.Builder
	b.WriteString(browserTitle.Render("DUCK FRAMES"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.table.View(),
		"  ",
		frameBox.Render(m.renderer.Render(f.Canvas)),
	))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("%s  %s  %d/%d  %s",
		export.FileName(m.prefix, f.Index), f.Phase, f.Index, len(m.frames), f.Name)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// RunBrowser starts the Bubble Tea program for the frame browser.
func RunBrowser(frames []sprite.Frame, prefix string, color bool) error {
	p := tea.NewProgram(
		NewBrowserModel(frames, prefix, color),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
