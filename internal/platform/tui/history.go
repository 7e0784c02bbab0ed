package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shiraezri/hanging-man/internal/storage"
)

const maxHistoryRows = 100

// HistorySource provides recorded rounds. *storage.Store implements it.
type HistorySource interface {
	RecentRounds(limit int) ([]storage.RoundRecord, error)
	Stats() (*storage.RoundStats, error)
}

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "tab"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// HistoryModel shows the recorded rounds in a table.
// It is embedded in Model rather than run as its own program.
type HistoryModel struct {
	source HistorySource
	rounds []storage.RoundRecord
	stats  *storage.RoundStats
	err    error
	table  table.Model
	help   help.Model
	keys   HistoryKeyMap
	width  int
	height int
}

// NewHistoryModel creates a history view. A nil source shows an empty table.
func NewHistoryModel(source HistorySource, width, height int) HistoryModel {
	m := HistoryModel{
		source: source,
		help:   help.New(),
		keys:   DefaultHistoryKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table sized to the view.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 12},
		{Title: "Player", Width: 10},
		{Title: "Word", Width: 10},
		{Title: "Result", Width: 9},
		{Title: "Wrong", Width: 5},
		{Title: "Points", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, stats and help
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

// Reload reads the rounds and stats from the source.
func (m *HistoryModel) Reload() {
	m.rounds, m.stats, m.err = nil, nil, nil
	if m.source != nil {
		m.rounds, m.err = m.source.RecentRounds(maxHistoryRows)
		if m.err == nil {
			m.stats, m.err = m.source.Stats()
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded rounds.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		player := r.PlayerName
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			r.CreatedAt.Local().Format("Jan 02 15:04"),
			player,
			r.Word,
			r.Outcome,
			fmt.Sprintf("%d", r.WrongGuesses),
			fmt.Sprintf("%d", r.Points),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Resize adapts the table to a new window size.
func (m *HistoryModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.table = m.createTable()
	m.updateTableRows()
}

// Update passes scrolling keys to the table.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("ROUND HISTORY", m.width)))
	b.WriteString("\n\n")

	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	switch {
	case m.err != nil:
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).
			Render(centerText("Could not load history: "+m.err.Error(), m.width)))
	case len(m.rounds) == 0:
		b.WriteString(mutedStyle.Italic(true).Render(centerText("No rounds recorded yet.", m.width)))
	default:
		if m.stats != nil {
			line := fmt.Sprintf("Played %d  Won %d  Lost %d  Win rate %.0f%%  Points %d",
				m.stats.Played, m.stats.Won, m.stats.Lost, m.stats.WinRate()*100, m.stats.Points)
			b.WriteString(centerText(line, m.width))
			b.WriteString("\n\n")
		}
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}
