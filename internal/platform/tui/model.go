// Package tui runs a hangman session in the terminal with Bubble Tea.
// The game draws into a core.Screen; this package turns keys into input
// frames and the screen into styled text.
package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shiraezri/hanging-man/internal/core"
	"github.com/shiraezri/hanging-man/internal/games/hangman"
	"github.com/shiraezri/hanging-man/internal/games/hangman/engine"
)

// helpHeight is the number of rows reserved below the game screen.
const helpHeight = 2

type view int

const (
	viewGame view = iota
	viewHistory
	viewName
)

// Model is the Bubble Tea model for a hangman session.
// The game is turn-based, so it only advances on key presses.
type Model struct {
	game      *hangman.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	gameState core.GameState
	history   HistoryModel
	nameInput textinput.Model
	nameErr   string
	view      view
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given session.
// history may be nil when no round history is available.
func NewModel(game *hangman.Game, history HistorySource, cfg core.RuntimeConfig) Model {
	ti := textinput.New()
	ti.Placeholder = "Nickname"
	ti.CharLimit = 20
	ti.Width = 24

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		history:   NewHistoryModel(history, cfg.ScreenW, cfg.ScreenH),
		nameInput: ti,
	}
	game.Resize(cfg.ScreenW, gameHeight(cfg.ScreenH))
	return m
}

func gameHeight(h int) int {
	return max(h-helpHeight, 0)
}

// Init starts the first round. A missing word length is shown by the game.
func (m Model) Init() tea.Cmd {
	if m.game.Round() == nil {
		_ = m.game.NewRound()
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.view {
		case viewHistory:
			return m.handleHistoryKey(msg)
		case viewName:
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	if m.view == viewName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input on the game screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	frame := core.NewInputFrame()
	m.keys.MapKeyToFrame(msg, &frame)

	switch {
	case frame.Has(core.ActionQuit):
		m.game.Close()
		m.quitting = true
		return m, tea.Quit

	case frame.Has(core.ActionHistory):
		m.history.Reload()
		m.view = viewHistory
		return m, nil

	case frame.Has(core.ActionRename):
		m.nameInput.SetValue(m.game.PlayerName())
		m.nameInput.CursorEnd()
		m.nameErr = ""
		m.view = viewName
		return m, m.nameInput.Focus()
	}

	if frame.Empty() {
		return m, nil
	}
	result := m.game.Step(frame)
	m.gameState = result.State
	return m, nil
}

// handleHistoryKey processes keys while the history table is shown.
func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.history.keys.Quit):
		m.game.Close()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.history.keys.Back):
		m.view = viewGame
		return m, nil
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// handleNameKey processes keys while the name prompt is shown.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.game.Close()
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEsc:
		m.nameInput.Blur()
		m.view = viewGame
		return m, nil

	case tea.KeyEnter:
		err := m.game.SetPlayerName(m.nameInput.Value())
		var invalid *engine.InvalidNameError
		if errors.As(err, &invalid) {
			m.nameErr = "Start with a letter, then letters and digits only"
			return m, nil
		}
		m.nameInput.Blur()
		m.view = viewGame
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleResize processes window resize events.
// The round is kept; only the layout changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.game.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	m.history.Resize(msg.Width, msg.Height)
	return m, nil
}

// saveScreenshot saves the current screen as plain text under ~/.hangman/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".hangman", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("hangman_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewHistory:
		return m.history.View()
	case viewName:
		return m.nameView()
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n\n" + helpStyle.Render(m.help.View(m.keys))
}

// nameView renders the nickname prompt.
func (m Model) nameView() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("YOUR NAME", m.config.ScreenW)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.nameInput.View()))
	b.WriteString("\n")

	if m.nameErr != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.nameErr))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render("enter save • esc cancel"))
	return b.String()
}

// Run starts the Bubble Tea program for the session.
func Run(game *hangman.Game, history HistorySource, cfg core.RuntimeConfig) error {
	model := NewModel(game, history, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
