package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shiraezri/hanging-man/internal/config"
	"github.com/shiraezri/hanging-man/internal/core"
	"github.com/shiraezri/hanging-man/internal/games/hangman"
)

type memPrefs struct {
	name   string
	length int
	total  int
}

func (p *memPrefs) PlayerName() (string, error)     { return p.name, nil }
func (p *memPrefs) SetPlayerName(n string) error    { p.name = n; return nil }
func (p *memPrefs) ClearPlayerName() error          { p.name = ""; return nil }
func (p *memPrefs) WordLength(def int) (int, error) { return def, nil }
func (p *memPrefs) SetWordLength(n int) error       { p.length = n; return nil }
func (p *memPrefs) TotalScore() (int, error)        { return p.total, nil }
func (p *memPrefs) SetTotalScore(total int) error   { p.total = total; return nil }

type staticWords []string

func (s staticWords) LoadWords(context.Context, string) ([]string, error) {
	return s, nil
}

func newTestModel(t *testing.T) (Model, *memPrefs) {
	t.Helper()
	prefs := &memPrefs{}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 26, Seed: 1}
	g, err := hangman.New(context.Background(), hangman.Options{
		Config: config.GameConfig{
			AllowedLengths:    []int{5},
			DefaultWordLength: 5,
			MaxWrongGuesses:   6,
		},
		Words:   staticWords{"apple"},
		Prefs:   prefs,
		Runtime: cfg,
	})
	if err != nil {
		t.Fatalf("hangman.New() failed: %v", err)
	}
	m := NewModel(g, nil, cfg)
	m.Init()
	return m, prefs
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestKeyMapMapKey(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyCtrlR}, core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionHistory},
		{tea.KeyMsg{Type: tea.KeyCtrlN}, core.ActionRename},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("q"), core.ActionNone},
		{runes("a"), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestKeyMapLettersBecomeRunes(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	keys.MapKeyToFrame(runes("q"), &frame)
	if len(frame.Runes) != 1 || frame.Runes[0] != 'q' {
		t.Errorf("Expected rune q, got %v", frame.Runes)
	}
	if len(frame.Actions) != 0 {
		t.Errorf("Letters should not set actions, got %v", frame.Actions)
	}

	frame = core.NewInputFrame()
	keys.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a"), Alt: true}, &frame)
	if !frame.Empty() {
		t.Error("Alt+letter should be ignored")
	}
}

func TestModelPlaysRound(t *testing.T) {
	m, prefs := newTestModel(t)

	m = send(m, runes("a"), runes("p"), runes("l"))
	if m.gameState.GameOver {
		t.Fatal("Round should still be active")
	}
	if m.gameState.Score != 4 {
		t.Errorf("Expected round score 4, got %d", m.gameState.Score)
	}

	m = send(m, runes("e"))
	if !m.gameState.Won {
		t.Error("Expected the round to be won")
	}
	if prefs.total != 5 {
		t.Errorf("Expected persisted total 5, got %d", prefs.total)
	}

	view := m.View()
	if !strings.Contains(view, "The word was: APPLE") {
		t.Error("View should reveal the word after a win")
	}

	// Enter starts the next round
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameState.GameOver {
		t.Error("Enter should start a new round")
	}
}

func TestModelHistoryView(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewHistory {
		t.Fatalf("Tab should open history, view = %v", m.view)
	}
	view := m.View()
	if !strings.Contains(view, "ROUND HISTORY") || !strings.Contains(view, "No rounds recorded yet.") {
		t.Errorf("Unexpected history view:\n%s", view)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewGame {
		t.Error("Esc should return to the game")
	}
}

func TestModelRename(t *testing.T) {
	m, prefs := newTestModel(t)

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.view != viewName {
		t.Fatalf("Ctrl+N should open the name prompt, view = %v", m.view)
	}

	// Letters go to the prompt, not the round
	m = send(m, runes("9lives"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewName || m.nameErr == "" {
		t.Error("Invalid name should keep the prompt open with an error")
	}
	if m.game.Round().WrongGuesses != 0 {
		t.Error("Typing a name must not guess letters")
	}

	m.nameInput.SetValue("")
	m = send(m, runes("Shira"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Error("Valid name should close the prompt")
	}
	if prefs.name != "Shira" {
		t.Errorf("Expected stored name Shira, got %q", prefs.name)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(Model)
	if !m.quitting || cmd == nil {
		t.Error("Ctrl+C should quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, runes("a"))

	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpHeight {
		t.Errorf("Screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
	if m.game.Snapshot().Masked != "A____" {
		t.Error("Resize should not reset the round")
	}
}

func TestRenderScreenDefaultColor(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "Hello")

	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen() = %q, want %q", got, s.String())
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() should not truncate, got %q", got)
	}
}
