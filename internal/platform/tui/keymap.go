package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shiraezri/hanging-man/internal/core"
)

// KeyMap defines the key bindings of the game screen.
// Letter keys are not bound: every plain letter is a guess.
type KeyMap struct {
	PrevLength key.Binding
	NextLength key.Binding
	NewRound   key.Binding
	Restart    key.Binding
	History    key.Binding
	Rename     key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevLength, k.NextLength, k.NewRound, k.Restart, k.History, k.Rename, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevLength, k.NextLength, k.NewRound, k.Restart},
		{k.History, k.Rename, k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevLength: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "shorter"),
		),
		NextLength: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "longer"),
		),
		NewRound: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next word"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Rename: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "name"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Plain letters map to ActionNone; use MapKeyToFrame to collect them.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.PrevLength):
		return core.ActionLeft
	case key.Matches(msg, k.NextLength):
		return core.ActionRight
	case key.Matches(msg, k.NewRound):
		return core.ActionConfirm
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.History):
		return core.ActionHistory
	case key.Matches(msg, k.Rename):
		return core.ActionRename
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Typed characters are passed through as runes for the game to validate.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) {
	if action := k.MapKey(msg); action != core.ActionNone {
		frame.Set(action)
		return
	}
	if msg.Type == tea.KeyRunes && !msg.Alt {
		for _, r := range msg.Runes {
			frame.AddRune(r)
		}
	}
}
