package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

// KeyMap defines the key bindings of the simulation screen.
type KeyMap struct {
	ToggleRun key.Binding
	Clear     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleRun, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleRun, k.Clear},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleRun: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "run/pause"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear (paused)"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.ToggleRun):
		return core.ActionToggleRun, false
	case key.Matches(msg, km.keys.Clear):
		return core.ActionClear, false
	case key.Matches(msg, km.keys.Help):
		return core.ActionHelp, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
