package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skydodge/internal/core"
)

// repeatDelay covers the pause terminals leave between a key press and
// its first auto-repeat.
const repeatDelay = 400 * time.Millisecond

// KeyMap holds the key bindings of a game session.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Stop       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Stop: key.NewBinding(
			key.WithKeys(" ", "space", "down", "s"),
			key.WithHelp("space", "stop"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
			key.WithDisabled(),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Stop, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop},
		{k.Restart, k.Screenshot, k.Quit},
	}
}

// KeyMapper turns terminal key presses into KeyDown/KeyUp notifications.
// Terminals report presses and auto-repeats but never releases, so a
// direction stays held until no repeat has arrived for the hold window.
type KeyMapper struct {
	keys     KeyMap
	hold     time.Duration
	listener core.InputListener
	held     [2]bool
	deadline [2]time.Time
}

// NewKeyMapper creates a key mapper with the given bindings and hold window.
func NewKeyMapper(keys KeyMap, hold time.Duration) *KeyMapper {
	return &KeyMapper{keys: keys, hold: hold}
}

// Attach routes notifications to l, replacing any previous listener.
// Held directions are forgotten.
func (km *KeyMapper) Attach(l core.InputListener) {
	km.listener = l
	km.held = [2]bool{}
	km.deadline = [2]time.Time{}
}

// Press handles a key message received at now. It reports whether the key
// was a steering key.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time) bool {
	switch {
	case key.Matches(msg, km.keys.Left):
		km.release(core.DirRight)
		km.press(core.DirLeft, now)
	case key.Matches(msg, km.keys.Right):
		km.release(core.DirLeft)
		km.press(core.DirRight, now)
	case key.Matches(msg, km.keys.Stop):
		km.release(core.DirLeft)
		km.release(core.DirRight)
	default:
		return false
	}
	return true
}

// Expire releases every direction whose hold window ended before now.
func (km *KeyMapper) Expire(now time.Time) {
	for _, d := range []core.Direction{core.DirLeft, core.DirRight} {
		if km.held[d] && now.After(km.deadline[d]) {
			km.release(d)
		}
	}
}

// Held reports whether d is currently held down.
func (km *KeyMapper) Held(d core.Direction) bool {
	return km.held[d]
}

func (km *KeyMapper) press(d core.Direction, now time.Time) {
	if km.held[d] {
		km.deadline[d] = now.Add(km.hold)
		return
	}
	km.held[d] = true
	km.deadline[d] = now.Add(repeatDelay + km.hold)
	if km.listener != nil {
		km.listener.KeyDown(d)
	}
}

func (km *KeyMapper) release(d core.Direction) {
	if !km.held[d] {
		return
	}
	km.held[d] = false
	if km.listener != nil {
		km.listener.KeyUp(d)
	}
}

var _ core.InputSource = (*KeyMapper)(nil)
