package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dragon-runner/internal/core"
)

// KeyMap defines the key bindings of the console.
type KeyMap struct {
	Start      key.Binding
	Score      key.Binding
	Award      key.Binding
	GameOver   key.Binding
	Jump       key.Binding
	Invincible key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Score, k.GameOver, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Score, k.Award, k.GameOver},
		{k.Jump, k.Invincible},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter/s", "start run"),
		),
		Score: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "score"),
		),
		Award: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "score n steps"),
		),
		GameOver: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "game over"),
		),
		Jump: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "toggle jump"),
		),
		Invincible: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "toggle invincible"),
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

// MapKey translates a key message to a console action.
// For ActionScore, steps is how many score steps the key awards.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, steps int) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, 0
	case key.Matches(msg, k.Start):
		return core.ActionStart, 0
	case key.Matches(msg, k.Score):
		return core.ActionScore, 1
	case key.Matches(msg, k.Award):
		return core.ActionScore, int(msg.String()[0] - '0')
	case key.Matches(msg, k.GameOver):
		return core.ActionGameOver, 0
	case key.Matches(msg, k.Jump):
		return core.ActionJump, 0
	case key.Matches(msg, k.Invincible):
		return core.ActionInvincible, 0
	case key.Matches(msg, k.Help):
		return core.ActionHelp, 0
	}
	return core.ActionNone, 0
}
