// Package gamestate holds the run and session state of the dragon runner.
// It has no terminal or rendering dependencies; presentation layers read it
// and dispatch its actions.
package gamestate

// Status is the current phase of the game.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusGameOver
)

// String returns the status name used in logs and the HUD.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
