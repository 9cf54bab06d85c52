package core

// Action represents a semantic console action, abstracted from physical key presses.
// This lets the console and its tests work with intents rather than raw keys.
type Action int

const (
	ActionNone       Action = iota
	ActionStart             // Enter, S - start a run (also restarts after game over)
	ActionScore             // Space, 1-9 - award points
	ActionGameOver          // X - end the current run
	ActionJump              // J - toggle the jump flag
	ActionInvincible        // I - toggle the invincibility flag
	ActionHelp              // ? - show all key bindings
	ActionQuit              // Q, Ctrl+C - exit the console
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionScore:
		return "Score"
	case ActionGameOver:
		return "GameOver"
	case ActionJump:
		return "Jump"
	case ActionInvincible:
		return "Invincible"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
