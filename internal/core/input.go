package core

// Action represents a semantic game command, abstracted from physical key presses.
// Each action maps onto exactly one Round Controller operation.
type Action int

const (
	ActionNone     Action = iota
	ActionGuess           // activate a swatch
	ActionNewRound        // round-advance control
	ActionEasy            // easy mode control
	ActionHard            // hard mode control
	ActionReset           // reset streak control
	ActionHistory         // toggle streak history
	ActionQuit            // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionGuess:
		return "Guess"
	case ActionNewRound:
		return "NewRound"
	case ActionEasy:
		return "Easy"
	case ActionHard:
		return "Hard"
	case ActionReset:
		return "Reset"
	case ActionHistory:
		return "History"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is one user activation: the action plus, for ActionGuess, the swatch slot.
type Input struct {
	Action Action
	Slot   int
}
