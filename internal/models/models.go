package models

// Mode enumerates the interaction states of a countdown.
type Mode int

const (
	ModeInput Mode = iota
	ModeRunning
)

func (m Mode) String() string {
	switch m {
	case ModeInput:
		return "input"
	case ModeRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Event is a key press already translated to the action it requests.
type Event int

const (
	EventOther Event = iota
	EventQuit
	EventIncrease
	EventDecrease
	EventConfirm
	EventCancel
)

func (e Event) String() string {
	switch e {
	case EventQuit:
		return "quit"
	case EventIncrease:
		return "increase"
	case EventDecrease:
		return "decrease"
	case EventConfirm:
		return "confirm"
	case EventCancel:
		return "cancel"
	default:
		return "other"
	}
}

// Effect tells the control loop what it must do after a transition.
type Effect int

const (
	EffectNone Effect = iota
	// EffectQuit asks the loop to stop.
	EffectQuit
	// EffectStart asks the loop to capture a fresh start timestamp.
	EffectStart
)

// Timer is the countdown record. The start timestamp lives with the loop.
type Timer struct {
	TargetSeconds  int64
	ElapsedSeconds int64
	Mode           Mode
}
