package camera

// Key identifies a keyboard key the controller reacts to. Window backends
// translate their native key codes into these values.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyReload // R
	KeyToggle // Space
	KeyForward
	KeyBackward
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySprint
	KeyCrouch
)

// Action is the state transition reported for a key.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// Command tells the caller which side effect a key event asks for.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandReload
	CommandToggle
)

func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandReload:
		return "reload"
	case CommandToggle:
		return "toggle"
	default:
		return "none"
	}
}
