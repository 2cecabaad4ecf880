package ui

// Mode is the widget's interaction state, driven by the host's edit-mode flag.
type Mode int

const (
	ModeViewing Mode = iota
	ModeAuthoring
)

// ModeOf maps the host edit-mode flag to a Mode.
func ModeOf(authoring bool) Mode {
	if authoring {
		return ModeAuthoring
	}
	return ModeViewing
}

func (m Mode) String() string {
	switch m {
	case ModeViewing:
		return "Viewing"
	case ModeAuthoring:
		return "Authoring"
	default:
		return "Unknown"
	}
}
