package model

// SkipStatus is the resolved skip state of a path.
type SkipStatus int

const (
	// Unset means neither an explicit override nor a pattern applies.
	Unset SkipStatus = iota
	// Skip marks library code the debugger steps over.
	Skip
	// NoSkip marks user code the debugger stops in.
	NoSkip
)

// StatusOf converts an explicit decision into a SkipStatus.
func StatusOf(skip bool) SkipStatus {
	if skip {
		return Skip
	}

	return NoSkip
}

// IsSet reports whether s carries a concrete decision.
func (s SkipStatus) IsSet() bool {
	return s == Skip || s == NoSkip
}

// Bool returns the decision, treating Unset as false.
func (s SkipStatus) Bool() bool {
	return s == Skip
}

func (s SkipStatus) String() string {
	switch s {
	case Skip:
		return "skip"
	case NoSkip:
		return "no-skip"
	default:
		return "unset"
	}
}
