package controller

import (
	m "github.com/mouse-blink/blackbox/internal/model"
)

// Message types.
type toggledMsg struct {
	path   m.Path
	status m.SkipStatus
	err    error
}

// List item types.
type sourceItem struct {
	path   m.Path
	status m.SkipStatus
}

func (s sourceItem) FilterValue() string {
	return string(s.path)
}
