package controller

import (
	"github.com/mouse-blink/jstruct/internal/domain"
)

// Message types.

// operationDoneMsg carries the result of a key handled in the background.
type operationDoneMsg struct {
	event domain.Event
	err   error
}

// methodSavedMsg reports the end of a method editor save.
type methodSavedMsg struct {
	err error
}

type reloadedMsg struct {
	err error
}

// externalChangeMsg is sent when the file was modified by another program.
type externalChangeMsg struct{}
