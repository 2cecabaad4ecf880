package ui

import "time"

// ToggleModeMsg flips the editor between authoring and viewing.
type ToggleModeMsg struct{}

// SaveMsg requests that the document be written.
type SaveMsg struct{}

// SavedMsg is sent when the document was written.
type SavedMsg struct {
	Name string
	At   time.Time
}

// SaveFailedMsg is sent when writing the document failed.
type SaveFailedMsg struct {
	Err error
}
