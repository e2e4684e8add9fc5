package tui

import (
	"time"

	"github.com/onnk5188-hash/notion/internal/domain/timer"
)

// entryRecordedMsg carries the recorded entry after a successful stop.
type entryRecordedMsg struct {
	Entry *timer.Entry
}

// stopFailedMsg is sent when the stop could not be completed. The
// session stays stored so the user can retry.
type stopFailedMsg struct {
	Err error
}

// tickMsg refreshes the elapsed display while a session is running.
type tickMsg time.Time
