package timer

import "time"

// Session is one tracked unit of work, persisted until stopped.
type Session struct {
	Project string    `json:"project"`
	Task    string    `json:"task"`
	Start   time.Time `json:"start"`
}

// Entry is a finished session ready to be recorded remotely. It is
// computed at stop time and never persisted.
type Entry struct {
	Project         string
	Task            string
	Start           time.Time
	End             time.Time
	DurationMinutes float64
}
