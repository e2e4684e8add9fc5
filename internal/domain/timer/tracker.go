package timer

import (
	"fmt"
	"strings"
	"time"
)

// Store persists at most one session. A nil session from Read means
// no session is active.
type Store interface {
	Read() *Session
	Write(*Session) error
	Clear() error
}

// Recorder pushes a finished entry to an external system.
type Recorder interface {
	Record(Entry) error
}

// Tracker owns the start/stop/status lifecycle of the single session.
type Tracker struct {
	Store    Store
	Recorder Recorder
	Now      func() time.Time // defaults to time.Now
}

func (t *Tracker) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// Start begins a new session. It fails with ErrAlreadyRunning if a
// session is already stored; the stored session is left untouched.
func (t *Tracker) Start(project, task string) (*Session, error) {
	if strings.TrimSpace(project) == "" {
		return nil, ErrEmptyProject
	}
	if strings.TrimSpace(task) == "" {
		return nil, ErrEmptyTask
	}
	if t.Store.Read() != nil {
		return nil, ErrAlreadyRunning
	}

	sess := &Session{Project: project, Task: task, Start: t.now()}
	if err := t.Store.Write(sess); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	return sess, nil
}

// Status returns the stored session, or nil when idle. Non-mutating.
func (t *Tracker) Status() *Session {
	return t.Store.Read()
}

// Stop ends the stored session, records it via the Recorder, and
// clears the store. The store is cleared only after the recorder
// reports success; on failure the session stays on disk so a later
// Stop can retry once the remote issue is resolved.
func (t *Tracker) Stop() (*Entry, error) {
	sess := t.Store.Read()
	if sess == nil {
		return nil, ErrNoActiveSession
	}

	end := t.now()
	entry := Entry{
		Project:         sess.Project,
		Task:            sess.Task,
		Start:           sess.Start,
		End:             end,
		DurationMinutes: end.Sub(sess.Start).Seconds() / 60,
	}

	if err := t.Recorder.Record(entry); err != nil {
		return nil, err
	}

	if err := t.Store.Clear(); err != nil {
		return nil, fmt.Errorf("clearing session state: %w", err)
	}
	return &entry, nil
}
