package timer

import "errors"

var (
	// ErrAlreadyRunning is returned by Start while a session is stored.
	ErrAlreadyRunning = errors.New("a session is already running. Use 'stop' before starting a new one")

	// ErrNoActiveSession is returned by Stop when no session is stored.
	ErrNoActiveSession = errors.New("no active session found. Use 'start' first")

	ErrEmptyProject = errors.New("project must not be empty")
	ErrEmptyTask    = errors.New("task must not be empty")
)
