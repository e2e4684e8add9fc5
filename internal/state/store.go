// Package state provides the file-backed single-slot store for the
// active session.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/onnk5188-hash/notion/internal/domain/timer"
)

// Store keeps at most one session in a JSON file at a fixed path.
// There is no cross-process locking; two processes racing on start can
// both observe an empty slot, with the later write winning.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Read returns the stored session, or nil when the file is missing,
// empty, or malformed. A corrupted record is treated the same as no
// session.
func (s *Store) Read() *timer.Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var sess timer.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil
	}
	if sess.Project == "" || sess.Task == "" || sess.Start.IsZero() {
		return nil
	}
	return &sess
}

// Write replaces the stored session. The session is written to a temp
// file in the same directory and renamed over the target so readers
// never see a partial write.
func (s *Store) Write(sess *timer.Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Clear deletes the backing file. Deleting an absent file is not an
// error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
