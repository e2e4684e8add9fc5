package output

import (
	"fmt"
	"io"
	"time"

	"github.com/onnk5188-hash/notion/internal/domain/timer"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) SessionStarted(sess *timer.Session) {
	fmt.Fprintf(f.w, "▶️  Started '%s' / '%s' at %s\n", sess.Project, sess.Task, sess.Start.Format(time.RFC3339))
}

func (f *Formatter) EntryRecorded(entry *timer.Entry) {
	fmt.Fprintf(f.w, "✅ Recorded '%s' / '%s' for %.2f minutes. Entry stored in Notion.\n",
		entry.Project, entry.Task, entry.DurationMinutes)
}

func (f *Formatter) StatusRunning(sess *timer.Session, elapsed time.Duration) {
	fmt.Fprintf(f.w, "⏱️  Running: project='%s', task='%s', started at %s (%s elapsed)\n",
		sess.Project, sess.Task, sess.Start.Format(time.RFC3339), Duration(elapsed))
}

func (f *Formatter) StatusIdle() {
	fmt.Fprintf(f.w, "ℹ️  No active session.\n")
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}

// Duration renders an elapsed duration as 1h02m03s / 2m03s / 3s.
func Duration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
