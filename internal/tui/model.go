// Package tui is the interactive front end: project/task inputs and
// start/stop controls around the same Tracker the CLI commands use.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/onnk5188-hash/notion/config"
	"github.com/onnk5188-hash/notion/internal/app"
	"github.com/onnk5188-hash/notion/internal/domain/timer"
	"github.com/onnk5188-hash/notion/internal/output"
)

// Model is the root bubbletea model for the timer UI.
type Model struct {
	tracker *timer.Tracker
	cfg     *config.Config

	projectInput textinput.Model
	taskInput    textinput.Model
	focusIndex   int

	running  bool
	sess     *timer.Session
	stopping bool

	statusText string
	errText    string

	width  int
	height int
}

func New(cfg *config.Config) Model {
	application := app.New(cfg)

	project := textinput.New()
	project.Placeholder = "Project"
	project.CharLimit = 120
	project.Width = 28
	project.Focus()

	task := textinput.New()
	task.Placeholder = "Task"
	task.CharLimit = 120
	task.Width = 28

	m := Model{
		tracker:      application.Tracker,
		cfg:          cfg,
		projectInput: project,
		taskInput:    task,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.running {
		return tickCmd()
	}
	return textinput.Blink
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// stopCmd runs the blocking stop (one network round trip) off the UI
// loop. Credentials are checked first so nothing is touched when they
// are missing.
func (m Model) stopCmd() tea.Cmd {
	tracker := m.tracker
	cfg := m.cfg
	return func() tea.Msg {
		if err := cfg.ValidateCredentials(); err != nil {
			return stopFailedMsg{Err: err}
		}
		entry, err := tracker.Stop()
		if err != nil {
			return stopFailedMsg{Err: err}
		}
		return entryRecordedMsg{Entry: entry}
	}
}

func (m *Model) refresh() {
	m.sess = m.tracker.Status()
	m.running = m.sess != nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.running {
			return m, tickCmd()
		}
		return m, nil

	case entryRecordedMsg:
		m.running = false
		m.stopping = false
		m.sess = nil
		m.errText = ""
		m.statusText = fmt.Sprintf("Recorded '%s' / '%s' for %.2f minutes.",
			msg.Entry.Project, msg.Entry.Task, msg.Entry.DurationMinutes)
		m.projectInput.SetValue("")
		m.taskInput.SetValue("")
		m.focusIndex = 0
		m.projectInput.Focus()
		m.taskInput.Blur()
		return m, textinput.Blink

	case stopFailedMsg:
		// The session is still stored; stay running so stop can retry.
		m.stopping = false
		m.errText = msg.Err.Error()
		m.refresh()
		if m.running {
			return m, tickCmd()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keyCtrlC || key == keyEsc {
		return m, tea.Quit
	}

	if m.running {
		switch key {
		case keyQuit:
			return m, tea.Quit
		case keyStop:
			if m.stopping {
				return m, nil
			}
			m.stopping = true
			m.errText = ""
			m.statusText = "Writing entry to Notion..."
			return m, m.stopCmd()
		case keyRefresh:
			m.refresh()
			m.statusText = ""
		}
		return m, nil
	}

	switch key {
	case keyTab, keyShiftTab:
		m.focusIndex = 1 - m.focusIndex
		if m.focusIndex == 0 {
			m.projectInput.Focus()
			m.taskInput.Blur()
		} else {
			m.taskInput.Focus()
			m.projectInput.Blur()
		}
		return m, textinput.Blink

	case keyEnter:
		sess, err := m.tracker.Start(
			strings.TrimSpace(m.projectInput.Value()),
			strings.TrimSpace(m.taskInput.Value()),
		)
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.sess = sess
		m.running = true
		m.errText = ""
		m.statusText = ""
		return m, tickCmd()
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.projectInput, cmd = m.projectInput.Update(msg)
	} else {
		m.taskInput, cmd = m.taskInput.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("notion-timer"))
	b.WriteString("\n\n")

	if m.running && m.sess != nil {
		b.WriteString(runningStyle.Render("● Running"))
		b.WriteString(fmt.Sprintf("  %s / %s\n", m.sess.Project, m.sess.Task))
		b.WriteString(labelStyle.Render("started  "))
		b.WriteString(m.sess.Start.Format(time.RFC3339))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("elapsed  "))
		b.WriteString(elapsedStyle.Render(output.Duration(time.Since(m.sess.Start))))
		b.WriteString("\n\n")
		if m.stopping {
			b.WriteString(statusStyle.Render("Writing entry to Notion..."))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("s: stop and record • r: refresh • q: quit"))
	} else {
		b.WriteString(idleStyle.Render("○ Idle"))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Project  "))
		b.WriteString(m.projectInput.View())
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Task     "))
		b.WriteString(m.taskInput.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("tab: switch field • enter: start • esc: quit"))
	}

	b.WriteString("\n")
	if m.statusText != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusText))
		b.WriteString("\n")
	}
	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n")
	}

	return b.String()
}

// Run starts the UI and blocks until it exits.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(New(cfg)).Run()
	return err
}
