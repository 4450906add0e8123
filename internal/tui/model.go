// Package tui is the interactive front end: a bubbletea program that forwards
// keys to the timer core and samples it on a short tick while a run is active.
package tui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/misterclayt0n/chrono/internal/chrono"
	"github.com/misterclayt0n/chrono/internal/feedback"
	"github.com/misterclayt0n/chrono/internal/logging"
	"github.com/misterclayt0n/chrono/internal/models"
)

const (
	DefaultTick   = 50 * time.Millisecond
	toastDuration = 1600 * time.Millisecond
)

// tickMsg drives the render loop. gen identifies the run that scheduled it;
// ticks from an earlier run are dropped.
type tickMsg struct {
	gen int
}

type toastExpiredMsg struct {
	id int
}

type Options struct {
	Controller *chrono.Controller
	Feedback   *feedback.Terminal
	Clock      chrono.Clock
	Tick       time.Duration
	Logger     *slog.Logger
}

type Model struct {
	ctrl   *chrono.Controller
	fb     *feedback.Terminal
	clock  chrono.Clock
	tick   time.Duration
	logger *slog.Logger

	snap    chrono.Snapshot
	gen     int
	ticking bool

	toast   string
	toastID int

	settings *settingsForm
	width    int
}

func New(opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = chrono.SystemClock
	}
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Feedback == nil {
		opts.Feedback = feedback.NewTerminal(nil, opts.Logger)
	}
	m := Model{
		ctrl:   opts.Controller,
		fb:     opts.Feedback,
		clock:  opts.Clock,
		tick:   opts.Tick,
		logger: opts.Logger,
	}
	m.snap = m.ctrl.Snapshot(m.clock.Now())
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		if msg.gen != m.gen || !m.ticking {
			return m, nil
		}
		return m.refresh(true)

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.settings != nil {
			return m.updateSettings(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.ctrl.Pause()
		m.ctrl.Close()
		return m, tea.Quit
	case " ":
		m.ctrl.ToggleStartPause()
	case "l":
		m.ctrl.RecordLapOrAdvance()
	case "r":
		if err := m.ctrl.Reset(); err != nil {
			m.logger.Debug("reset refused", "err", err)
		}
	case "1":
		m.setMode(models.ModeStopwatch)
	case "2":
		m.setMode(models.ModeInterval)
	case "tab":
		if m.snap.Mode == models.ModeInterval {
			m.setMode(models.ModeStopwatch)
		} else {
			m.setMode(models.ModeInterval)
		}
	case "s":
		m.settings = newSettingsForm(m.snap.Config, m.snap.Feedback)
		return m, nil
	default:
		return m, nil
	}
	return m.refresh(false)
}

func (m Model) setMode(next models.Mode) {
	if err := m.ctrl.SetMode(next); err != nil {
		m.logger.Debug("mode switch refused", "mode", next, "err", err)
	}
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.settings.update(msg) {
	case formApply:
		m.ctrl.ApplyConfig(m.settings.config(), m.settings.fb)
		m.settings = nil
		return m.refresh(false)
	case formCancel:
		m.settings = nil
	}
	return m, nil
}

// refresh samples the controller after a command or tick, picks up queued
// toasts and keeps the render loop alive exactly while a run is active.
func (m Model) refresh(fromTick bool) (tea.Model, tea.Cmd) {
	m.snap = m.ctrl.Tick(m.clock.Now())

	var cmds []tea.Cmd
	if toasts := m.fb.Drain(); len(toasts) > 0 {
		m.toast = toasts[len(toasts)-1]
		m.toastID++
		id := m.toastID
		cmds = append(cmds, tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		}))
	}

	switch {
	case m.snap.Running && (fromTick || !m.ticking):
		if !m.ticking {
			m.gen++
			m.ticking = true
		}
		cmds = append(cmds, m.scheduleTick())
	case !m.snap.Running && m.ticking:
		// Invalidate any tick still in flight.
		m.gen++
		m.ticking = false
	}

	return m, tea.Batch(cmds...)
}

func (m Model) scheduleTick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.tick, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Snapshot is the last sampled controller state.
func (m Model) Snapshot() chrono.Snapshot {
	return m.snap
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
