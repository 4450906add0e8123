// Package feedback renders the timer's haptic and audio cues in a terminal.
package feedback

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// Terminal rings the bell for tones and queues toasts for the UI to show.
// Terminals cannot vibrate, so pulses are only logged.
type Terminal struct {
	mu      sync.Mutex
	bell    io.Writer
	logger  *slog.Logger
	pending []string
}

// NewTerminal writes BEL characters to bell. A nil bell silences tones.
func NewTerminal(bell io.Writer, logger *slog.Logger) *Terminal {
	return &Terminal{bell: bell, logger: logger}
}

func (t *Terminal) Vibrate(d time.Duration) {
	t.logger.Debug("vibrate", "ms", d.Milliseconds())
}

func (t *Terminal) Tone() {
	if t.bell == nil {
		return
	}
	if _, err := io.WriteString(t.bell, "\a"); err != nil {
		t.logger.Debug("bell failed", "err", err)
	}
}

func (t *Terminal) Toast(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = append(t.pending, msg)
}

// Drain returns and clears the queued toasts, oldest first.
func (t *Terminal) Drain() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.pending
	t.pending = nil
	return out
}
