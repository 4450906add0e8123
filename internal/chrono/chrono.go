// Package chrono is the workout timer core: a stopwatch and an interval
// (work/rest/rounds) timer sharing one lap history.
//
// The Controller is a plain state container. It never starts goroutines or
// timers of its own; the host samples it with Snapshot/Tick and forwards user
// commands. Side effects (feedback, keep-awake, persistence, history) go
// through the small interfaces below and are best effort.
package chrono

import (
	"errors"
	"time"

	"github.com/misterclayt0n/chrono/internal/models"
)

// ErrPauseFirst is returned by commands that are not allowed while a run is
// in progress. It is a notice for the user, not a failure.
var ErrPauseFirst = errors.New("pause first")

// Feedback pulse lengths.
const (
	PulsePause    = 10 * time.Millisecond
	PulseLap      = 12 * time.Millisecond
	PulseStart    = 15 * time.Millisecond
	PulseReset    = 20 * time.Millisecond
	PulsePhase    = 50 * time.Millisecond
	PulseComplete = 80 * time.Millisecond
)

// Toast messages.
const (
	ToastReset      = "Reset"
	ToastPauseFirst = "Pause first"
	ToastComplete   = "Workout complete!"
)

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock backed by time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Feedback is the haptic/audio/notification side channel. The controller
// applies the user's vibration and sound toggles before calling it.
type Feedback interface {
	Vibrate(d time.Duration)
	Tone()
	Toast(msg string)
}

// KeepAwake holds the display awake while a run is active.
type KeepAwake interface {
	Acquire() error
	Release() error
}

// Persister stores the timer blob.
type Persister interface {
	Save(state models.PersistedState) error
}

// Journal records completed interval workouts.
type Journal interface {
	RecordWorkout(w models.Workout) error
}

type nopFeedback struct{}

func (nopFeedback) Vibrate(time.Duration) {}
func (nopFeedback) Tone()                 {}
func (nopFeedback) Toast(string)          {}

type nopKeepAwake struct{}

func (nopKeepAwake) Acquire() error { return nil }
func (nopKeepAwake) Release() error { return nil }
