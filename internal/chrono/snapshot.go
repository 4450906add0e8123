package chrono

import (
	"time"

	"github.com/misterclayt0n/chrono/internal/models"
)

// Snapshot is a read-only view of the controller at one instant.
type Snapshot struct {
	At      time.Time
	Mode    models.Mode
	Running bool

	// Stopwatch.
	Elapsed    time.Duration
	CurrentLap time.Duration
	// Paused is true when the stopwatch holds time but is not running, which
	// the start control labels as "Resume".
	Paused bool

	// Interval.
	Phase         models.Phase
	Round         int
	Rounds        int
	Remaining     time.Duration
	PhaseDuration time.Duration
	IntervalTotal time.Duration
	Completed     bool

	Laps     []models.Lap
	Config   models.TimerConfig
	Feedback models.FeedbackSettings
}

// Display is the value shown on the main clock face.
func (s Snapshot) Display() time.Duration {
	if s.Mode == models.ModeInterval {
		return s.Remaining
	}
	return s.Elapsed
}

// StartLabel is the label of the start/pause control.
func (s Snapshot) StartLabel() string {
	switch {
	case s.Running:
		return "Pause"
	case s.Mode == models.ModeStopwatch && s.Paused:
		return "Resume"
	default:
		return "Start"
	}
}

// LapLabel is the label of the lap/skip control.
func (s Snapshot) LapLabel() string {
	if s.Mode == models.ModeInterval {
		return "Next"
	}
	return "Lap"
}

// BestLap returns the index of the shortest positive split, or -1. Only the
// stopwatch ranks laps.
func (s Snapshot) BestLap() int {
	if s.Mode != models.ModeStopwatch {
		return -1
	}
	best := -1
	for i, lap := range s.Laps {
		if lap.Split <= 0 {
			continue
		}
		if best < 0 || lap.Split < s.Laps[best].Split {
			best = i
		}
	}
	return best
}

func (c *Controller) snapshotLocked(now time.Time) Snapshot {
	snap := Snapshot{
		At:       now,
		Mode:     c.mode,
		Laps:     append([]models.Lap(nil), c.laps...),
		Config:   c.config,
		Feedback: c.feedback,
	}

	elapsed := c.sw.accumulated
	if c.sw.running {
		elapsed += now.Sub(c.sw.startedAt)
	}
	snap.Elapsed = elapsed
	snap.Paused = !c.sw.running && c.sw.accumulated > 0
	var prev time.Duration
	if len(c.laps) > 0 {
		prev = c.laps[0].Total
	}
	if lap := elapsed - prev; lap > 0 {
		snap.CurrentLap = lap
	}

	remaining := c.liveRemainingLocked(now)
	phaseDur := c.config.PhaseDuration(c.iv.phase)
	snap.Phase = c.iv.phase
	snap.Round = c.iv.round
	snap.Rounds = c.config.Rounds
	snap.Remaining = remaining
	snap.PhaseDuration = phaseDur
	snap.IntervalTotal = c.iv.accumulated
	if c.iv.running {
		snap.IntervalTotal += phaseDur - remaining
	}
	snap.Completed = c.iv.completed

	if c.mode == models.ModeInterval {
		snap.Running = c.iv.running
	} else {
		snap.Running = c.sw.running
	}
	return snap
}
