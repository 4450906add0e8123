package chrono

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/misterclayt0n/chrono/internal/models"
)

// Options wires the controller's collaborators. Nil fields get no-op
// implementations (SystemClock for Clock).
type Options struct {
	Clock     Clock
	Feedback  Feedback
	KeepAwake KeepAwake
	Persister Persister
	Journal   Journal
	Logger    *slog.Logger
}

type stopwatchState struct {
	running     bool
	accumulated time.Duration
	startedAt   time.Time // zero while idle
}

type intervalState struct {
	running bool
	phase   models.Phase
	round   int
	// remaining is frozen while idle. While running it is the value at
	// segmentStart and the live value is derived from the clock.
	remaining    time.Duration
	segmentStart time.Time
	accumulated  time.Duration
	completed    bool
	runStarted   time.Time
	// runLaps holds this run's phase laps, newest first. The shared lap
	// list may also carry stopwatch laps taken while the run was paused.
	runLaps []models.Lap
}

// Controller owns the timer state. All methods are safe for concurrent use,
// but the expected host is a single event loop.
type Controller struct {
	mu sync.Mutex

	mode     models.Mode
	config   models.TimerConfig
	feedback models.FeedbackSettings
	laps     []models.Lap

	sw stopwatchState
	iv intervalState

	awakeHeld bool

	clock     Clock
	fb        Feedback
	awake     KeepAwake
	persister Persister
	journal   Journal
	logger    *slog.Logger
}

// New hydrates a controller from a persisted state.
func New(state models.PersistedState, opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	if opts.Feedback == nil {
		opts.Feedback = nopFeedback{}
	}
	if opts.KeepAwake == nil {
		opts.KeepAwake = nopKeepAwake{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Controller{
		mode:      state.Mode,
		config:    state.Config.Normalize(),
		feedback:  state.Feedback,
		laps:      append([]models.Lap(nil), state.Laps...),
		clock:     opts.Clock,
		fb:        opts.Feedback,
		awake:     opts.KeepAwake,
		persister: opts.Persister,
		journal:   opts.Journal,
		logger:    opts.Logger,
	}
	if !c.mode.Valid() {
		c.mode = models.ModeStopwatch
	}
	c.rearmIntervalLocked()
	// An interval session picks its running total back up from the newest lap.
	if c.mode == models.ModeInterval && len(c.laps) > 0 {
		c.iv.accumulated = c.laps[0].Total
	}
	return c
}

// ToggleStartPause flips the active mode between Idle and Running.
func (c *Controller) ToggleStartPause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toggleLocked(c.clock.Now())
}

// Start starts the active mode if it is idle.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.activeRunningLocked() {
		c.toggleLocked(c.clock.Now())
	}
}

// Pause pauses the active mode if it is running. Pausing an idle timer does
// nothing.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeRunningLocked() {
		c.toggleLocked(c.clock.Now())
	}
}

func (c *Controller) toggleLocked(now time.Time) {
	switch c.mode {
	case models.ModeStopwatch:
		if c.sw.running {
			c.sw.accumulated += now.Sub(c.sw.startedAt)
			c.sw.running = false
			c.sw.startedAt = time.Time{}
			c.releaseAwakeLocked()
			c.vibrateLocked(PulsePause)
			c.logger.Debug("stopwatch paused", "elapsed", c.sw.accumulated)
		} else {
			c.sw.running = true
			c.sw.startedAt = now
			c.acquireAwakeLocked()
			c.vibrateLocked(PulseStart)
			c.logger.Debug("stopwatch started", "elapsed", c.sw.accumulated)
		}

	case models.ModeInterval:
		if c.iv.running {
			c.advanceLocked(now)
			if !c.iv.running {
				// The run finished on this very tick; nothing left to pause.
				break
			}
			c.iv.remaining = c.liveRemainingLocked(now)
			c.iv.running = false
			c.iv.segmentStart = time.Time{}
			c.releaseAwakeLocked()
			c.vibrateLocked(PulsePause)
			c.logger.Debug("interval paused", "phase", c.iv.phase, "round", c.iv.round, "remaining", c.iv.remaining)
		} else {
			c.iv.completed = false
			if c.iv.runStarted.IsZero() {
				c.iv.runStarted = now
			}
			c.iv.running = true
			c.iv.segmentStart = now
			c.acquireAwakeLocked()
			c.vibrateLocked(PulseStart)
			c.logger.Debug("interval started", "phase", c.iv.phase, "round", c.iv.round, "remaining", c.iv.remaining)
		}
	}
	c.saveLocked()
}

// RecordLapOrAdvance records a split (stopwatch) or skips to the next phase
// (interval). It does nothing unless the active mode is running.
func (c *Controller) RecordLapOrAdvance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.clock.Now()

	switch c.mode {
	case models.ModeStopwatch:
		if !c.sw.running {
			return
		}
		total := (c.sw.accumulated + now.Sub(c.sw.startedAt)).Truncate(time.Millisecond)
		var prev time.Duration
		if len(c.laps) > 0 {
			prev = c.laps[0].Total
		}
		split := total - prev
		if split < 0 {
			split = 0
		}
		c.prependLapLocked(models.Lap{Total: total, Split: split})
		c.vibrateLocked(PulseLap)

	case models.ModeInterval:
		if !c.iv.running {
			return
		}
		c.advanceLocked(now)
		if !c.iv.running {
			c.saveLocked()
			return
		}
		elapsed := (c.config.PhaseDuration(c.iv.phase) - c.liveRemainingLocked(now)).Truncate(time.Millisecond)
		if elapsed < 0 {
			elapsed = 0
		}
		c.iv.accumulated += elapsed
		c.recordPhaseLapLocked(models.Lap{Total: c.iv.accumulated, Split: elapsed})
		c.vibrateLocked(PulsePhase)
		c.toneLocked()
		c.logger.Debug("phase skipped", "phase", c.iv.phase, "round", c.iv.round, "elapsed", elapsed)
		c.nextPhaseLocked(now)
	}
	c.saveLocked()
}

// Reset clears both modes and the lap history. It is refused while running.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sw.running || c.iv.running {
		c.fb.Toast(ToastPauseFirst)
		return ErrPauseFirst
	}

	c.sw = stopwatchState{}
	c.iv.accumulated = 0
	c.rearmIntervalLocked()
	c.laps = nil
	c.releaseAwakeLocked()
	c.saveLocked()
	c.vibrateLocked(PulseReset)
	c.fb.Toast(ToastReset)
	c.logger.Info("timer reset")
	return nil
}

// SetMode switches the active mode. Laps and accumulated values of the mode
// being left are kept so switching back resumes where it was.
func (c *Controller) SetMode(next models.Mode) error {
	if !next.Valid() {
		return fmt.Errorf("unknown mode %q", next)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sw.running || c.iv.running {
		c.fb.Toast(ToastPauseFirst)
		return ErrPauseFirst
	}
	c.mode = next
	c.saveLocked()
	c.fb.Toast(next.Label())
	return nil
}

// ApplyConfig validates and stores new interval parameters and feedback
// settings. An idle interval run is re-initialized to the new work duration.
func (c *Controller) ApplyConfig(cfg models.TimerConfig, fb models.FeedbackSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.config = cfg.Normalize()
	c.feedback = fb
	if !c.iv.running {
		c.iv.accumulated = 0
		c.rearmIntervalLocked()
	}

	if c.feedback.KeepAwake && (c.sw.running || c.iv.running) {
		c.acquireAwakeLocked()
	} else {
		c.releaseAwakeLocked()
	}
	c.saveLocked()
	c.logger.Info("settings applied", "config", c.config.String(), "vibration", fb.Vibration, "sound", fb.Sound, "wake", fb.KeepAwake)
}

// Tick applies any phase expirations up to now and returns a snapshot. The
// render loop calls it on every frame.
func (c *Controller) Tick(now time.Time) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == models.ModeInterval && c.iv.running {
		before := len(c.laps)
		c.advanceLocked(now)
		if len(c.laps) != before {
			c.saveLocked()
		}
	}
	return c.snapshotLocked(now)
}

// Snapshot reports the state at now without mutating anything.
func (c *Controller) Snapshot(now time.Time) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked(now)
}

// State returns the persistable part of the controller.
func (c *Controller) State() models.PersistedState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Running reports whether either mode is running.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sw.running || c.iv.running
}

// Close releases the keep-awake hold if one is still held.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.releaseAwakeLocked()
}

// advanceLocked walks through every phase whose countdown has reached zero by
// now. Each new phase starts at the exact instant the previous one expired, so
// a late tick catches up without drifting.
func (c *Controller) advanceLocked(now time.Time) {
	for c.iv.running {
		if now.Sub(c.iv.segmentStart) < c.iv.remaining {
			return
		}
		expiredAt := c.iv.segmentStart.Add(c.iv.remaining)
		full := c.config.PhaseDuration(c.iv.phase)
		c.iv.accumulated += full
		c.recordPhaseLapLocked(models.Lap{Total: c.iv.accumulated, Split: full})
		c.vibrateLocked(PulsePhase)
		c.toneLocked()
		c.logger.Debug("phase complete", "phase", c.iv.phase, "round", c.iv.round, "total", c.iv.accumulated)
		c.nextPhaseLocked(expiredAt)
	}
}

// nextPhaseLocked moves past the current phase, which has just been recorded.
// Rest always follows work when rest is configured, including after the last
// round's work; the workout completes once that trailing rest is done.
func (c *Controller) nextPhaseLocked(at time.Time) {
	if c.iv.phase == models.PhaseWork && c.config.Rest > 0 {
		c.iv.phase = models.PhaseRest
		c.iv.remaining = c.config.RestDuration()
		c.iv.segmentStart = at
		c.fb.Toast(models.PhaseRest.Label())
		return
	}

	if c.iv.round >= c.config.Rounds {
		c.finishLocked(at)
		return
	}

	c.iv.round++
	c.iv.phase = models.PhaseWork
	c.iv.remaining = c.config.WorkDuration()
	c.iv.segmentStart = at
	c.fb.Toast(models.PhaseWork.Label())
}

func (c *Controller) finishLocked(at time.Time) {
	workout := models.Workout{
		Config:     c.config,
		StartedAt:  c.iv.runStarted,
		FinishedAt: at,
		Laps:       append([]models.Lap(nil), c.iv.runLaps...),
	}
	for _, lap := range workout.Laps {
		workout.Total += lap.Split
	}

	c.iv.running = false
	c.rearmIntervalLocked()
	c.iv.completed = true
	c.releaseAwakeLocked()
	c.vibrateLocked(PulseComplete)
	c.fb.Toast(ToastComplete)
	c.logger.Info("workout complete", "config", c.config.String(), "total", workout.Total, "laps", len(workout.Laps))

	if c.journal != nil {
		if err := c.journal.RecordWorkout(workout); err != nil {
			c.logger.Warn("failed to record workout", "err", err)
		}
	}
}

// rearmIntervalLocked puts the interval at the start of round one and forgets
// the current run. The accumulated total is left to the caller.
func (c *Controller) rearmIntervalLocked() {
	c.iv.phase = models.PhaseWork
	c.iv.round = 1
	c.iv.remaining = c.config.WorkDuration()
	c.iv.segmentStart = time.Time{}
	c.iv.runStarted = time.Time{}
	c.iv.runLaps = nil
	c.iv.completed = false
}

func (c *Controller) activeRunningLocked() bool {
	if c.mode == models.ModeInterval {
		return c.iv.running
	}
	return c.sw.running
}

func (c *Controller) liveRemainingLocked(now time.Time) time.Duration {
	if !c.iv.running {
		return c.iv.remaining
	}
	left := c.iv.remaining - now.Sub(c.iv.segmentStart)
	if left < 0 {
		return 0
	}
	return left
}

func (c *Controller) prependLapLocked(lap models.Lap) {
	c.laps = append([]models.Lap{lap}, c.laps...)
}

func (c *Controller) recordPhaseLapLocked(lap models.Lap) {
	c.prependLapLocked(lap)
	c.iv.runLaps = append([]models.Lap{lap}, c.iv.runLaps...)
}

func (c *Controller) vibrateLocked(d time.Duration) {
	if c.feedback.Vibration {
		c.fb.Vibrate(d)
	}
}

func (c *Controller) toneLocked() {
	if c.feedback.Sound {
		c.fb.Tone()
	}
}

func (c *Controller) acquireAwakeLocked() {
	if !c.feedback.KeepAwake || c.awakeHeld {
		return
	}
	if err := c.awake.Acquire(); err != nil {
		c.logger.Debug("keep-awake unavailable", "err", err)
		return
	}
	c.awakeHeld = true
}

func (c *Controller) releaseAwakeLocked() {
	if !c.awakeHeld {
		return
	}
	c.awakeHeld = false
	if err := c.awake.Release(); err != nil {
		c.logger.Debug("keep-awake release failed", "err", err)
	}
}

func (c *Controller) saveLocked() {
	if c.persister == nil {
		return
	}
	if err := c.persister.Save(c.stateLocked()); err != nil {
		c.logger.Warn("failed to persist timer state", "err", err)
	}
}

func (c *Controller) stateLocked() models.PersistedState {
	return models.PersistedState{
		Mode:     c.mode,
		Feedback: c.feedback,
		Config:   c.config,
		Laps:     append([]models.Lap{}, c.laps...),
	}
}
