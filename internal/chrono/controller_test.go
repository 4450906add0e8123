package chrono

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/chrono/internal/models"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

type recordingFeedback struct {
	pulses []time.Duration
	tones  int
	toasts []string
}

func (r *recordingFeedback) Vibrate(d time.Duration) { r.pulses = append(r.pulses, d) }
func (r *recordingFeedback) Tone()                   { r.tones++ }
func (r *recordingFeedback) Toast(msg string)        { r.toasts = append(r.toasts, msg) }

type fakeAwake struct {
	held     bool
	acquires int
	releases int
	fail     bool
}

func (f *fakeAwake) Acquire() error {
	if f.fail {
		return errors.New("no wake lock")
	}
	f.held = true
	f.acquires++
	return nil
}

func (f *fakeAwake) Release() error {
	f.held = false
	f.releases++
	return nil
}

type memPersister struct {
	saves int
	last  models.PersistedState
	fail  bool
}

func (m *memPersister) Save(state models.PersistedState) error {
	if m.fail {
		return errors.New("disk full")
	}
	m.saves++
	m.last = state
	return nil
}

type memJournal struct {
	workouts []models.Workout
}

func (m *memJournal) RecordWorkout(w models.Workout) error {
	m.workouts = append(m.workouts, w)
	return nil
}

type harness struct {
	clock   *fakeClock
	fb      *recordingFeedback
	awake   *fakeAwake
	store   *memPersister
	journal *memJournal
	ctrl    *Controller
}

func newHarness(t *testing.T, state models.PersistedState) *harness {
	t.Helper()
	h := &harness{
		clock:   &fakeClock{now: time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC)},
		fb:      &recordingFeedback{},
		awake:   &fakeAwake{},
		store:   &memPersister{},
		journal: &memJournal{},
	}
	h.ctrl = New(state, Options{
		Clock:     h.clock,
		Feedback:  h.fb,
		KeepAwake: h.awake,
		Persister: h.store,
		Journal:   h.journal,
	})
	return h
}

func intervalSession(cfg models.TimerConfig) models.PersistedState {
	s := models.DefaultState()
	s.Mode = models.ModeInterval
	s.Config = cfg
	return s
}

// runFor advances the clock in render-loop sized steps, ticking each time.
func (h *harness) runFor(d time.Duration) Snapshot {
	const step = 50 * time.Millisecond
	var snap Snapshot
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		h.clock.Advance(step)
		snap = h.ctrl.Tick(h.clock.Now())
	}
	return snap
}

func (h *harness) runToCompletion(t *testing.T) Snapshot {
	t.Helper()
	const step = 50 * time.Millisecond
	for i := 0; i < 1_000_000; i++ {
		h.clock.Advance(step)
		snap := h.ctrl.Tick(h.clock.Now())
		if !snap.Running {
			return snap
		}
	}
	t.Fatal("interval run never completed")
	return Snapshot{}
}

func TestStopwatchToggleAccumulates(t *testing.T) {
	h := newHarness(t, models.DefaultState())

	h.ctrl.ToggleStartPause()
	h.clock.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, h.ctrl.Snapshot(h.clock.Now()).Elapsed)

	h.ctrl.ToggleStartPause()
	h.clock.Advance(10 * time.Second)
	snap := h.ctrl.Snapshot(h.clock.Now())
	assert.False(t, snap.Running)
	assert.Equal(t, 1500*time.Millisecond, snap.Elapsed, "time must be frozen while idle")
	assert.Equal(t, "Resume", snap.StartLabel())

	h.ctrl.ToggleStartPause()
	h.clock.Advance(500 * time.Millisecond)
	assert.Equal(t, 2*time.Second, h.ctrl.Snapshot(h.clock.Now()).Elapsed)

	assert.Equal(t, []time.Duration{PulseStart, PulsePause, PulseStart}, h.fb.pulses)
}

func TestPauseIsIdempotent(t *testing.T) {
	h := newHarness(t, models.DefaultState())

	h.ctrl.Start()
	h.ctrl.Start()
	h.clock.Advance(3 * time.Second)
	h.ctrl.Pause()
	h.clock.Advance(time.Second)
	h.ctrl.Pause()
	h.clock.Advance(time.Second)

	snap := h.ctrl.Snapshot(h.clock.Now())
	assert.False(t, snap.Running)
	assert.Equal(t, 3*time.Second, snap.Elapsed)
}

func TestStopwatchMonotonicWhileRunning(t *testing.T) {
	h := newHarness(t, models.DefaultState())
	h.ctrl.ToggleStartPause()

	var last time.Duration
	for i := 0; i < 20; i++ {
		h.clock.Advance(37 * time.Millisecond)
		elapsed := h.ctrl.Snapshot(h.clock.Now()).Elapsed
		require.Greater(t, elapsed, last)
		last = elapsed
	}
}

func TestStopwatchLapSplits(t *testing.T) {
	h := newHarness(t, models.DefaultState())

	h.ctrl.RecordLapOrAdvance()
	assert.Empty(t, h.ctrl.State().Laps, "lap while idle is a no-op")

	h.ctrl.ToggleStartPause()
	for _, d := range []time.Duration{1200, 800, 2500} {
		h.clock.Advance(d * time.Millisecond)
		h.ctrl.RecordLapOrAdvance()
	}
	// Pausing in between must not create a gap in the splits.
	h.ctrl.ToggleStartPause()
	h.clock.Advance(time.Minute)
	h.ctrl.ToggleStartPause()
	h.clock.Advance(700 * time.Millisecond)
	h.ctrl.RecordLapOrAdvance()

	laps := h.ctrl.State().Laps
	require.Len(t, laps, 4)
	assert.Equal(t, []models.Lap{
		{Total: 5200 * time.Millisecond, Split: 700 * time.Millisecond},
		{Total: 4500 * time.Millisecond, Split: 2500 * time.Millisecond},
		{Total: 2000 * time.Millisecond, Split: 800 * time.Millisecond},
		{Total: 1200 * time.Millisecond, Split: 1200 * time.Millisecond},
	}, laps)

	for i := 0; i < len(laps)-1; i++ {
		assert.Equal(t, laps[i].Total-laps[i+1].Total, laps[i].Split)
	}
	assert.Equal(t, laps[len(laps)-1].Total, laps[len(laps)-1].Split)

	snap := h.ctrl.Snapshot(h.clock.Now())
	assert.Equal(t, 0, snap.BestLap())
	assert.Equal(t, "Lap", snap.LapLabel())
}

func TestIntervalTabataRunToCompletion(t *testing.T) {
	state := intervalSession(models.PresetConfig(models.PresetTabata))
	state.Feedback.KeepAwake = true
	h := newHarness(t, state)

	h.ctrl.ToggleStartPause()
	assert.True(t, h.awake.held)

	snap := h.runToCompletion(t)
	assert.False(t, snap.Running)
	assert.True(t, snap.Completed)

	laps := h.ctrl.State().Laps
	require.Len(t, laps, 16)
	// Newest first: the trailing rest is at index 0.
	for i, lap := range laps {
		if i%2 == 0 {
			assert.Equal(t, 10*time.Second, lap.Split, "lap %d should be rest", i)
		} else {
			assert.Equal(t, 20*time.Second, lap.Split, "lap %d should be work", i)
		}
	}
	assert.Equal(t, 240*time.Second, laps[0].Total)
	assert.Equal(t, 240*time.Second, snap.IntervalTotal)

	// Re-armed for the next run.
	assert.Equal(t, models.PhaseWork, snap.Phase)
	assert.Equal(t, 1, snap.Round)
	assert.Equal(t, 20*time.Second, snap.Remaining)

	assert.False(t, h.awake.held)
	assert.Contains(t, h.fb.toasts, ToastComplete)
	assert.Equal(t, PulseComplete, h.fb.pulses[len(h.fb.pulses)-1])
	assert.Equal(t, 16, h.fb.tones)

	require.Len(t, h.journal.workouts, 1)
	w := h.journal.workouts[0]
	assert.Equal(t, 240*time.Second, w.Total)
	assert.Len(t, w.Laps, 16)
	assert.Equal(t, models.PresetTabata, w.Config.Preset)
}

func TestIntervalNoRestSkipsRestPhase(t *testing.T) {
	h := newHarness(t, intervalSession(models.CustomConfig(3, 10, 0)))

	h.ctrl.ToggleStartPause()
	snap := h.runToCompletion(t)
	require.True(t, snap.Completed)

	laps := h.ctrl.State().Laps
	require.Len(t, laps, 3)
	assert.Equal(t, []models.Lap{
		{Total: 30 * time.Second, Split: 10 * time.Second},
		{Total: 20 * time.Second, Split: 10 * time.Second},
		{Total: 10 * time.Second, Split: 10 * time.Second},
	}, laps)
	assert.NotContains(t, h.fb.toasts, models.PhaseRest.Label())
}

func TestIntervalSingleRoundStillRests(t *testing.T) {
	h := newHarness(t, intervalSession(models.CustomConfig(1, 10, 5)))

	h.ctrl.ToggleStartPause()
	snap := h.runFor(11 * time.Second)
	require.True(t, snap.Running)
	assert.Equal(t, models.PhaseRest, snap.Phase)

	snap = h.runToCompletion(t)
	assert.True(t, snap.Completed)
	laps := h.ctrl.State().Laps
	require.Len(t, laps, 2)
	assert.Equal(t, 5*time.Second, laps[0].Split)
	assert.Equal(t, 15*time.Second, laps[0].Total)
}

func TestIntervalPauseKeepsRemaining(t *testing.T) {
	h := newHarness(t, intervalSession(models.PresetConfig(models.PresetTabata)))

	h.ctrl.ToggleStartPause()
	h.runFor(7 * time.Second)
	h.ctrl.ToggleStartPause()

	frozen := h.ctrl.Snapshot(h.clock.Now()).Remaining
	assert.Equal(t, 13*time.Second, frozen)

	h.clock.Advance(time.Hour)
	snap := h.ctrl.Tick(h.clock.Now())
	assert.Equal(t, frozen, snap.Remaining)
	assert.Empty(t, h.ctrl.State().Laps)

	h.ctrl.ToggleStartPause()
	h.clock.Advance(3 * time.Second)
	assert.Equal(t, 10*time.Second, h.ctrl.Snapshot(h.clock.Now()).Remaining)
}

func TestIntervalRemainingMonotonic(t *testing.T) {
	h := newHarness(t, intervalSession(models.CustomConfig(2, 5, 0)))
	h.ctrl.ToggleStartPause()

	last := h.ctrl.Snapshot(h.clock.Now()).Remaining
	for i := 0; i < 50; i++ {
		h.clock.Advance(40 * time.Millisecond)
		remaining := h.ctrl.Tick(h.clock.Now()).Remaining
		require.Less(t, remaining, last)
		last = remaining
	}
}

func TestIntervalSkipRecordsPartialPhase(t *testing.T) {
	h := newHarness(t, intervalSession(models.PresetConfig(models.PresetTabata)))

	h.ctrl.RecordLapOrAdvance()
	assert.Empty(t, h.ctrl.State().Laps, "skip while idle is a no-op")

	h.ctrl.ToggleStartPause()
	h.clock.Advance(6 * time.Second)
	h.ctrl.RecordLapOrAdvance()

	laps := h.ctrl.State().Laps
	require.Len(t, laps, 1)
	assert.Equal(t, models.Lap{Total: 6 * time.Second, Split: 6 * time.Second}, laps[0])

	snap := h.ctrl.Snapshot(h.clock.Now())
	assert.Equal(t, models.PhaseRest, snap.Phase)
	assert.Equal(t, 10*time.Second, snap.Remaining, "new phase starts full")
	assert.Equal(t, "Next", snap.LapLabel())

	h.clock.Advance(2 * time.Second)
	h.ctrl.RecordLapOrAdvance()
	snap = h.ctrl.Snapshot(h.clock.Now())
	assert.Equal(t, models.PhaseWork, snap.Phase)
	assert.Equal(t, 2, snap.Round)
	assert.Equal(t, models.Lap{Total: 8 * time.Second, Split: 2 * time.Second}, h.ctrl.State().Laps[0])
}

func TestIntervalSkipOnLastPhaseFinishes(t *testing.T) {
	h := newHarness(t, intervalSession(models.CustomConfig(1, 10, 0)))

	h.ctrl.ToggleStartPause()
	h.clock.Advance(4 * time.Second)
	h.ctrl.RecordLapOrAdvance()

	snap := h.ctrl.Snapshot(h.clock.Now())
	assert.False(t, snap.Running)
	assert.True(t, snap.Completed)
	require.Len(t, h.journal.workouts, 1)
	assert.Equal(t, 4*time.Second, h.journal.workouts[0].Total)
}

func TestIntervalLateTickCatchesUp(t *testing.T) {
	h := newHarness(t, intervalSession(models.PresetConfig(models.PresetTabata)))

	h.ctrl.ToggleStartPause()
	h.clock.Advance(35 * time.Second)
	snap := h.ctrl.Tick(h.clock.Now())

	assert.True(t, snap.Running)
	assert.Equal(t, models.PhaseWork, snap.Phase)
	assert.Equal(t, 2, snap.Round)
	assert.Equal(t, 15*time.Second, snap.Remaining)
	assert.Len(t, h.ctrl.State().Laps, 2)
}

func TestResetWhileRunningIsRejected(t *testing.T) {
	for _, mode := range []models.Mode{models.ModeStopwatch, models.ModeInterval} {
		t.Run(string(mode), func(t *testing.T) {
			state := models.DefaultState()
			state.Mode = mode
			state.Laps = []models.Lap{{Total: time.Second, Split: time.Second}}
			h := newHarness(t, state)

			h.ctrl.ToggleStartPause()
			h.clock.Advance(2 * time.Second)
			before := h.ctrl.Snapshot(h.clock.Now())
			saves := h.store.saves

			err := h.ctrl.Reset()
			require.ErrorIs(t, err, ErrPauseFirst)
			assert.Equal(t, before, h.ctrl.Snapshot(h.clock.Now()))
			assert.Equal(t, saves, h.store.saves)
			assert.Equal(t, ToastPauseFirst, h.fb.toasts[len(h.fb.toasts)-1])
		})
	}
}

func TestResetClearsEverything(t *testing.T) {
	state := intervalSession(models.PresetConfig(models.PresetTabata))
	h := newHarness(t, state)

	h.ctrl.ToggleStartPause()
	h.runFor(25 * time.Second)
	h.ctrl.ToggleStartPause()
	require.NoError(t, h.ctrl.SetMode(models.ModeStopwatch))
	h.ctrl.ToggleStartPause()
	h.clock.Advance(4 * time.Second)
	h.ctrl.ToggleStartPause()

	require.NoError(t, h.ctrl.Reset())

	snap := h.ctrl.Snapshot(h.clock.Now())
	assert.Zero(t, snap.Elapsed)
	assert.Empty(t, snap.Laps)
	assert.Equal(t, models.PhaseWork, snap.Phase)
	assert.Equal(t, 1, snap.Round)
	assert.Equal(t, 20*time.Second, snap.Remaining)
	assert.Zero(t, snap.IntervalTotal)
	assert.Equal(t, PulseReset, h.fb.pulses[len(h.fb.pulses)-1])
	assert.Equal(t, ToastReset, h.fb.toasts[len(h.fb.toasts)-1])
	assert.Empty(t, h.store.last.Laps)
}

func TestSetMode(t *testing.T) {
	h := newHarness(t, models.DefaultState())

	h.ctrl.ToggleStartPause()
	h.clock.Advance(3 * time.Second)
	h.ctrl.RecordLapOrAdvance()

	require.ErrorIs(t, h.ctrl.SetMode(models.ModeInterval), ErrPauseFirst)
	assert.Equal(t, models.ModeStopwatch, h.ctrl.State().Mode)

	h.ctrl.ToggleStartPause()
	require.NoError(t, h.ctrl.SetMode(models.ModeInterval))
	assert.Equal(t, "Interval", h.fb.toasts[len(h.fb.toasts)-1])
	assert.Equal(t, models.ModeInterval, h.store.last.Mode)

	require.NoError(t, h.ctrl.SetMode(models.ModeStopwatch))
	snap := h.ctrl.Snapshot(h.clock.Now())
	assert.Equal(t, 3*time.Second, snap.Elapsed, "switching modes keeps accumulated time")
	assert.Len(t, snap.Laps, 1)

	assert.Error(t, h.ctrl.SetMode(models.Mode("pomodoro")))
}

func TestApplyConfigPresetOverridesNumbers(t *testing.T) {
	h := newHarness(t, intervalSession(models.CustomConfig(3, 45, 15)))

	h.ctrl.ApplyConfig(models.TimerConfig{Preset: models.PresetBoxing, Rounds: 2, Work: 7, Rest: 1}, models.DefaultFeedbackSettings())

	state := h.ctrl.State()
	assert.Equal(t, models.TimerConfig{Preset: models.PresetBoxing, Rounds: 6, Work: 180, Rest: 60}, state.Config)
	assert.Equal(t, 180*time.Second, h.ctrl.Snapshot(h.clock.Now()).Remaining)
	assert.Equal(t, state.Config, h.store.last.Config)
}

func TestApplyConfigClampsCustom(t *testing.T) {
	h := newHarness(t, models.DefaultState())

	h.ctrl.ApplyConfig(models.TimerConfig{Preset: models.PresetCustom, Rounds: 500, Work: 1, Rest: -3}, models.DefaultFeedbackSettings())
	assert.Equal(t, models.TimerConfig{Preset: models.PresetCustom, Rounds: 99, Work: 5, Rest: 0}, h.ctrl.State().Config)
}

func TestApplyConfigResetsIdleIntervalOnly(t *testing.T) {
	h := newHarness(t, intervalSession(models.PresetConfig(models.PresetTabata)))

	// Paused part way through round one.
	h.ctrl.ToggleStartPause()
	h.runFor(25 * time.Second)
	h.ctrl.ToggleStartPause()
	lapsBefore := h.ctrl.State().Laps

	h.ctrl.ApplyConfig(models.PresetConfig(models.PresetHiit), models.DefaultFeedbackSettings())
	snap := h.ctrl.Snapshot(h.clock.Now())
	assert.Equal(t, models.PhaseWork, snap.Phase)
	assert.Equal(t, 1, snap.Round)
	assert.Equal(t, 40*time.Second, snap.Remaining)
	assert.Zero(t, snap.IntervalTotal)
	assert.Equal(t, lapsBefore, snap.Laps, "already recorded laps stay")

	// While running, the current countdown is left alone.
	h.ctrl.ToggleStartPause()
	h.clock.Advance(10 * time.Second)
	h.ctrl.ApplyConfig(models.PresetConfig(models.PresetTabata), models.DefaultFeedbackSettings())
	snap = h.ctrl.Snapshot(h.clock.Now())
	assert.True(t, snap.Running)
	assert.Equal(t, 30*time.Second, snap.Remaining)
}

func TestApplyConfigFromStopwatchRearmsPausedInterval(t *testing.T) {
	h := newHarness(t, intervalSession(models.PresetConfig(models.PresetTabata)))

	h.ctrl.ToggleStartPause()
	h.runFor(25 * time.Second)
	h.ctrl.ToggleStartPause()
	require.NoError(t, h.ctrl.SetMode(models.ModeStopwatch))

	h.ctrl.ApplyConfig(models.PresetConfig(models.PresetHiit), models.DefaultFeedbackSettings())
	require.NoError(t, h.ctrl.SetMode(models.ModeInterval))

	snap := h.ctrl.Snapshot(h.clock.Now())
	assert.Equal(t, models.PhaseWork, snap.Phase)
	assert.Equal(t, 1, snap.Round)
	assert.Equal(t, 40*time.Second, snap.Remaining)
	assert.Zero(t, snap.IntervalTotal)
}

func TestApplyConfigKeepAwakeFollowsRunState(t *testing.T) {
	h := newHarness(t, models.DefaultState())

	h.ctrl.ToggleStartPause()
	assert.False(t, h.awake.held)

	fb := models.DefaultFeedbackSettings()
	fb.KeepAwake = true
	h.ctrl.ApplyConfig(models.DefaultTimerConfig(), fb)
	assert.True(t, h.awake.held)

	h.ctrl.ToggleStartPause()
	assert.False(t, h.awake.held)

	h.ctrl.ApplyConfig(models.DefaultTimerConfig(), fb)
	assert.False(t, h.awake.held, "idle timer does not hold the display")
}

func TestFeedbackRespectsToggles(t *testing.T) {
	state := intervalSession(models.CustomConfig(1, 5, 0))
	state.Feedback = models.FeedbackSettings{Vibration: false, Sound: false}
	h := newHarness(t, state)

	h.ctrl.ToggleStartPause()
	h.runToCompletion(t)

	assert.Empty(t, h.fb.pulses)
	assert.Zero(t, h.fb.tones)
	assert.Contains(t, h.fb.toasts, ToastComplete, "toasts are not gated")
}

func TestCollaboratorFailuresAreSwallowed(t *testing.T) {
	state := models.DefaultState()
	state.Feedback.KeepAwake = true
	h := newHarness(t, state)
	h.awake.fail = true
	h.store.fail = true

	h.ctrl.ToggleStartPause()
	h.clock.Advance(time.Second)
	h.ctrl.RecordLapOrAdvance()
	h.ctrl.ToggleStartPause()
	require.NoError(t, h.ctrl.Reset())

	assert.False(t, h.awake.held)
	assert.Zero(t, h.store.saves)
}

func TestStateIsPersistedAfterCommands(t *testing.T) {
	h := newHarness(t, models.DefaultState())

	h.ctrl.ToggleStartPause()
	h.clock.Advance(time.Second)
	h.ctrl.RecordLapOrAdvance()
	h.ctrl.ToggleStartPause()

	assert.Equal(t, 3, h.store.saves)
	assert.Len(t, h.store.last.Laps, 1)
}

func TestNewHydratesIntervalTotalFromNewestLap(t *testing.T) {
	state := intervalSession(models.PresetConfig(models.PresetTabata))
	state.Laps = []models.Lap{
		{Total: 30 * time.Second, Split: 10 * time.Second},
		{Total: 20 * time.Second, Split: 20 * time.Second},
	}
	h := newHarness(t, state)

	snap := h.ctrl.Snapshot(h.clock.Now())
	assert.Equal(t, 30*time.Second, snap.IntervalTotal)
	assert.Equal(t, 20*time.Second, snap.Remaining)

	h.ctrl.ToggleStartPause()
	h.runFor(20 * time.Second)
	assert.Equal(t, 50*time.Second, h.ctrl.State().Laps[0].Total)
}

func TestSecondRunAfterCompletion(t *testing.T) {
	h := newHarness(t, intervalSession(models.CustomConfig(1, 5, 0)))

	h.ctrl.ToggleStartPause()
	h.runToCompletion(t)
	h.ctrl.ToggleStartPause()
	snap := h.ctrl.Snapshot(h.clock.Now())
	assert.True(t, snap.Running)
	assert.False(t, snap.Completed)

	h.runToCompletion(t)
	require.Len(t, h.journal.workouts, 2)
	assert.Len(t, h.journal.workouts[1].Laps, 1, "journal only carries the laps of its own run")
	assert.Equal(t, 5*time.Second, h.journal.workouts[1].Total)
	assert.Equal(t, 10*time.Second, h.ctrl.State().Laps[0].Total, "the running total carries across runs until reset")
}

func TestJournalIgnoresStopwatchLapsTakenMidRun(t *testing.T) {
	h := newHarness(t, intervalSession(models.PresetConfig(models.PresetTabata)))

	h.ctrl.ToggleStartPause()
	h.runFor(25 * time.Second)
	h.ctrl.ToggleStartPause()

	require.NoError(t, h.ctrl.SetMode(models.ModeStopwatch))
	h.ctrl.ToggleStartPause()
	h.clock.Advance(3 * time.Second)
	h.ctrl.RecordLapOrAdvance()
	h.clock.Advance(4 * time.Second)
	h.ctrl.RecordLapOrAdvance()
	h.ctrl.ToggleStartPause()

	require.NoError(t, h.ctrl.SetMode(models.ModeInterval))
	h.ctrl.ToggleStartPause()
	snap := h.runToCompletion(t)
	require.True(t, snap.Completed)

	assert.Len(t, h.ctrl.State().Laps, 18)

	require.Len(t, h.journal.workouts, 1)
	w := h.journal.workouts[0]
	require.Len(t, w.Laps, 16)
	assert.Equal(t, 240*time.Second, w.Total)
	for i, lap := range w.Laps {
		if i%2 == 0 {
			assert.Equal(t, 10*time.Second, lap.Split, "lap %d should be rest", i)
		} else {
			assert.Equal(t, 20*time.Second, lap.Split, "lap %d should be work", i)
		}
	}
	assert.Equal(t, 240*time.Second, w.Laps[0].Total)
}
