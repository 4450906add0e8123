package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStateDefaults(t *testing.T) {
	for _, blob := range []string{"", "{}"} {
		state, err := DecodeState([]byte(blob))
		require.NoError(t, err)
		assert.Equal(t, DefaultState(), state, "blob %q", blob)
	}
}

func TestDecodeStateMalformed(t *testing.T) {
	state, err := DecodeState([]byte(`{"mode": "interval", "laps": [`))
	assert.Error(t, err)
	assert.Equal(t, DefaultState(), state)

	state, err = DecodeState([]byte(`"just a string"`))
	assert.Error(t, err)
	assert.Equal(t, DefaultState(), state)
}

func TestDecodeStatePartial(t *testing.T) {
	state, err := DecodeState([]byte(`{"mode":"interval","sound":false,"interval":{"preset":"custom","rounds":3}}`))
	require.NoError(t, err)

	assert.Equal(t, ModeInterval, state.Mode)
	assert.Equal(t, FeedbackSettings{Vibration: true, Sound: false, KeepAwake: false}, state.Feedback)
	assert.Equal(t, TimerConfig{Preset: PresetCustom, Rounds: 3, Work: 20, Rest: 10}, state.Config)
	assert.Empty(t, state.Laps)
}

func TestDecodeStateSanitizes(t *testing.T) {
	state, err := DecodeState([]byte(`{
		"mode": "lap-counter",
		"interval": {"preset": "mystery", "rounds": 250, "work": 2, "rest": 0},
		"laps": [{"totalMs": 1500.7, "splitMs": -20}]
	}`))
	require.NoError(t, err)

	assert.Equal(t, ModeStopwatch, state.Mode)
	assert.Equal(t, TimerConfig{Preset: PresetCustom, Rounds: 99, Work: 5, Rest: 0}, state.Config)
	require.Len(t, state.Laps, 1)
	assert.Equal(t, Lap{Total: 1500 * time.Millisecond, Split: 0}, state.Laps[0])
}

func TestDecodeStateNamedPresetWins(t *testing.T) {
	state, err := DecodeState([]byte(`{"interval":{"preset":"boxing","rounds":2,"work":30,"rest":5}}`))
	require.NoError(t, err)
	assert.Equal(t, PresetConfig(PresetBoxing), state.Config)
}

func TestStateRoundTrip(t *testing.T) {
	in := PersistedState{
		Mode:     ModeInterval,
		Feedback: FeedbackSettings{Vibration: false, Sound: true, KeepAwake: true},
		Config:   CustomConfig(5, 45, 0),
		Laps: []Lap{
			{Total: 90 * time.Second, Split: 45 * time.Second},
			{Total: 45 * time.Second, Split: 45 * time.Second},
		},
	}

	blob, err := EncodeState(in)
	require.NoError(t, err)

	out, err := DecodeState(blob)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncodeStateWireFormat(t *testing.T) {
	state := DefaultState()
	state.Laps = []Lap{{Total: 2500 * time.Millisecond, Split: 2500 * time.Millisecond}}

	blob, err := EncodeState(state)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(blob, &raw))
	assert.Equal(t, "stopwatch", raw["mode"])
	assert.Equal(t, true, raw["vibration"])
	assert.Equal(t, true, raw["sound"])
	assert.Equal(t, false, raw["wake"])
	assert.Equal(t, map[string]any{"preset": "tabata", "rounds": 8.0, "work": 20.0, "rest": 10.0}, raw["interval"])
	assert.Equal(t, []any{map[string]any{"totalMs": 2500.0, "splitMs": 2500.0}}, raw["laps"])
}
