package models

import (
	"encoding/json"
	"math"
	"time"
)

// StateKey is the fixed key the timer blob lives under.
const StateKey = "chrono_state_v2"

// PersistedState is everything of the timer that survives a restart.
type PersistedState struct {
	Mode     Mode
	Feedback FeedbackSettings
	Config   TimerConfig
	Laps     []Lap
}

func DefaultState() PersistedState {
	return PersistedState{
		Mode:     ModeStopwatch,
		Feedback: DefaultFeedbackSettings(),
		Config:   DefaultTimerConfig(),
		Laps:     []Lap{},
	}
}

//
// Wire format
//

type stateJSON struct {
	Mode      string       `json:"mode"`
	Vibration bool         `json:"vibration"`
	Sound     bool         `json:"sound"`
	Wake      bool         `json:"wake"`
	Interval  intervalJSON `json:"interval"`
	Laps      []lapJSON    `json:"laps"`
}

type intervalJSON struct {
	Preset string   `json:"preset"`
	Rounds *float64 `json:"rounds"`
	Work   *float64 `json:"work"`
	Rest   *float64 `json:"rest"`
}

type lapJSON struct {
	TotalMs float64 `json:"totalMs"`
	SplitMs float64 `json:"splitMs"`
}

// EncodeState serializes the state into the JSON blob format.
func EncodeState(s PersistedState) ([]byte, error) {
	cfg := s.Config.Normalize()
	wire := stateJSON{
		Mode:      string(s.Mode),
		Vibration: s.Feedback.Vibration,
		Sound:     s.Feedback.Sound,
		Wake:      s.Feedback.KeepAwake,
		Interval: intervalJSON{
			Preset: string(cfg.Preset),
			Rounds: number(cfg.Rounds),
			Work:   number(cfg.Work),
			Rest:   number(cfg.Rest),
		},
		Laps: make([]lapJSON, 0, len(s.Laps)),
	}
	for _, lap := range s.Laps {
		wire.Laps = append(wire.Laps, lapJSON{
			TotalMs: float64(lap.Total.Milliseconds()),
			SplitMs: float64(lap.Split.Milliseconds()),
		})
	}
	return json.Marshal(wire)
}

// DecodeState parses a blob. Missing fields keep their defaults; a blob that
// cannot be parsed at all yields DefaultState and the parse error.
func DecodeState(data []byte) (PersistedState, error) {
	def := DefaultState()
	if len(data) == 0 {
		return def, nil
	}

	wire := stateJSON{
		Mode:      string(def.Mode),
		Vibration: def.Feedback.Vibration,
		Sound:     def.Feedback.Sound,
		Wake:      def.Feedback.KeepAwake,
		Interval: intervalJSON{
			Preset: string(def.Config.Preset),
		},
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return def, err
	}

	state := PersistedState{
		Mode: Mode(wire.Mode),
		Feedback: FeedbackSettings{
			Vibration: wire.Vibration,
			Sound:     wire.Sound,
			KeepAwake: wire.Wake,
		},
		Laps: make([]Lap, 0, len(wire.Laps)),
	}
	if !state.Mode.Valid() {
		state.Mode = def.Mode
	}

	preset := PresetTabata
	if wire.Interval.Preset != "" {
		preset, _ = ParsePreset(wire.Interval.Preset)
	}
	state.Config = TimerConfig{
		Preset: preset,
		Rounds: orDefault(wire.Interval.Rounds, def.Config.Rounds),
		Work:   orDefault(wire.Interval.Work, def.Config.Work),
		Rest:   orDefault(wire.Interval.Rest, def.Config.Rest),
	}.Normalize()

	for _, l := range wire.Laps {
		lap := Lap{
			Total: msToDuration(l.TotalMs),
			Split: msToDuration(l.SplitMs),
		}
		if lap.Split < 0 {
			lap.Split = 0
		}
		state.Laps = append(state.Laps, lap)
	}
	return state, nil
}

func number(n int) *float64 {
	v := float64(n)
	return &v
}

// orDefault treats missing and non-finite numbers as absent. Out of range
// values are left for Normalize to clamp.
func orDefault(p *float64, def int) int {
	if p == nil {
		return def
	}
	v := *p
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int(v)
}

func msToDuration(ms float64) time.Duration {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return 0
	}
	return time.Duration(ms * float64(time.Millisecond)).Truncate(time.Millisecond)
}
