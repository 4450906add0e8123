package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/chrono/internal/utils"
)

type Mode string

const (
	ModeStopwatch Mode = "stopwatch"
	ModeInterval  Mode = "interval"
)

func (m Mode) Valid() bool {
	return m == ModeStopwatch || m == ModeInterval
}

// Label is the human name shown in tabs and toasts.
func (m Mode) Label() string {
	if m == ModeInterval {
		return "Interval"
	}
	return "Stopwatch"
}

func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown mode %q (want stopwatch or interval)", s)
	}
	return m, nil
}

type Phase string

const (
	PhaseWork Phase = "work"
	PhaseRest Phase = "rest"
)

func (p Phase) Label() string {
	if p == PhaseRest {
		return "Rest"
	}
	return "Work"
}

type Preset string

const (
	PresetTabata Preset = "tabata"
	PresetHiit   Preset = "hiit"
	PresetBoxing Preset = "boxing"
	PresetCustom Preset = "custom"
)

// Presets lists every preset in the order they are offered to the user.
var Presets = []Preset{PresetTabata, PresetHiit, PresetBoxing, PresetCustom}

// ParsePreset maps a stored or typed preset id onto the closed set.
// The second return is false for ids outside the set.
func ParsePreset(s string) (Preset, bool) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PresetTabata, PresetHiit, PresetBoxing, PresetCustom:
		return p, true
	default:
		return PresetCustom, false
	}
}

// Triple returns the fixed rounds/work/rest of a named preset.
// ok is false for PresetCustom, which has no fixed values.
func (p Preset) Triple() (rounds, work, rest int, ok bool) {
	switch p {
	case PresetTabata:
		return 8, 20, 10, true
	case PresetHiit:
		return 10, 40, 20, true
	case PresetBoxing:
		return 6, 180, 60, true
	case PresetCustom:
		return 0, 0, 0, false
	default:
		return 0, 0, 0, false
	}
}

func (p Preset) Label() string {
	switch p {
	case PresetTabata:
		return "Tabata"
	case PresetHiit:
		return "HIIT"
	case PresetBoxing:
		return "Boxing"
	default:
		return "Custom"
	}
}

const (
	MinRounds = 1
	MaxRounds = 99
	MinWork   = 5
	MaxWork   = 3600
	MinRest   = 0
	MaxRest   = 3600
)

// TimerConfig holds the interval parameters. Work and Rest are in seconds.
type TimerConfig struct {
	Preset Preset `json:"preset" toml:"preset" yaml:"preset"`
	Rounds int    `json:"rounds" toml:"rounds" yaml:"rounds"`
	Work   int    `json:"work" toml:"work" yaml:"work"`
	Rest   int    `json:"rest" toml:"rest" yaml:"rest"`
}

func DefaultTimerConfig() TimerConfig {
	return PresetConfig(PresetTabata)
}

// PresetConfig returns the config for a named preset. PresetCustom yields the
// default tabata numbers marked as custom.
func PresetConfig(p Preset) TimerConfig {
	rounds, work, rest, ok := p.Triple()
	if !ok {
		rounds, work, rest, _ = PresetTabata.Triple()
	}
	return TimerConfig{Preset: p, Rounds: rounds, Work: work, Rest: rest}
}

// CustomConfig builds a clamped custom config.
func CustomConfig(rounds, work, rest int) TimerConfig {
	return TimerConfig{Preset: PresetCustom, Rounds: rounds, Work: work, Rest: rest}.Normalize()
}

// Normalize clamps the numeric fields and enforces the preset invariant: a
// named preset always carries its fixed triple.
func (c TimerConfig) Normalize() TimerConfig {
	p, ok := ParsePreset(string(c.Preset))
	if !ok {
		p = PresetCustom
	}
	if rounds, work, rest, named := p.Triple(); named {
		return TimerConfig{Preset: p, Rounds: rounds, Work: work, Rest: rest}
	}
	return TimerConfig{
		Preset: PresetCustom,
		Rounds: utils.Clamp(c.Rounds, MinRounds, MaxRounds),
		Work:   utils.Clamp(c.Work, MinWork, MaxWork),
		Rest:   utils.Clamp(c.Rest, MinRest, MaxRest),
	}
}

// WithRounds is a manual edit, so the result is always custom.
func (c TimerConfig) WithRounds(n int) TimerConfig {
	c.Preset, c.Rounds = PresetCustom, n
	return c.Normalize()
}

func (c TimerConfig) WithWork(seconds int) TimerConfig {
	c.Preset, c.Work = PresetCustom, seconds
	return c.Normalize()
}

func (c TimerConfig) WithRest(seconds int) TimerConfig {
	c.Preset, c.Rest = PresetCustom, seconds
	return c.Normalize()
}

func (c TimerConfig) WorkDuration() time.Duration {
	return time.Duration(c.Work) * time.Second
}

func (c TimerConfig) RestDuration() time.Duration {
	return time.Duration(c.Rest) * time.Second
}

func (c TimerConfig) PhaseDuration(p Phase) time.Duration {
	if p == PhaseRest {
		return c.RestDuration()
	}
	return c.WorkDuration()
}

func (c TimerConfig) String() string {
	return fmt.Sprintf("%s %d×%ds/%ds", c.Preset.Label(), c.Rounds, c.Work, c.Rest)
}

type FeedbackSettings struct {
	Vibration bool `json:"vibration" toml:"vibration" yaml:"vibration"`
	Sound     bool `json:"sound" toml:"sound" yaml:"sound"`
	KeepAwake bool `json:"wake" toml:"wake" yaml:"wake"`
}

func DefaultFeedbackSettings() FeedbackSettings {
	return FeedbackSettings{Vibration: true, Sound: true, KeepAwake: false}
}

// Lap is one recorded split. Total is cumulative, Split is the part
// attributed to this lap alone.
type Lap struct {
	Total time.Duration
	Split time.Duration
}
