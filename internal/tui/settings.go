package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/misterclayt0n/chrono/internal/models"
)

type field int

const (
	fieldPreset field = iota
	fieldRounds
	fieldWork
	fieldRest
	fieldVibration
	fieldSound
	fieldWake
	fieldCount
)

const maxDigits = 4

// settingsForm is an editable draft of the interval and feedback settings.
// Nothing reaches the controller until the draft is applied.
type settingsForm struct {
	preset models.Preset
	rounds string
	work   string
	rest   string
	fb     models.FeedbackSettings
	focus  field
}

func newSettingsForm(cfg models.TimerConfig, fb models.FeedbackSettings) *settingsForm {
	f := &settingsForm{fb: fb}
	f.fill(cfg)
	return f
}

func (f *settingsForm) fill(cfg models.TimerConfig) {
	f.preset = cfg.Preset
	f.rounds = strconv.Itoa(cfg.Rounds)
	f.work = strconv.Itoa(cfg.Work)
	f.rest = strconv.Itoa(cfg.Rest)
}

type formResult int

const (
	formOpen formResult = iota
	formApply
	formCancel
)

func (f *settingsForm) update(msg tea.KeyMsg) formResult {
	switch msg.String() {
	case "esc":
		return formCancel
	case "enter":
		return formApply
	case "up", "shift+tab":
		f.focus = (f.focus + fieldCount - 1) % fieldCount
	case "down", "tab":
		f.focus = (f.focus + 1) % fieldCount
	case "left":
		if f.focus == fieldPreset {
			f.cyclePreset(-1)
		}
	case "right":
		if f.focus == fieldPreset {
			f.cyclePreset(1)
		}
	case " ":
		if f.isToggle() {
			f.toggle()
		} else if f.focus == fieldPreset {
			f.cyclePreset(1)
		}
	case "backspace":
		if s := f.numeric(); s != nil && len(*s) > 0 {
			*s = (*s)[:len(*s)-1]
			f.preset = models.PresetCustom
		}
	default:
		if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
			break
		}
		r := msg.Runes[0]
		if r < '0' || r > '9' {
			break
		}
		if s := f.numeric(); s != nil && len(*s) < maxDigits {
			*s += string(r)
			// Typing a number always means a custom workout.
			f.preset = models.PresetCustom
		}
	}
	return formOpen
}

func (f *settingsForm) cyclePreset(step int) {
	idx := 0
	for i, p := range models.Presets {
		if p == f.preset {
			idx = i
		}
	}
	n := len(models.Presets)
	next := models.Presets[(idx+step+n)%n]
	if next == models.PresetCustom {
		f.preset = next
		return
	}
	f.fill(models.PresetConfig(next))
}

func (f *settingsForm) numeric() *string {
	switch f.focus {
	case fieldRounds:
		return &f.rounds
	case fieldWork:
		return &f.work
	case fieldRest:
		return &f.rest
	}
	return nil
}

func (f *settingsForm) isToggle() bool {
	return f.focus == fieldVibration || f.focus == fieldSound || f.focus == fieldWake
}

func (f *settingsForm) toggle() {
	switch f.focus {
	case fieldVibration:
		f.fb.Vibration = !f.fb.Vibration
	case fieldSound:
		f.fb.Sound = !f.fb.Sound
	case fieldWake:
		f.fb.KeepAwake = !f.fb.KeepAwake
	}
}

// config turns the draft into a config. Empty fields take the default value;
// the controller clamps the rest.
func (f *settingsForm) config() models.TimerConfig {
	def := models.DefaultTimerConfig()
	return models.TimerConfig{
		Preset: f.preset,
		Rounds: atoiOr(f.rounds, def.Rounds),
		Work:   atoiOr(f.work, def.Work),
		Rest:   atoiOr(f.rest, def.Rest),
	}
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
