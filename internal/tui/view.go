package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/misterclayt0n/chrono/internal/chrono"
	"github.com/misterclayt0n/chrono/internal/models"
	"github.com/misterclayt0n/chrono/internal/utils"
)

const maxVisibleLaps = 10

var (
	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("220")).
			Padding(0, 1)
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)
	clockStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	centiStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	workStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	restStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	badgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	keyStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	bestLapStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	toastStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")).Padding(0, 1)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	panelStyle   = lipgloss.NewStyle().Padding(1, 2)
)

func (m Model) View() string {
	if m.settings != nil {
		return m.place(renderSettings(m.settings))
	}

	s := m.snap
	var b strings.Builder

	b.WriteString(renderTabs(s.Mode))
	b.WriteString("\n\n")

	mmss, cs := utils.SplitClock(s.Display())
	b.WriteString(clockStyle.Render(mmss) + centiStyle.Render("."+cs))
	b.WriteString("\n")
	if s.Mode == models.ModeInterval {
		b.WriteString(renderPhase(s))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(strings.Join(badges(s), " "))
	b.WriteString("\n\n")
	b.WriteString(renderHelp(s))
	b.WriteString("\n")

	if laps := renderLaps(s); laps != "" {
		b.WriteString("\n")
		b.WriteString(laps)
	}

	if m.toast != "" {
		b.WriteString("\n")
		b.WriteString(toastStyle.Render(m.toast))
		b.WriteString("\n")
	}

	return m.place(b.String())
}

func (m Model) place(body string) string {
	out := panelStyle.Render(body)
	if m.width > 0 {
		out = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, out)
	}
	return out
}

func renderTabs(active models.Mode) string {
	var tabs []string
	for i, mode := range []models.Mode{models.ModeStopwatch, models.ModeInterval} {
		label := fmt.Sprintf("%d %s", i+1, mode.Label())
		if mode == active {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderPhase(s chrono.Snapshot) string {
	if s.Completed {
		return restStyle.Render("Done") + dimStyle.Render(" · "+s.Config.String())
	}
	style := workStyle
	if s.Phase == models.PhaseRest {
		style = restStyle
	}
	return style.Render(strings.ToUpper(s.Phase.Label())) +
		dimStyle.Render(fmt.Sprintf(" · Round %d/%d", s.Round, s.Rounds))
}

func badges(s chrono.Snapshot) []string {
	if s.Mode == models.ModeInterval {
		return []string{
			badgeStyle.Render(fmt.Sprintf("Round %d/%d", s.Round, s.Rounds)),
			badgeStyle.Render(s.Phase.Label() + " " + utils.FormatClock(s.Remaining)),
			badgeStyle.Render("Total " + utils.FormatClock(s.IntervalTotal)),
		}
	}
	return []string{
		badgeStyle.Render("Total " + utils.FormatClock(s.Elapsed)),
		badgeStyle.Render("Lap " + utils.FormatClock(s.CurrentLap)),
	}
}

func renderHelp(s chrono.Snapshot) string {
	items := []struct{ key, label string }{
		{"space", s.StartLabel()},
		{"l", s.LapLabel()},
		{"r", "Reset"},
		{"tab", "Mode"},
		{"s", "Settings"},
		{"q", "Quit"},
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, keyStyle.Render(it.key)+" "+helpStyle.Render(it.label))
	}
	return strings.Join(parts, "  ")
}

func renderLaps(s chrono.Snapshot) string {
	if len(s.Laps) == 0 {
		return ""
	}
	best := s.BestLap()

	var b strings.Builder
	b.WriteString(dimStyle.Render("Laps"))
	b.WriteString("\n")
	for i, lap := range s.Laps {
		if i == maxVisibleLaps {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(s.Laps)-maxVisibleLaps)))
			b.WriteString("\n")
			break
		}
		line := fmt.Sprintf("#%-3d %s  %s", len(s.Laps)-i, utils.FormatClock(lap.Split), dimStyle.Render(utils.FormatClock(lap.Total)))
		if i == best {
			line = bestLapStyle.Render(line + " ★")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func renderSettings(f *settingsForm) string {
	rows := []struct {
		f     field
		label string
		value string
	}{
		{fieldPreset, "Preset", "‹ " + f.preset.Label() + " ›"},
		{fieldRounds, "Rounds", f.rounds},
		{fieldWork, "Work (s)", f.work},
		{fieldRest, "Rest (s)", f.rest},
		{fieldVibration, "Vibration", onOff(f.fb.Vibration)},
		{fieldSound, "Sound", onOff(f.fb.Sound)},
		{fieldWake, "Keep awake", onOff(f.fb.KeepAwake)},
	}

	var b strings.Builder
	b.WriteString(clockStyle.Render("Settings"))
	b.WriteString("\n\n")
	for _, r := range rows {
		cursor := "  "
		label := fmt.Sprintf("%-11s", r.label)
		if r.f == f.focus {
			cursor = focusStyle.Render("> ")
			label = focusStyle.Render(label)
		}
		b.WriteString(cursor + label + " " + r.value + "\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move  ←/→ preset  space toggle  enter save  esc cancel"))
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
