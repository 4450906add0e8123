package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/chrono/internal/chrono"
	"github.com/misterclayt0n/chrono/internal/models"
	"github.com/misterclayt0n/chrono/internal/utils"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the saved timer state and workout totals: count, time trained, week streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctrl := a.controller(nil)
		defer ctrl.Close()
		snap := ctrl.Snapshot(chrono.SystemClock.Now())

		printBoxedHeader("STATUS")
		printMetric("Mode", snap.Mode.Label())
		printMetric("Interval", snap.Config.String())
		printMetric("Laps", len(snap.Laps))
		if len(snap.Laps) > 0 {
			printMetric("Last total", utils.FormatClock(snap.Laps[0].Total))
		}
		printMetric("Feedback", fmt.Sprintf("vibration %s, sound %s, keep awake %s",
			onOff(snap.Feedback.Vibration), onOff(snap.Feedback.Sound), onOff(snap.Feedback.KeepAwake)))
		fmt.Println()

		st, err := a.history()
		if errors.Is(err, errNoHistory) {
			fmt.Println(color.New(color.FgHiBlack).Sprint("History disabled: " + err.Error()))
			return nil
		}

		workouts, err := st.GetAllWorkouts()
		if err != nil {
			return fmt.Errorf("failed to retrieve workouts: %w", err)
		}

		var timed, wall time.Duration
		perPreset := make(map[models.Preset]int)
		now := time.Now()
		currentYear, currentWeek := now.ISOWeek()
		thisWeek := 0
		for _, w := range workouts {
			timed += w.Total
			wall += w.Duration()
			perPreset[w.Config.Preset]++
			if y, wk := w.StartedAt.In(time.Local).ISOWeek(); y == currentYear && wk == currentWeek {
				thisWeek++
			}
		}

		printMetric("Total workouts", len(workouts))
		printMetric("Time under the clock", timed.Round(time.Second))
		printMetric("Time in workouts", wall.Round(time.Minute))
		printMetric("This week", thisWeek)
		printMetric("Week streak", fmt.Sprintf("%d weeks", computeWeekStreak(workouts, now)))
		fmt.Println()

		if len(perPreset) > 0 {
			fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Workouts per preset:"))
			for _, p := range models.Presets {
				if n := perPreset[p]; n > 0 {
					fmt.Printf("  • %s: %d\n", color.New(color.FgMagenta, color.Bold).Sprint(p.Label()), n)
				}
			}
			fmt.Println()
		}
		return nil
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + padCenter(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func padCenter(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-n-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

// computeWeekStreak counts consecutive ISO weeks, ending with the week of now,
// that have at least one workout.
func computeWeekStreak(workouts []models.Workout, now time.Time) int {
	weekSet := make(map[string]bool)
	for _, w := range workouts {
		year, week := w.StartedAt.In(now.Location()).ISOWeek()
		weekSet[fmt.Sprintf("%d-%02d", year, week)] = true
	}

	streak := 0
	year, week := now.ISOWeek()
	for weekSet[fmt.Sprintf("%d-%02d", year, week)] {
		streak++
		now = now.AddDate(0, 0, -7)
		year, week = now.ISOWeek()
	}
	return streak
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
