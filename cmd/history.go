package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/chrono/internal/models"
	"github.com/misterclayt0n/chrono/internal/storage"
	"github.com/misterclayt0n/chrono/internal/utils"
	"github.com/spf13/cobra"
)

var (
	filterPreset string
	filterDay    string
)

// historyCmd shows completed interval workouts grouped by preset and day.
var historyCmd = &cobra.Command{
	Use:   "history [workout-id]",
	Short: "Display completed workouts, optionally filtered by preset and/or day, or one workout in detail",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.Close()

		st, err := a.history()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			w, err := st.GetWorkoutByID(args[0])
			if err != nil {
				if storage.IsNotFound(err) {
					return fmt.Errorf("no workout with id %s", args[0])
				}
				return fmt.Errorf("Failed to load workout: %w", err)
			}
			printWorkout(w)
			return nil
		}

		var workouts []models.Workout
		if filterDay != "" {
			// ISO dates are accepted too; the store itself takes DD/MM/YY.
			dateStr := filterDay
			if day, err := time.ParseInLocation("2006-01-02", filterDay, time.Local); err == nil {
				dateStr = day.Format("02/01/06")
			}
			workouts, err = st.GetWorkoutsByDate(dateStr)
			if err != nil {
				return fmt.Errorf("failed to retrieve workouts: %w", err)
			}
		} else {
			workouts, err = st.GetAllWorkouts()
			if err != nil {
				return fmt.Errorf("failed to retrieve workouts: %w", err)
			}
		}

		// Case insensitive filtering by preset.
		if filterPreset != "" {
			var filtered []models.Workout
			for _, w := range workouts {
				if strings.EqualFold(string(w.Config.Preset), filterPreset) {
					filtered = append(filtered, w)
				}
			}
			workouts = filtered
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found.")
			return nil
		}

		// Group by preset and then by day.
		grouped := make(map[string]map[string][]models.Workout)
		for _, w := range workouts {
			preset := w.Config.Preset.Label()
			if _, ok := grouped[preset]; !ok {
				grouped[preset] = make(map[string][]models.Workout)
			}
			day := w.StartedAt.In(time.Local).Format("2006-01-02")
			grouped[preset][day] = append(grouped[preset][day], w)
		}

		bold := color.New(color.Bold).SprintFunc()
		var presets []string
		for p := range grouped {
			presets = append(presets, p)
		}
		sort.Strings(presets)
		for _, preset := range presets {
			fmt.Printf("Preset: %s\n", bold(preset))
			var days []string
			for d := range grouped[preset] {
				days = append(days, d)
			}
			sort.Strings(days)
			for _, d := range days {
				fmt.Printf("  Date: %s\n", d)
				list := grouped[preset][d]
				sort.Slice(list, func(i, j int) bool {
					return list[i].StartedAt.Before(list[j].StartedAt)
				})
				for _, w := range list {
					fmt.Printf("    Workout %s | Start: %s | %s | Work: %s | Duration: %s\n",
						shortID(w.ID),
						w.StartedAt.In(time.Local).Format("15:04"),
						w.Config.String(),
						utils.FormatClock(w.Total),
						w.Duration().Round(time.Second),
					)
				}
			}
			fmt.Println()
		}

		return nil
	},
}

func printWorkout(w *models.Workout) {
	printBoxedHeader("WORKOUT " + shortID(w.ID))
	printMetric("Preset", w.Config.Preset.Label())
	printMetric("Config", w.Config.String())
	printMetric("Started", w.StartedAt.In(time.Local).Format("Mon, 02 Jan 2006 15:04"))
	printMetric("Duration", w.Duration().Round(time.Second))
	printMetric("Timed total", utils.FormatClock(w.Total))
	fmt.Println()

	for i, lap := range w.Laps {
		fmt.Printf("  #%-3d %s  %s\n", len(w.Laps)-i, utils.FormatClock(lap.Split), utils.FormatClock(lap.Total))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&filterPreset, "preset", "p", "", "Filter by preset (case insensitive)")
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (e.g. 2025-02-07 or 07/02/25)")
}
