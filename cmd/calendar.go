package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/chrono/internal/models"
	"github.com/misterclayt0n/chrono/internal/utils"
	"github.com/spf13/cobra"
)

// details is a flag to enable verbose workout details.
var details bool

// calendarCmd prints the month grid. Days with workouts are colored by the
// preset of that day's first workout, with a legend below.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of workout days with a legend mapping colors to presets",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.Close()

		st, err := a.history()
		if err != nil {
			return err
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		nextMonth := firstOfMonth.AddDate(0, 1, 0)
		lastOfMonth := nextMonth.AddDate(0, 0, -1)

		workouts, err := st.GetWorkoutsBetween(firstOfMonth, nextMonth)
		if err != nil {
			return fmt.Errorf("failed to get workouts: %w", err)
		}

		workoutsByDay := make(map[int][]models.Workout)
		for _, w := range workouts {
			day := w.StartedAt.In(time.Local).Day()
			workoutsByDay[day] = append(workoutsByDay[day], w)
		}
		// Oldest first within a day.
		for _, list := range workoutsByDay {
			sort.Slice(list, func(i, j int) bool {
				return list[i].StartedAt.Before(list[j].StartedAt)
			})
		}

		// One fixed color per preset keeps the legend stable month to month.
		presetColors := map[models.Preset]func(a ...interface{}) string{
			models.PresetTabata: color.New(color.FgRed).SprintFunc(),
			models.PresetHiit:   color.New(color.FgYellow).SprintFunc(),
			models.PresetBoxing: color.New(color.FgBlue).SprintFunc(),
			models.PresetCustom: color.New(color.FgGreen).SprintFunc(),
		}
		used := make(map[models.Preset]bool)

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Determine weekday of first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		fmt.Print(strings.Repeat("   ", weekday))

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if list, ok := workoutsByDay[day]; ok {
				preset := list[0].Config.Preset
				colFunc, known := presetColors[preset]
				if !known {
					preset = models.PresetCustom
					colFunc = presetColors[preset]
				}
				used[preset] = true
				dayStr = colFunc(dayStr)
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		if len(used) > 0 {
			fmt.Println("Legend:")
			for _, p := range models.Presets {
				if used[p] {
					fmt.Printf("  %s: %s\n", presetColors[p]("██"), p.Label())
				}
			}
		}

		if details {
			fmt.Println("\nWorkout Details:")
			var days []int
			for d := range workoutsByDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				for _, w := range workoutsByDay[day] {
					fmt.Printf("  Workout %s (%s) at %s - %s, %s timed\n",
						shortID(w.ID),
						w.Config.String(),
						w.StartedAt.In(time.Local).Format("15:04"),
						w.FinishedAt.In(time.Local).Format("15:04"),
						utils.FormatClock(w.Total),
					)
				}
			}
		}

		return nil
	},
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print additional workout details")
}
