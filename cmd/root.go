package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chrono",
	Short: "Workout stopwatch and interval timer for the terminal",
	Long: `chrono is a workout chronometer: a stopwatch with laps and an interval
timer (work/rest/rounds) with Tabata, HIIT and Boxing presets.

Run "chrono start" for the interactive timer. The other commands read and edit
the saved timer state and browse the history of completed workouts.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
