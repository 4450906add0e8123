package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/chrono/internal/chrono"
	"github.com/misterclayt0n/chrono/internal/utils"
	"github.com/spf13/cobra"
)

var lapsCmd = &cobra.Command{
	Use:   "laps",
	Short: "List the recorded laps, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctrl := a.controller(nil)
		defer ctrl.Close()

		snap := ctrl.Snapshot(chrono.SystemClock.Now())
		if len(snap.Laps) == 0 {
			fmt.Println("No laps recorded.")
			return nil
		}

		printBoxedHeader("LAPS · " + snap.Mode.Label())
		best := snap.BestLap()
		bold := color.New(color.Bold).SprintFunc()
		gold := color.New(color.FgYellow, color.Bold).SprintFunc()
		dim := color.New(color.FgHiBlack).SprintFunc()
		for i, lap := range snap.Laps {
			line := fmt.Sprintf("  #%-3d %s  %s", len(snap.Laps)-i, bold(utils.FormatClock(lap.Split)), dim(utils.FormatClock(lap.Total)))
			if i == best {
				line += " " + gold("★ best")
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lapsCmd)
}
