package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the lap history and both timers",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctrl := a.controller(nil)
		defer ctrl.Close()

		laps := len(ctrl.State().Laps)
		if err := ctrl.Reset(); err != nil {
			return fmt.Errorf("Failed to reset timer: %w", err)
		}
		fmt.Printf("✅ Timer reset (%d laps cleared)\n", laps)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
