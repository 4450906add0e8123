package cmd

import (
	"fmt"

	"github.com/misterclayt0n/chrono/internal/models"
	"github.com/spf13/cobra"
)

var modeCmd = &cobra.Command{
	Use:       "mode [stopwatch|interval]",
	Short:     "Show or switch the active timer mode",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(models.ModeStopwatch), string(models.ModeInterval)},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctrl := a.controller(nil)
		defer ctrl.Close()

		if len(args) == 0 {
			printMetric("Mode", ctrl.State().Mode.Label())
			return nil
		}

		mode, err := models.ParseMode(args[0])
		if err != nil {
			return err
		}
		if err := ctrl.SetMode(mode); err != nil {
			return fmt.Errorf("Failed to switch mode: %w", err)
		}
		fmt.Printf("✅ Mode set to %s\n", mode.Label())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modeCmd)
}
