package cmd

import (
	"fmt"
	"os"

	"github.com/misterclayt0n/chrono/internal/models"
	"github.com/misterclayt0n/chrono/internal/tui"
	"github.com/spf13/cobra"
)

var startMode string

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the interactive timer",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctrl := a.controller(os.Stderr)
		defer ctrl.Close()

		if startMode != "" {
			mode, err := models.ParseMode(startMode)
			if err != nil {
				return err
			}
			if err := ctrl.SetMode(mode); err != nil {
				return fmt.Errorf("Failed to switch mode: %w", err)
			}
			// The TUI shows its own toasts; drop the one from this switch.
			a.fb.Drain()
		}

		model := tui.New(tui.Options{
			Controller: ctrl,
			Feedback:   a.fb,
			Tick:       a.cfg.TickInterval(),
			Logger:     a.logger,
		})
		a.logger.Info("timer opened", "mode", ctrl.State().Mode)
		if err := tui.Run(model); err != nil {
			return fmt.Errorf("Failed to run timer: %w", err)
		}
		return nil
	},
}

func init() {
	// Registers the command as a subcommand of rootCmd.
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVarP(&startMode, "mode", "m", "", "Open in stopwatch or interval mode")
}
