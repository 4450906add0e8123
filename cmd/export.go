package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/misterclayt0n/chrono/internal/storage"
	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export the recorded laps (stdout when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.Close()

		laps := a.repo.Load().Laps

		var out io.Writer = cmd.OutOrStdout()
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("Failed to create %s: %w", args[0], err)
			}
			defer f.Close()
			out = f
		}

		if err := storage.ExportLaps(out, exportFormat, laps); err != nil {
			return fmt.Errorf("Failed to export laps: %w", err)
		}

		if len(args) == 1 {
			fmt.Printf("✅ %d laps exported to %s\n", len(laps), args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", storage.FormatText,
		"Output format: "+strings.Join(storage.ExportFormats, ", "))
}
