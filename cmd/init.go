package cmd

import (
	"fmt"

	"github.com/misterclayt0n/chrono/internal/config"
	"github.com/misterclayt0n/chrono/internal/storage"
	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and create the history tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("Failed to locate config: %w", err)
		}

		created, err := config.WriteDefault(path)
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("✅ Config written to %s\n", path)
		} else {
			fmt.Printf("Config already exists at %s\n", path)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}
		if !cfg.HistoryEnabled() {
			fmt.Println("No database configured; workout history is off.")
			return nil
		}

		st, err := storage.Open(cfg.DB.ConnectionString, cfg.DB.AuthToken)
		if err != nil {
			return fmt.Errorf("Failed to initialize database: %w", err)
		}
		defer st.Close()
		fmt.Println("✅ Database initialized successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
