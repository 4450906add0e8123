package cmd

import (
	"fmt"

	"github.com/misterclayt0n/chrono/internal/models"
	"github.com/misterclayt0n/chrono/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change interval and feedback settings",
	Example: `  chrono settings --preset boxing
  chrono settings --rounds 5 --work 45 --rest 15
  chrono settings --sound=false --wake`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctrl := a.controller(nil)
		defer ctrl.Close()

		state := ctrl.State()
		if cmd.Flags().NFlag() > 0 {
			cfg, fb, err := applySettingsFlags(cmd.Flags(), state.Config, state.Feedback)
			if err != nil {
				return err
			}
			ctrl.ApplyConfig(cfg, fb)
			state = ctrl.State()
			fmt.Println("✅ Settings saved")
		}

		printBoxedHeader("SETTINGS")
		printMetric("Preset", state.Config.Preset.Label())
		printMetric("Rounds", state.Config.Rounds)
		printMetric("Work", utils.FormatSeconds(state.Config.Work))
		printMetric("Rest", utils.FormatSeconds(state.Config.Rest))
		printMetric("Vibration", onOff(state.Feedback.Vibration))
		printMetric("Sound", onOff(state.Feedback.Sound))
		printMetric("Keep awake", onOff(state.Feedback.KeepAwake))
		return nil
	},
}

func addSettingsFlags(fs *pflag.FlagSet) {
	fs.StringP("preset", "p", "", "Preset: tabata, hiit, boxing or custom")
	fs.IntP("rounds", "r", 0, "Number of rounds (1-99)")
	fs.IntP("work", "w", 0, "Work phase in seconds (5-3600)")
	fs.Int("rest", 0, "Rest phase in seconds (0-3600)")
	fs.Bool("vibration", true, "Vibration pulses")
	fs.Bool("sound", true, "Tone on phase changes")
	fs.Bool("wake", false, "Keep the display awake while running")
}

// applySettingsFlags layers the changed flags over the current settings. A
// preset is applied first so explicit numbers can then customize it.
func applySettingsFlags(fs *pflag.FlagSet, cfg models.TimerConfig, fb models.FeedbackSettings) (models.TimerConfig, models.FeedbackSettings, error) {
	if fs.Changed("preset") {
		name, _ := fs.GetString("preset")
		preset, ok := models.ParsePreset(name)
		if !ok {
			return cfg, fb, fmt.Errorf("unknown preset %q (want tabata, hiit, boxing or custom)", name)
		}
		if preset == models.PresetCustom {
			cfg.Preset = models.PresetCustom
		} else {
			cfg = models.PresetConfig(preset)
		}
	}
	if fs.Changed("rounds") {
		n, _ := fs.GetInt("rounds")
		cfg = cfg.WithRounds(n)
	}
	if fs.Changed("work") {
		n, _ := fs.GetInt("work")
		cfg = cfg.WithWork(n)
	}
	if fs.Changed("rest") {
		n, _ := fs.GetInt("rest")
		cfg = cfg.WithRest(n)
	}

	if fs.Changed("vibration") {
		fb.Vibration, _ = fs.GetBool("vibration")
	}
	if fs.Changed("sound") {
		fb.Sound, _ = fs.GetBool("sound")
	}
	if fs.Changed("wake") {
		fb.KeepAwake, _ = fs.GetBool("wake")
	}
	return cfg.Normalize(), fb, nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	addSettingsFlags(settingsCmd.Flags())
}
