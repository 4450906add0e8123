package cmd

import (
	"testing"

	"github.com/misterclayt0n/chrono/internal/models"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSettings(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("settings", pflag.ContinueOnError)
	addSettingsFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestApplySettingsPreset(t *testing.T) {
	fs := parseSettings(t, "--preset", "Boxing")

	cfg, fb, err := applySettingsFlags(fs, models.DefaultTimerConfig(), models.DefaultFeedbackSettings())
	require.NoError(t, err)
	assert.Equal(t, models.PresetConfig(models.PresetBoxing), cfg)
	assert.Equal(t, models.DefaultFeedbackSettings(), fb)
}

func TestApplySettingsNumbersCustomizePreset(t *testing.T) {
	fs := parseSettings(t, "--preset", "hiit", "--rounds", "4")

	cfg, _, err := applySettingsFlags(fs, models.DefaultTimerConfig(), models.DefaultFeedbackSettings())
	require.NoError(t, err)
	assert.Equal(t, models.CustomConfig(4, 40, 20), cfg)
}

func TestApplySettingsClamps(t *testing.T) {
	fs := parseSettings(t, "--work", "1", "--rest", "99999")

	cfg, _, err := applySettingsFlags(fs, models.DefaultTimerConfig(), models.DefaultFeedbackSettings())
	require.NoError(t, err)
	assert.Equal(t, models.CustomConfig(8, 5, 3600), cfg)
}

func TestApplySettingsFeedback(t *testing.T) {
	fs := parseSettings(t, "--sound=false", "--wake")

	cfg, fb, err := applySettingsFlags(fs, models.DefaultTimerConfig(), models.DefaultFeedbackSettings())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTimerConfig(), cfg)
	assert.Equal(t, models.FeedbackSettings{Vibration: true, Sound: false, KeepAwake: true}, fb)
}

func TestApplySettingsUnknownPreset(t *testing.T) {
	fs := parseSettings(t, "--preset", "emom")

	_, _, err := applySettingsFlags(fs, models.DefaultTimerConfig(), models.DefaultFeedbackSettings())
	assert.Error(t, err)
}
