package platform

import (
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeepAwakeDisabled(t *testing.T) {
	k := NewKeepAwake("none")
	assert.False(t, k.Supported())
	assert.ErrorIs(t, k.Acquire(), ErrUnsupported)
	assert.NoError(t, k.Release())
	assert.False(t, k.Held())
}

func TestKeepAwakeMissingTool(t *testing.T) {
	k := NewKeepAwake("definitely-not-a-real-inhibitor --flag")
	assert.False(t, k.Supported())
	assert.ErrorIs(t, k.Acquire(), ErrUnsupported)
}

func TestKeepAwakeCustomTool(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a unix sleep")
	}
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}

	k := NewKeepAwake("sleep 60")
	require.True(t, k.Supported())

	require.NoError(t, k.Acquire())
	assert.True(t, k.Held())
	// Second acquire keeps the same process.
	require.NoError(t, k.Acquire())

	require.NoError(t, k.Release())
	assert.False(t, k.Held())
	assert.NoError(t, k.Release())
}
