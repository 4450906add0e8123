// Package platform holds OS-specific helpers.
package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// ErrUnsupported means no keep-awake tool is available on this machine.
var ErrUnsupported = errors.New("keep-awake unsupported")

// KeepAwake inhibits display sleep by running an inhibitor process for as
// long as the hold is active.
type KeepAwake struct {
	mu   sync.Mutex
	argv []string
	cmd  *exec.Cmd
}

// NewKeepAwake picks the inhibitor command. An empty tool uses the platform
// default, "none" disables keep-awake, anything else is run as given (split
// on whitespace).
func NewKeepAwake(tool string) *KeepAwake {
	tool = strings.TrimSpace(tool)
	var argv []string
	switch tool {
	case "none":
	case "":
		argv = defaultInhibitor()
	default:
		argv = strings.Fields(tool)
	}
	if len(argv) > 0 {
		if _, err := exec.LookPath(argv[0]); err != nil {
			argv = nil
		}
	}
	return &KeepAwake{argv: argv}
}

// Supported reports whether Acquire can work at all.
func (k *KeepAwake) Supported() bool {
	return len(k.argv) > 0
}

// Acquire starts the inhibitor. Acquiring twice is a no-op.
func (k *KeepAwake) Acquire() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.cmd != nil {
		return nil
	}
	if len(k.argv) == 0 {
		return ErrUnsupported
	}
	cmd := exec.Command(k.argv[0], k.argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", k.argv[0], err)
	}
	k.cmd = cmd
	return nil
}

// Release stops the inhibitor if it is running.
func (k *KeepAwake) Release() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.cmd == nil {
		return nil
	}
	cmd := k.cmd
	k.cmd = nil
	if err := cmd.Process.Kill(); err != nil {
		return fmt.Errorf("stop %s: %w", k.argv[0], err)
	}
	// The exit status of a killed process is always an error.
	_ = cmd.Wait()
	return nil
}

// Held reports whether an inhibitor is running.
func (k *KeepAwake) Held() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.cmd != nil
}
