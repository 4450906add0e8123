package platform

import "os/exec"

func defaultInhibitor() []string {
	if _, err := exec.LookPath("systemd-inhibit"); err != nil {
		return nil
	}
	return []string{
		"systemd-inhibit",
		"--what=idle:sleep",
		"--who=chrono",
		"--why=Workout in progress",
		"--mode=block",
		"sleep", "infinity",
	}
}
