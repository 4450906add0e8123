package platform

import (
	"os"
	"strconv"
)

func defaultInhibitor() []string {
	// -w ties the assertion to our pid so a crash never leaves it behind.
	return []string{"caffeinate", "-d", "-i", "-w", strconv.Itoa(os.Getpid())}
}
