//go:build darwin

package idle

import (
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// osIdleDuration reports how long since the last user input on macOS.
// Queries HIDIdleTime (nanoseconds) through ioreg, no CGO required.
func osIdleDuration() time.Duration {
	out, err := exec.Command("ioreg", "-c", "IOHIDSystem", "-d", "4").Output()
	if err != nil {
		return 0
	}
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, "HIDIdleTime") {
			continue
		}
		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			continue
		}
		ns, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err == nil {
			return time.Duration(ns)
		}
	}
	return 0
}

// hasDisplay reports whether a graphical session exists. macOS always
// has one outside of headless CI.
func hasDisplay() bool {
	return true
}

// isScreenLocked checks the session dictionary via the Quartz Python
// bridge, which avoids a CGO dependency for one boolean.
func isScreenLocked() bool {
	out, err := exec.Command("python3", "-c",
		`import Quartz; d=Quartz.CGSessionCopyCurrentDictionary(); print(d.get("CGSSessionScreenIsLocked",0))`).Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "1"
}
