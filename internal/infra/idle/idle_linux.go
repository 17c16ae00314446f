//go:build linux

package idle

import (
	"os"
	"time"
)

// osIdleDuration reports how long since the last user input on Linux.
// Uses the framebuffer modification time as a heuristic and assumes
// active when it is unavailable. Proper X11/Wayland idle queries need
// libXss or logind over D-Bus; until then the estimators lean on step
// counts and manual logging.
func osIdleDuration() time.Duration {
	info, err := os.Stat("/sys/class/graphics/fb0")
	if err != nil {
		return 0
	}
	return time.Since(info.ModTime())
}

// hasDisplay reports whether a graphical session exists. Headless
// boxes produce no input signal worth feeding the estimators.
func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// isScreenLocked is a stub on Linux. Lock detection needs
// org.freedesktop.login1 over D-Bus.
func isScreenLocked() bool {
	return false
}
