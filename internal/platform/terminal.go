package platform

import (
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
)

// StdinIsInteractive reports whether stdin is attached to a terminal,
// which gates the console paste prompt.
func StdinIsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StdoutIsInteractive reports whether stdout is attached to a terminal,
// which feeds the exit-strategy decision.
func StdoutIsInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// GUIAvailable reports whether a graphical session is plausibly present.
// Linux needs a display server; windowing is assumed available on
// Windows and macOS.
func GUIAvailable() bool {
	if os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	return runtime.GOOS == OSWindows || runtime.GOOS == OSDarwin
}
