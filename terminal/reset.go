package terminal

import (
	"io"
	"os"
)

// EmergencyReset attempts to leave the terminal usable when a Session cannot be released
// normally, e.g. from panic recovery. Best-effort; errors are ignored
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiShowCursor)
	w.Write(csiClearHome)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
