// @focus: #terminal { ansi }
package terminal

// Escape sequences written to the output stream
const (
	SeqClearScreen = "\x1b[2J" // erase entire display
	SeqCursorHome  = "\x1b[H"  // cursor to row 1, column 1

	// SeqCursorFarCorner moves the cursor as far right, then as far down, as the
	// terminal allows; both moves stop at the viewport edge
	SeqCursorFarCorner = "\x1b[999C\x1b[999B"

	// SeqClearHome clears the display and homes the cursor
	SeqClearHome = SeqClearScreen + SeqCursorHome
)

var (
	csiShowCursor = []byte("\x1b[?25h")
	csiSGR0       = []byte("\x1b[0m")
	csiClearHome  = []byte(SeqClearHome)
)
