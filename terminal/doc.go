// @focus: #sys { term }
// Package terminal owns the controlling terminal for the editor.
//
// Features:
//   - Raw mode entry with byte-at-a-time reads bounded by a VTIME idle timeout
//   - Exact restoration of the attribute set captured at acquisition
//   - Window size query with a cursor-positioning fallback
//   - Typed failures (query, configure, restore, i/o, geometry) for a uniform fatal path
//   - Emergency reset for panic recovery
//
// Attributes are manipulated through termios ioctls directly; the raw flag set is the
// classic kilo one, not the broader set golang.org/x/term.MakeRaw applies.
// Target environments: Linux and macOS.
package terminal
