// Package editor runs the interactive loop on top of a terminal session:
// redraw the placeholder screen, read a key, dispatch it.
//
// Run is the process driver. It owns the session lifecycle and maps every outcome
// to an exit code: 0 for the quit key, 1 for any failure.
package editor
