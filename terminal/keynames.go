package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// nameToKey maps lower-cased key names to the byte raw mode delivers for them
// keyToName is the display name per byte; plain names (Enter, Tab, Esc) win over Ctrl- ones
var (
	nameToKey map[string]byte
	keyToName map[byte]string
)

func init() {
	nameToKey = make(map[string]byte, 48)
	keyToName = make(map[byte]string, 40)

	for k, name := range tcell.KeyNames {
		b, ok := keyByte(k)
		if !ok {
			continue
		}
		nameToKey[strings.ToLower(name)] = b
		if prev, seen := keyToName[b]; !seen || (strings.HasPrefix(prev, "Ctrl-") && !strings.HasPrefix(name, "Ctrl-")) {
			keyToName[b] = name
		}
	}

	// tcell names both Ctrl-[ and Ctrl-] "Ctrl-["
	nameToKey["ctrl-["] = 0x1b
	nameToKey["ctrl-]"] = 0x1d
	keyToName[0x1d] = "Ctrl-]"

	// Aliases
	nameToKey["escape"] = 0x1b
	nameToKey["ctrl-@"] = 0x00
}

// keyByte returns the byte a tcell key arrives as in raw mode
// tcell numbers its Ctrl keys from 0x40 (Ctrl-Space) so they fold onto the C0 range
func keyByte(k tcell.Key) (byte, bool) {
	switch {
	case k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlUnderscore:
		return byte(k) & 0x1f, true
	case k >= 0 && k <= 0x7f:
		return byte(k), true
	default:
		return 0, false
	}
}

// KeyByName resolves a key name to the byte raw mode delivers for it
// Accepts tcell names ("Ctrl-Q", "Esc", "Enter"), the ^Q caret form, or a single ASCII character
func KeyByName(name string) (byte, bool) {
	if len(name) == 1 && name[0] < 0x80 {
		return name[0], true
	}
	lower := strings.ToLower(strings.TrimSpace(name))
	if len(lower) == 2 && lower[0] == '^' {
		c := lower[1]
		if c >= 'a' && c <= 'z' {
			return c & 0x1f, true
		}
	}
	lower = strings.ReplaceAll(lower, "+", "-")
	b, ok := nameToKey[lower]
	return b, ok
}

// KeyName returns a readable name for a raw input byte
func KeyName(b byte) string {
	if name, ok := keyToName[b]; ok {
		return name
	}
	if b >= 0x20 && b < 0x7f {
		return string(rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}

// CtrlKey returns the control byte for a letter, as Ctrl+letter produces in raw mode
func CtrlKey(c byte) byte {
	return c & 0x1f
}
