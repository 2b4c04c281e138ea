package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lixenwraith/shellscribe/terminal"
)

// ValidationError is a single invalid setting
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting found
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "\n  %d. %s", i+1, err.Error())
	}
	return sb.String()
}

// MinReadTimeout is one VTIME tick
const MinReadTimeout = terminal.DefaultReadTimeout

// ValidLogLevels lists the accepted logging.level values
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks every field and returns ValidationErrors, or nil
func (c *Config) Validate() error {
	var errs ValidationErrors

	if d := c.Terminal.ReadTimeout; d < MinReadTimeout || d > terminal.MaxReadTimeout {
		errs = append(errs, ValidationError{
			Field:   "terminal.read_timeout",
			Value:   d,
			Message: fmt.Sprintf("must be between %v and %v", MinReadTimeout, terminal.MaxReadTimeout),
		})
	}

	if q, err := ParseKey(c.Editor.QuitKey); err != nil {
		errs = append(errs, ValidationError{
			Field:   "editor.quit_key",
			Value:   c.Editor.QuitKey,
			Message: err.Error(),
		})
	} else if q == 0 {
		// Terminals send NUL for Ctrl-Space and Ctrl-@ alike
		errs = append(errs, ValidationError{
			Field:   "editor.quit_key",
			Value:   c.Editor.QuitKey,
			Message: "NUL cannot be the quit key",
		})
	}

	if c.Editor.Placeholder == "" {
		errs = append(errs, ValidationError{
			Field:   "editor.placeholder",
			Value:   c.Editor.Placeholder,
			Message: "must not be empty",
		})
	} else if strings.ContainsFunc(c.Editor.Placeholder, isControl) {
		errs = append(errs, ValidationError{
			Field:   "editor.placeholder",
			Value:   fmt.Sprintf("%q", c.Editor.Placeholder),
			Message: "must not contain control characters",
		})
	}

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if c.Logging.Enabled && c.Logging.File == "" {
		errs = append(errs, ValidationError{
			Field:   "logging.file",
			Value:   c.Logging.File,
			Message: "required when logging is enabled",
		})
	}
	if c.Logging.MaxSizeMB < 0 {
		errs = append(errs, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must not be negative",
		})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
