package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// isolate points config and cache lookups at a temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolate(t)
	v := viper.New()

	if err := Setup(v, ""); err != nil {
		t.Fatalf("Expected missing config file to be ignored, got %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Terminal.ReadTimeout != 100*time.Millisecond {
		t.Errorf("Expected 100ms read timeout, got %v", cfg.Terminal.ReadTimeout)
	}
	if cfg.Editor.QuitKey != "Ctrl-Q" {
		t.Errorf("Expected Ctrl-Q, got %q", cfg.Editor.QuitKey)
	}
	if cfg.Editor.Placeholder != "~" {
		t.Errorf("Expected ~ placeholder, got %q", cfg.Editor.Placeholder)
	}
	if cfg.Logging.Enabled {
		t.Error("Expected logging disabled by default")
	}
	if v.ConfigFileUsed() != "" {
		t.Errorf("Expected no config file, got %q", v.ConfigFileUsed())
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	dir := isolate(t)
	confDir := filepath.Join(dir, AppName)
	if err := os.MkdirAll(confDir, 0755); err != nil {
		t.Fatal(err)
	}
	data := `
[terminal]
read_timeout = "500ms"

[editor]
quit_key = "Esc"
placeholder = "."

[logging]
enabled = true
level = "debug"
`
	if err := os.WriteFile(filepath.Join(confDir, "config.toml"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	if err := Setup(v, ""); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Terminal.ReadTimeout != 500*time.Millisecond {
		t.Errorf("Expected 500ms, got %v", cfg.Terminal.ReadTimeout)
	}
	if q, _ := cfg.QuitByte(); q != 0x1b {
		t.Errorf("Expected Esc quit byte, got 0x%02x", q)
	}
	if cfg.Editor.Placeholder != "." {
		t.Errorf("Expected . placeholder, got %q", cfg.Editor.Placeholder)
	}
	if !cfg.Logging.Enabled || cfg.Logging.Level != "debug" {
		t.Errorf("Expected debug logging enabled, got %+v", cfg.Logging)
	}
	if cfg.Logging.MaxSizeMB != 10 {
		t.Errorf("Expected default max size to survive partial file, got %d", cfg.Logging.MaxSizeMB)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("[editor]\nquit_key = \"Esc\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SHELLSCRIBE_EDITOR_QUIT_KEY", "^X")
	t.Setenv("SHELLSCRIBE_TERMINAL_READ_TIMEOUT", "2s")

	v := viper.New()
	if err := Setup(v, path); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Editor.QuitKey != "^X" {
		t.Errorf("Expected env quit key, got %q", cfg.Editor.QuitKey)
	}
	if cfg.Terminal.ReadTimeout != 2*time.Second {
		t.Errorf("Expected 2s from env, got %v", cfg.Terminal.ReadTimeout)
	}
}

func TestSetup_ExplicitFileMissing(t *testing.T) {
	dir := isolate(t)

	err := Setup(viper.New(), filepath.Join(dir, "nope.toml"))
	if err == nil {
		t.Fatal("Expected error for missing explicit config file")
	}
	if !strings.Contains(err.Error(), "reading config") {
		t.Errorf("Expected reading config error, got %v", err)
	}
}

func TestSetup_MalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[editor\nquit_key ="), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Setup(viper.New(), path); err == nil {
		t.Error("Expected parse error for malformed config")
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Terminal.ReadTimeout = 30 * time.Second
	cfg.Editor.QuitKey = "Hyper-Q"
	cfg.Editor.Placeholder = "\x1b[31m~"
	cfg.Logging.Level = "loud"
	cfg.Logging.MaxSizeMB = -1

	err := cfg.Validate()
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected ValidationErrors, got %v", err)
	}
	if len(verrs) != 5 {
		t.Errorf("Expected 5 errors, got %d: %v", len(verrs), err)
	}

	fields := make(map[string]bool)
	for _, e := range verrs {
		fields[e.Field] = true
	}
	for _, f := range []string{"terminal.read_timeout", "editor.quit_key", "editor.placeholder", "logging.level", "logging.max_size_mb"} {
		if !fields[f] {
			t.Errorf("Expected error for %s", f)
		}
	}
	if !strings.HasPrefix(err.Error(), "5 validation errors:") {
		t.Errorf("Expected summary header, got %q", err.Error())
	}
}

func TestValidate_ReadTimeoutBounds(t *testing.T) {
	tests := []struct {
		d     time.Duration
		valid bool
	}{
		{50 * time.Millisecond, false},
		{100 * time.Millisecond, true},
		{time.Second, true},
		{25500 * time.Millisecond, true},
		{25600 * time.Millisecond, false},
	}
	for _, tt := range tests {
		cfg := Default()
		cfg.Terminal.ReadTimeout = tt.d
		err := cfg.Validate()
		if (err == nil) != tt.valid {
			t.Errorf("%v: expected valid=%v, got %v", tt.d, tt.valid, err)
		}
	}
}

func TestValidate_RejectsNULQuitKey(t *testing.T) {
	for _, name := range []string{"Ctrl-Space", "Ctrl-@"} {
		cfg := Default()
		cfg.Editor.QuitKey = name

		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "editor.quit_key") {
			t.Errorf("%q: expected quit_key error, got %v", name, err)
		}
	}
}

func TestQuitByte_Default(t *testing.T) {
	q, err := Default().QuitByte()
	if err != nil {
		t.Fatalf("QuitByte failed: %v", err)
	}
	if q != 0x11 {
		t.Errorf("Expected default quit byte 0x11, got %#x", q)
	}
}

func TestValidate_LoggingFileRequiredWhenEnabled(t *testing.T) {
	cfg := Default()
	cfg.Logging.Enabled = true
	cfg.Logging.File = ""

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "logging.file") {
		t.Errorf("Expected logging.file error, got %v", err)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want byte
		ok   bool
	}{
		{"Ctrl-Q", 0x11, true},
		{"ctrl+q", 0x11, true},
		{"^Q", 0x11, true},
		{"Esc", 0x1b, true},
		{"Ctrl-A", 0x01, true},
		{"Ctrl-X", 0x18, true},
		{"q", 'q', true},
		{"", 0, false},
		{"NoSuchKey", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.name)
		if (err == nil) != tt.ok {
			t.Errorf("ParseKey(%q): expected ok=%v, got err %v", tt.name, tt.ok, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseKey(%q): expected 0x%02x, got 0x%02x", tt.name, tt.want, got)
		}
	}
}

func TestTOML_RoundTripsThroughViper(t *testing.T) {
	dir := isolate(t)
	cfg := Default()
	cfg.Terminal.ReadTimeout = 1500 * time.Millisecond
	cfg.Editor.QuitKey = "Ctrl-X"

	out, err := cfg.TOML()
	if err != nil {
		t.Fatalf("TOML failed: %v", err)
	}

	var doc map[string]map[string]any
	if err := toml.Unmarshal(out, &doc); err != nil {
		t.Fatalf("Rendered TOML does not parse: %v\n%s", err, out)
	}
	if doc["terminal"]["read_timeout"] != "1.5s" {
		t.Errorf("Expected read_timeout as a duration string, got %v", doc["terminal"]["read_timeout"])
	}

	path := filepath.Join(dir, "rendered.toml")
	if err := os.WriteFile(path, out, 0644); err != nil {
		t.Fatal(err)
	}
	v := viper.New()
	if err := Setup(v, path); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	loaded, err := Load(v)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Expected %+v, got %+v", *cfg, *loaded)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := ConfigDir(); got != filepath.Join("/tmp/xdg", AppName) {
		t.Errorf("Expected XDG config dir, got %q", got)
	}
	if got := ConfigFile(); got != filepath.Join("/tmp/xdg", AppName, "config.toml") {
		t.Errorf("Expected config.toml under XDG dir, got %q", got)
	}
}
