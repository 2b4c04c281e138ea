// Package config loads shellscribe settings from flags, environment and a TOML file
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/lixenwraith/shellscribe/terminal"
)

// AppName names the config directory, env prefix and default log file
const AppName = "shellscribe"

// Config is the complete shellscribe configuration
type Config struct {
	Terminal TerminalConfig `mapstructure:"terminal"`
	Editor   EditorConfig   `mapstructure:"editor"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// TerminalConfig controls the raw-mode session
type TerminalConfig struct {
	// ReadTimeout bounds a single idle read (100ms to 25.5s, tenth-second resolution)
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
}

// EditorConfig controls the interaction loop
type EditorConfig struct {
	// QuitKey is a key name such as "Ctrl-Q", "Esc" or "^X"
	QuitKey string `mapstructure:"quit_key"`
	// Placeholder is drawn at the start of every row
	Placeholder string `mapstructure:"placeholder"`
}

// LoggingConfig controls the debug log file
type LoggingConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// File is the log path; the terminal itself is never a log target
	File string `mapstructure:"file"`
	// MaxSizeMB rotates the file to <file>.1 on open once exceeded (0 disables)
	MaxSizeMB int `mapstructure:"max_size_mb"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Terminal: TerminalConfig{
			ReadTimeout: terminal.DefaultReadTimeout,
		},
		Editor: EditorConfig{
			QuitKey:     "Ctrl-Q",
			Placeholder: "~",
		},
		Logging: LoggingConfig{
			Enabled:   false,
			Level:     "info",
			File:      DefaultLogFile(),
			MaxSizeMB: 10,
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("terminal.read_timeout", d.Terminal.ReadTimeout)

	v.SetDefault("editor.quit_key", d.Editor.QuitKey)
	v.SetDefault("editor.placeholder", d.Editor.Placeholder)

	v.SetDefault("logging.enabled", d.Logging.Enabled)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
}

// Setup prepares v: defaults, environment binding and the config file
// An explicit cfgFile must exist; when searching the standard locations a missing
// file just means defaults
func Setup(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	// SHELLSCRIBE_EDITOR_QUIT_KEY for editor.quit_key
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath("$HOME/.config/" + AppName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load decodes v into a Config and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// QuitByte resolves Editor.QuitKey
func (c *Config) QuitByte() (byte, error) {
	return ParseKey(c.Editor.QuitKey)
}

// ParseKey resolves a key name to the byte raw mode delivers for it
func ParseKey(name string) (byte, error) {
	if name == "" {
		return 0, errors.New("empty key name")
	}
	b, ok := terminal.KeyByName(name)
	if !ok {
		return 0, fmt.Errorf("unknown key %q", name)
	}
	return b, nil
}

// fileView is the on-disk shape; durations are written the way they are read
type fileView struct {
	Terminal struct {
		ReadTimeout string `toml:"read_timeout"`
	} `toml:"terminal"`
	Editor struct {
		QuitKey     string `toml:"quit_key"`
		Placeholder string `toml:"placeholder"`
	} `toml:"editor"`
	Logging struct {
		Enabled   bool   `toml:"enabled"`
		Level     string `toml:"level"`
		File      string `toml:"file"`
		MaxSizeMB int    `toml:"max_size_mb"`
	} `toml:"logging"`
}

// TOML renders the configuration as a config.toml document
func (c *Config) TOML() ([]byte, error) {
	var f fileView
	f.Terminal.ReadTimeout = c.Terminal.ReadTimeout.String()
	f.Editor.QuitKey = c.Editor.QuitKey
	f.Editor.Placeholder = c.Editor.Placeholder
	f.Logging.Enabled = c.Logging.Enabled
	f.Logging.Level = c.Logging.Level
	f.Logging.File = c.Logging.File
	f.Logging.MaxSizeMB = c.Logging.MaxSizeMB

	out, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return out, nil
}

// ConfigDir returns the user's shellscribe config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigFile returns the default config file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultLogFile returns shellscribe.log under the user cache directory
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return AppName + ".log"
	}
	return filepath.Join(dir, AppName, AppName+".log")
}
