package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/shellscribe/config"
	"github.com/lixenwraith/shellscribe/editor"
	"github.com/lixenwraith/shellscribe/logging"
	"github.com/lixenwraith/shellscribe/terminal"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// app carries everything a command needs so tests can swap the terminal and streams
type app struct {
	v       *viper.Viper
	backend terminal.Backend
	stdout  io.Writer
	stderr  io.Writer

	cfgFile string
	debug   bool
	code    int
}

// run executes the command line and returns the process exit code
func (a *app) run(ctx context.Context, args []string) int {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.stderr, "shellscribe: %v\n", err)
		return editor.ExitFatal
	}
	return a.code
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shellscribe",
		Short: "Minimal raw-mode terminal editor",
		Long: `shellscribe puts the terminal in raw mode, draws a column of placeholder
rows and waits for keys. The quit key (Ctrl-Q by default) restores the
terminal and exits.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
		RunE:              a.runEditor,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is "+config.ConfigFile()+")")

	f := root.Flags()
	f.BoolVarP(&a.debug, "debug", "d", false, "enable debug logging to the log file")
	f.String("log-file", "", "log file path")
	f.String("quit-key", "", "key that exits the editor, e.g. Ctrl-Q, Esc, ^X")
	f.Duration("read-timeout", 0, "idle bound of a single terminal read (100ms to 25.5s)")

	_ = a.v.BindPFlag("logging.file", f.Lookup("log-file"))
	_ = a.v.BindPFlag("editor.quit_key", f.Lookup("quit-key"))
	_ = a.v.BindPFlag("terminal.read_timeout", f.Lookup("read-timeout"))

	root.AddCommand(a.newConfigCmd(), a.newVersionCmd())
	return root
}

func (a *app) loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.Setup(a.v, a.cfgFile); err != nil {
		return err
	}
	if a.debug {
		a.v.Set("logging.enabled", true)
		a.v.Set("logging.level", "debug")
	}
	return nil
}

func (a *app) runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts, err := editorOptions(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info().
		Str("version", version).
		Str("config", a.v.ConfigFileUsed()).
		Msg("starting")
	a.code = editor.Run(cmd.Context(), a.backend, a.stderr, opts)
	logger.Info().Int("exit_code", a.code).Msg("stopped")
	return nil
}

// editorOptions maps a validated Config onto the editor's options
func editorOptions(cfg *config.Config, logger zerolog.Logger) (editor.Options, error) {
	quit, err := cfg.QuitByte()
	if err != nil {
		return editor.Options{}, err
	}
	return editor.Options{
		QuitKey:     quit,
		Placeholder: cfg.Editor.Placeholder,
		ReadTimeout: cfg.Terminal.ReadTimeout,
		Logger:      logger,
	}, nil
}

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			out, err := cfg.TOML()
			if err != nil {
				return err
			}
			if used := a.v.ConfigFileUsed(); used != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# config file: %s\n", used)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "# config file: (none, using defaults)")
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if used := a.v.ConfigFileUsed(); used != "" {
				fmt.Fprintln(cmd.OutOrStdout(), used)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (not found)\n", config.ConfigFile())
			return nil
		},
	}

	cmd.AddCommand(show, path)
	return cmd
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shellscribe %s\n", version)
		},
	}
}
