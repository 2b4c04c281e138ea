package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/viper"

	"github.com/lixenwraith/shellscribe/editor"
	"github.com/lixenwraith/shellscribe/terminal"
)

func main() {
	os.Exit(execute())
}

func execute() (code int) {
	// Panic Recovery: the editor's deferred release has already run; reset whatever is left
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\nshellscribe crashed: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			code = editor.ExitFatal
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	a := &app{
		v:       viper.New(),
		backend: terminal.StdBackend(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	return a.run(ctx, os.Args[1:])
}
