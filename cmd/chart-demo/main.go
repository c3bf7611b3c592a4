// FILE: cmd/chart-demo/main.go
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/lixenwraith/termchart/engine"
	"github.com/lixenwraith/termchart/logging"
	"github.com/lixenwraith/termchart/render"
	"github.com/lixenwraith/termchart/terminal"
)

var (
	tickFlag     = flag.DurationP("tick", "t", engine.DefaultTick, "state update interval")
	logFileFlag  = flag.String("log-file", "", "debug log file path (logging disabled when empty)")
	logLevelFlag = flag.String("log-level", "info", "log level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "chart-demo requires a terminal")
		os.Exit(1)
	}

	logger, closeLogs, err := logging.New(logging.Config{
		FilePath: *logFileFlag,
		Level:    *logLevelFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLogs()

	scr, err := terminal.New(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := scr.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer scr.Fini()

	// Restore the terminal before the stack trace hits stderr,
	// otherwise it lands on the alternate screen and vanishes with it
	defer func() {
		if r := recover(); r != nil {
			scr.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCHART-DEMO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	app := NewApp(DefaultConfig())
	buf := render.NewBuffer(scr.Size())

	loop := &engine.Loop{
		Tick:   *tickFlag,
		Events: scr.Events(),
		OnTick: app.OnTick,
		Log:    logger,
		Draw: func() error {
			buf.Resize(scr.Size())
			if err := draw(app, buf.Full()); err != nil {
				return err
			}
			scr.Flush(buf)
			return nil
		},
	}

	if err := loop.Run(); err != nil {
		logger.Error("loop failed", zap.Error(err))
		scr.Fini()
		closeLogs()
		fmt.Fprintf(os.Stderr, "chart-demo: %v\n", err)
		os.Exit(1)
	}
}
