package main

import (
	"fmt"
	"os"

	"github.com/diegok/neonpong/internal/app"
	"github.com/diegok/neonpong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	logger, closeLog, err := setupLogging(cfg.Debug, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApp(cfg, logger)
	runErr := application.Run()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  neonpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "  --volume <0-1>      Sound volume (default: 0.8)")
	fmt.Fprintln(os.Stderr, "  --no-mouse          Arrow keys only")
	fmt.Fprintln(os.Stderr, "  --debug             Write a debug log")
	fmt.Fprintln(os.Stderr, "  --log-file <path>   Debug log path (default: neonpong.log)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  mouse or up/down    Move paddle")
	fmt.Fprintln(os.Stderr, "  space               Start, pause")
	fmt.Fprintln(os.Stderr, "  p                   Pause")
	fmt.Fprintln(os.Stderr, "  q w e r             Teleport, slow time, wall, extra ball")
	fmt.Fprintln(os.Stderr, "  enter               Play again after a match")
	fmt.Fprintln(os.Stderr, "  esc                 Quit")
}
