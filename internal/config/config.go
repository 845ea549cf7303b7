package config

import (
	"flag"
	"io"

	"github.com/pkg/errors"
)

// Default values for configuration
const (
	DefaultVolume  = 0.8
	DefaultLogFile = "neonpong.log"
)

// Config holds the application configuration
type Config struct {
	Mute    bool
	NoMouse bool
	Debug   bool
	LogFile string
	Volume  float64
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("neonpong", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	mute := fs.Bool("mute", false, "disable sound")
	noMouse := fs.Bool("no-mouse", false, "disable mouse control")
	debug := fs.Bool("debug", false, "write a debug log")
	logFile := fs.String("log-file", DefaultLogFile, "debug log path")
	volume := fs.Float64("volume", DefaultVolume, "sound volume (0-1)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if *volume < 0 || *volume > 1 {
		return nil, errors.Errorf("volume must be between 0 and 1, got %v", *volume)
	}

	if *debug && *logFile == "" {
		return nil, errors.New("--debug needs a --log-file")
	}

	cfg := &Config{
		Mute:    *mute,
		NoMouse: *noMouse,
		Debug:   *debug,
		LogFile: *logFile,
		Volume:  *volume,
	}

	return cfg, nil
}
