package main

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

// setupLogging returns the debug logger and a func that closes its file.
// Without debug everything is discarded, since the terminal belongs to the
// game.
func setupLogging(debug bool, path string) (*log.Logger, func(), error) {
	if !debug {
		return log.New(io.Discard, "", 0), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}

	logger := log.New(f, "neonpong: ", log.Ldate|log.Ltime|log.Lmicroseconds)
	logger.Printf("logging started")
	return logger, func() { f.Close() }, nil
}
