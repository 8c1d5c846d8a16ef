// Package logutils builds the process logger. Logs go to a file because the
// demo draws over the whole terminal.
package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
)

// DefaultFile returns the log path for app under the user's state directory:
// $XDG_STATE_HOME/<app>/<app>.log, ~/Library/Logs/<app>/<app>.log on macOS,
// ~/.local/state/<app>/<app>.log elsewhere.
func DefaultFile(app string) string {
	name := app + ".log"
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, app, name)
	}

	home, _ := os.UserHomeDir()
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", app, name)
	}
	return filepath.Join(home, ".local", "state", app, name)
}

// New returns a JSON logger at level appending to file. An empty file logs to
// stderr. The returned func closes the file and is never nil.
//
// level is one of trace, debug, info, warn, error, fatal, panic, disabled.
func New(level string, file string) (zerolog.Logger, func(), error) {
	noop := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, noop, fmt.Errorf("parse log level: %w", err)
	}

	w, closer, err := open(file)
	if err != nil {
		return zerolog.Logger{}, noop, err
	}

	return zerolog.New(w).With().Timestamp().Logger().Level(lvl), closer, nil
}

func open(file string) (io.Writer, func(), error) {
	if file == "" {
		return os.Stderr, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
