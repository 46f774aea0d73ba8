package shared

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger builds the command logger. Logs go to stderr unless file is
// set, so the game transcript on stdout stays clean. The returned function
// closes the log file, if any.
func SetupLogger(level, file string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	closer := func() error { return nil }
	out := os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "simple21",
	})
	return logger, closer, nil
}
