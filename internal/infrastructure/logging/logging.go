// Package logging builds the process logger from the logging config.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/brinevale/voyager-go/internal/infrastructure/config"
)

// New builds a logger per the config. The returned closer releases the log
// file when output is "file"; otherwise it is a no-op.
func New(cfg *config.LoggingConfig) (*log.Logger, func() error, error) {
	var out io.Writer
	closer := func() error { return nil }

	switch cfg.Output {
	case "", "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	case "file":
		if cfg.FilePath == "" {
			return nil, nil, fmt.Errorf("logging output is file but file_path is empty")
		}
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = f.Close
	default:
		return nil, nil, fmt.Errorf("unsupported logging output: %s", cfg.Output)
	}

	flags := log.LstdFlags
	if cfg.Level == "debug" {
		flags |= log.Lshortfile
	}
	return log.New(out, "", flags), closer, nil
}
