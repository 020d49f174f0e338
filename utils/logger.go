package utils

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// NewLogger builds the logfmt logger used across the program. With logging disabled it
// returns a no-op logger. Output goes to logFile when set, otherwise to w. The returned
// closer releases the log file and is never nil.
func NewLogger(enabled, debug bool, logFile string, w io.Writer) (log.Logger, io.Closer, error) {
	if !enabled {
		return log.NewNopLogger(), io.NopCloser(nil), nil
	}

	var closer io.Closer = io.NopCloser(nil)
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return nil, nil, errors.Wrapf(err, "[NewLogger] failed to create log folder for %s", logFile)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "[NewLogger] failed to open log file: %s", logFile)
		}
		w, closer = f, f
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	allowed := level.AllowInfo()
	if debug {
		allowed = level.AllowDebug()
	}
	return level.NewFilter(logger, allowed), closer, nil
}
