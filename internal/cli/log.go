// Package cli implements the msf command-line interface.
//
// The CLI wraps [msf.Client] for one-off feed pulls and adds commands to
// inspect the feed catalog, the response store and the resolved
// configuration. It is built with cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - get: Fetch a feed and write the decoded response to stdout or a file
//   - feeds: List the feed catalog and output formats
//   - cache: Show, list and clear the file response store
//   - config: Show the resolved configuration
//
// # Logging
//
// All commands support --verbose (-v). Verbose mode lowers the logger to
// debug and turns on the client's request logging.
//
// [msf.Client]: https://pkg.go.dev/github.com/matzehuels/mysportsfeeds/pkg/msf#Client
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long an operation took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Fetched scoreboard (412ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
