// Package rlog is the ambient structured-logging setup shared by every
// control-plane package: a package-level configured logger with
// key/value fields, adapted from the teacher's kissutil.go/tq.go/xmit.go
// strftime-formatted timestamp convention onto charmbracelet/log's
// structured levels. The sample-rate loop never calls into this package
// (would allocate/block); only the control loop and cmd/ binaries do.
package rlog

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
)

var base = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
})

// For returns a logger scoped to component, e.g. rlog.For("txctl").
func For(component string) *log.Logger {
	return base.With("component", component)
}

// SetLevel adjusts the verbosity of every logger returned by For.
func SetLevel(level log.Level) { base.SetLevel(level) }

// DailyFileSink opens (creating directories as needed) a log file whose
// name is built from pattern using strftime verbs, e.g.
// "radiocore-%Y%m%d.log", matching the teacher's --timestamp-format
// convention but applied to the log file name instead of per-line
// prefixes. The caller is responsible for closing the returned file.
func DailyFileSink(dir, pattern string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	name, err := strftime.Format(pattern, time.Now())
	if err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// AddFileSink reconfigures the package logger to also write to w, in
// addition to its existing stderr output. Used by cmd/ binaries that
// want persistent logs alongside interactive stderr output.
func AddFileSink(w io.Writer) {
	base = log.NewWithOptions(io.MultiWriter(os.Stderr, w), log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}
