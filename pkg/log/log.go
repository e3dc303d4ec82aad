// Package log provides the logging interface used throughout the
// emulation core, and a default implementation backed by logrus.
package log

import (
	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger backed by logrus, formatted for plain terminal
// output.
func New() Logger {
	return newLogrus(logrus.InfoLevel)
}

// NewDebug returns a Logger backed by logrus with the debug level
// enabled, so that per-instruction traces are emitted.
func NewDebug() Logger {
	return newLogrus(logrus.DebugLevel)
}

func newLogrus(level logrus.Level) Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
