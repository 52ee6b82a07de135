// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is nil until Init is called; use Get from code
// that may run before main has set it up, such as tests.
var Log *logrus.Logger

// Init configures Log from LOG_LEVEL (default "info") and LOG_FORMAT
// ("json" or text).
func Init() {
	Log = newLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

func newLogger(levelName, format string, out io.Writer) *logrus.Logger {
	l := logrus.New()

	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	l.SetOutput(out)
	return l
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// Get returns Log, or a logger that discards everything when Init was never
// called.
func Get() *logrus.Logger {
	if Log == nil {
		return discard
	}
	return Log
}
