package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Fields are structured log fields.
type Fields = map[string]any

var std = newLogger(os.Stdout)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000000000Z07:00",
		FieldMap:        logrus.FieldMap{logrus.FieldKeyMsg: "message"},
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Logger exposes the underlying logger for components that take a *logrus.Logger.
func Logger() *logrus.Logger { return std }

// SetOutput redirects log output, e.g. to stderr for CLI commands.
func SetOutput(w io.Writer) { std.SetOutput(w) }

// SetLevel parses level (debug, info, warn, error); unknown values select info.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	std.SetLevel(lvl)
}

func Log(level logrus.Level, msg string, fields Fields) {
	std.WithFields(logrus.Fields(fields)).Log(level, msg)
}

func Debug(msg string, fields Fields) { Log(logrus.DebugLevel, msg, fields) }
func Info(msg string, fields Fields)  { Log(logrus.InfoLevel, msg, fields) }
func Warn(msg string, fields Fields)  { Log(logrus.WarnLevel, msg, fields) }
func Error(msg string, fields Fields) { Log(logrus.ErrorLevel, msg, fields) }
