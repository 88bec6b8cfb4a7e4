package contract

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// logger is shared by every package; it writes to stderr so stdout stays
// clean for exports and the MCP stdio transport.
var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	return l
}

// Logger returns the shared logger.
func Logger() *logrus.Logger {
	return logger
}

// SetLogLevel parses a level name (debug, info, warn, error) and applies it.
func SetLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return nil
}

// SetLogOutput redirects the shared logger.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	logger.WithError(err).Fatal(msg)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	logger.WithError(err).Warn(msg)
}
