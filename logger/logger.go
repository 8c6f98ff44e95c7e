// Package logger configures the process logrus logger
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options selects level, format and destination
type Options struct {
	Level  string
	Format string // "json" or "text"
	File   string // Empty writes to out
}

// New builds a logger; the terminal owns stdout, so hosts log to a file
// The returned closer releases the file and is never nil
func New(opts Options, out io.Writer) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: opts.File != "",
		})
	}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out, closer = f, f
	}
	if out == nil {
		out = io.Discard
	}
	log.SetOutput(out)
	return log, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
