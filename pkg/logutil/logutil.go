// Package logutil provides logging utilities.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
)

var (
	out     io.Writer = io.Discard
	loggers []*log.Logger
)

// GetLogger gets a logger with a prefix. Loggers share a process-wide
// destination that is controlled by SetOutput and SetOutputFile.
func GetLogger(prefix string) *log.Logger {
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers to the given writer.
func SetOutput(newout io.Writer) {
	out = newout
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers to the named file.
// If the name is empty, loggers are silenced.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %v: %v", fname, err)
	}
	SetOutput(file)
	return nil
}
