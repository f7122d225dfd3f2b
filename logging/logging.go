package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

var debugMode bool

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename string) (cleanup func(), err error) {
	if filename == "" {
		debugMode = false
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", filename, err)
	}

	// configure stdlib logger
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)

	// configure Bubble Tea logger
	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("bubbletea log file %q: %w", filename, err)
	}
	debugMode = true

	// cleanup closes both files
	cleanup = func() {
		debugMode = false
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

// IsDebugMode reports whether a debug log file is attached.
func IsDebugMode() bool { return debugMode }

// Debug logs msg only when a debug log file is attached.
func Debug(msg string) {
	if debugMode {
		_ = log.Output(2, "DEBUG "+msg)
	}
}

func Debugf(format string, args ...any) {
	if debugMode {
		_ = log.Output(2, "DEBUG "+fmt.Sprintf(format, args...))
	}
}

func Infof(format string, args ...any) {
	_ = log.Output(2, "INFO "+fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...any) {
	_ = log.Output(2, "WARN "+fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...any) {
	_ = log.Output(2, "ERROR "+fmt.Sprintf(format, args...))
}
