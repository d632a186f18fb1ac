package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
)

var levelNames = map[LogLevel]string{
	LogLevelSilent:  "silent",
	LogLevelError:   "error",
	LogLevelInfo:    "info",
	LogLevelVerbose: "verbose",
	LogLevelDebug:   "debug",
}

// String returns the lowercase level name
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel converts a level name (case-insensitive) to a LogLevel
func ParseLevel(name string) (LogLevel, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for level, levelName := range levelNames {
		if levelName == name {
			return level, nil
		}
	}
	return LogLevelInfo, fmt.Errorf("unknown log level %q", name)
}

// Logger is a leveled console logger
type Logger struct {
	mu    sync.Mutex
	level LogLevel
	out   io.Writer
}

// NewLogger creates a logger writing to out (stderr when nil)
func NewLogger(level LogLevel, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{level: level, out: out}
}

// Level returns the current level
func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetLevel sets the logging level and returns the previous one
func (l *Logger) SetLevel(level LogLevel) LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	prev := l.level
	l.level = level
	return prev
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.log(LogLevelError, color.RedString("ERROR"), format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.log(LogLevelInfo, color.CyanString("INFO"), format, v...)
}

// Verbose logs a verbose message
func (l *Logger) Verbose(format string, v ...interface{}) {
	l.log(LogLevelVerbose, color.WhiteString("VERBOSE"), format, v...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(LogLevelDebug, color.HiBlackString("DEBUG"), format, v...)
}

func (l *Logger) log(level LogLevel, prefix, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.level < level {
		return
	}
	fmt.Fprintf(l.out, "%s: %s\n", prefix, fmt.Sprintf(format, v...))
}
