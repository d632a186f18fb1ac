package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name     string
		level    LogLevel
		expected []string
		hidden   []string
	}{
		{
			name:     "silent hides everything",
			level:    LogLevelSilent,
			expected: nil,
			hidden:   []string{"ERROR: e", "INFO: i", "VERBOSE: v", "DEBUG: d"},
		},
		{
			name:     "error only",
			level:    LogLevelError,
			expected: []string{"ERROR: e"},
			hidden:   []string{"INFO: i", "VERBOSE: v", "DEBUG: d"},
		},
		{
			name:     "info",
			level:    LogLevelInfo,
			expected: []string{"ERROR: e", "INFO: i"},
			hidden:   []string{"VERBOSE: v", "DEBUG: d"},
		},
		{
			name:     "debug shows everything",
			level:    LogLevelDebug,
			expected: []string{"ERROR: e", "INFO: i", "VERBOSE: v", "DEBUG: d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLogger(tt.level, &buf)
			l.Error("e")
			l.Info("i")
			l.Verbose("v")
			l.Debug("d")

			out := buf.String()
			for _, want := range tt.expected {
				if !strings.Contains(out, want) {
					t.Errorf("expected output to contain %q, got %q", want, out)
				}
			}
			for _, unwanted := range tt.hidden {
				if strings.Contains(out, unwanted) {
					t.Errorf("expected output not to contain %q, got %q", unwanted, out)
				}
			}
		})
	}
}

func TestLogger_SetLevel(t *testing.T) {
	l := NewLogger(LogLevelInfo, &bytes.Buffer{})
	prev := l.SetLevel(LogLevelError)
	if prev != LogLevelInfo {
		t.Errorf("expected previous level info, got %s", prev)
	}
	if l.Level() != LogLevelError {
		t.Errorf("expected level error, got %s", l.Level())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{input: "silent", want: LogLevelSilent},
		{input: "ERROR", want: LogLevelError},
		{input: " info ", want: LogLevelInfo},
		{input: "Verbose", want: LogLevelVerbose},
		{input: "debug", want: LogLevelDebug},
		{input: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

type levelRecorder struct {
	level LogLevel
	seen  []LogLevel
}

func (r *levelRecorder) SetLogLevel(level LogLevel) LogLevel {
	prev := r.level
	r.level = level
	r.seen = append(r.seen, level)
	return prev
}

func TestWithLevel(t *testing.T) {
	t.Run("restores after success", func(t *testing.T) {
		r := &levelRecorder{level: LogLevelDebug}
		var during LogLevel
		err := WithLevel(r, LogLevelError, func() error {
			during = r.level
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if during != LogLevelError {
			t.Errorf("expected error level inside fn, got %s", during)
		}
		if r.level != LogLevelDebug {
			t.Errorf("expected debug level restored, got %s", r.level)
		}
	})

	t.Run("restores after failure", func(t *testing.T) {
		r := &levelRecorder{level: LogLevelInfo}
		boom := errors.New("boom")
		err := WithLevel(r, LogLevelError, func() error { return boom })
		if !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}
		if r.level != LogLevelInfo {
			t.Errorf("expected info level restored, got %s", r.level)
		}
	})
}
