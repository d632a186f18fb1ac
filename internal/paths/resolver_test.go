package paths

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"advlog/internal/config"
	"advlog/internal/domain"
)

// staticOutputs returns a fixed default output directory, or err
type staticOutputs struct {
	dir   string
	err   error
	calls int
}

func (s *staticOutputs) OutputDir() (string, error) {
	s.calls++
	return s.dir, s.err
}

func newConfig(outputDir string) *config.Config {
	cfg := config.New()
	cfg.OutputDir = outputDir
	return cfg
}

func TestResolver_SuiteFolder(t *testing.T) {
	tests := []struct {
		name     string
		config   *config.Config
		outputs  *staticOutputs
		suites   []string
		expected string
	}{
		{
			name:     "explicit output dir",
			config:   newConfig("/tmp/out"),
			outputs:  &staticOutputs{dir: "/results"},
			suites:   []string{"Root", "Child"},
			expected: filepath.Join("/tmp/out", "Advanced_Logs", "Root", "Child"),
		},
		{
			name:     "environment default output dir",
			config:   newConfig(""),
			outputs:  &staticOutputs{dir: "/results"},
			suites:   []string{"Root"},
			expected: filepath.Join("/results", "Advanced_Logs", "Root"),
		},
		{
			name: "custom folder name",
			config: &config.Config{
				OutputDir:         "/tmp/out",
				TestLogFolderName: "LogFromServer",
			},
			outputs:  &staticOutputs{},
			suites:   []string{"Root"},
			expected: filepath.Join("/tmp/out", "LogFromServer", "Root"),
		},
		{
			name:     "redundant segments are normalized",
			config:   newConfig("/tmp//out/./logs/.."),
			outputs:  &staticOutputs{},
			suites:   []string{"Root", "Child"},
			expected: filepath.Join("/tmp/out", "Advanced_Logs", "Root", "Child"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.config, tt.outputs, WithPlatform(Linux))
			result, err := r.SuiteFolder(domain.NewExecutionContext(tt.suites, ""))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestResolver_SuiteFolder_SegmentOrder(t *testing.T) {
	r := NewResolver(newConfig("/tmp/out"), nil, WithPlatform(Linux))

	for depth := 1; depth <= 6; depth++ {
		var suites []string
		for i := 0; i < depth; i++ {
			suites = append(suites, "S"+string(rune('A'+i)))
		}

		folder, err := r.SuiteFolder(domain.NewExecutionContext(suites, "ignored"))
		if err != nil {
			t.Fatalf("unexpected error at depth %d: %v", depth, err)
		}

		rel, err := filepath.Rel("/tmp/out", folder)
		if err != nil {
			t.Fatalf("folder %s not under root: %v", folder, err)
		}
		segments := strings.Split(rel, string(filepath.Separator))
		if len(segments) != depth+1 {
			t.Fatalf("depth %d: expected %d segments, got %v", depth, depth+1, segments)
		}
		if segments[0] != config.DefaultTestLogFolderName {
			t.Errorf("expected first segment %s, got %s", config.DefaultTestLogFolderName, segments[0])
		}
		for i, suite := range suites {
			if segments[i+1] != suite {
				t.Errorf("depth %d: segment %d expected %s, got %s", depth, i+1, suite, segments[i+1])
			}
		}
	}
}

func TestResolver_DefaultResolvedAtCallTime(t *testing.T) {
	outputs := &staticOutputs{dir: "/first"}
	r := NewResolver(newConfig(""), outputs, WithPlatform(Linux))
	ec := domain.NewExecutionContext([]string{"Root"}, "")

	first, err := r.SuiteFolder(ec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outputs.dir = "/second"
	second, err := r.SuiteFolder(ec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(first, filepath.Clean("/first")) {
		t.Errorf("expected first path under /first, got %s", first)
	}
	if !strings.HasPrefix(second, filepath.Clean("/second")) {
		t.Errorf("expected second path under /second, got %s", second)
	}
	if outputs.calls != 2 {
		t.Errorf("expected 2 lookups, got %d", outputs.calls)
	}
}

func TestResolver_LongPathPrefix(t *testing.T) {
	ec := domain.NewExecutionContext([]string{"Root"}, "")

	t.Run("windows gets prefix", func(t *testing.T) {
		r := NewResolver(newConfig("/tmp/out"), nil, WithPlatform(Windows))
		folder, err := r.SuiteFolder(ec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(folder, LongPathPrefix+"/tmp/out") && !strings.HasPrefix(folder, LongPathPrefix+`\tmp\out`) {
			t.Errorf("expected %s prefix followed by output dir, got %s", LongPathPrefix, folder)
		}
	})

	t.Run("prefix is applied to environment default too", func(t *testing.T) {
		r := NewResolver(newConfig(""), &staticOutputs{dir: "/results"}, WithPlatform(Windows))
		folder, err := r.SuiteFolder(ec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(folder, LongPathPrefix) {
			t.Errorf("expected %s prefix, got %s", LongPathPrefix, folder)
		}
	})

	for _, p := range []Platform{Linux, Darwin} {
		t.Run(string(p)+" has no prefix", func(t *testing.T) {
			r := NewResolver(newConfig("/tmp/out"), nil, WithPlatform(p))
			folder, err := r.SuiteFolder(ec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.Contains(folder, `\\?\`) {
				t.Errorf("unexpected long path prefix in %s", folder)
			}
		})
	}
}

func TestResolver_TestFolder(t *testing.T) {
	r := NewResolver(newConfig("/tmp/out"), nil, WithPlatform(Linux))

	t.Run("inside a test case", func(t *testing.T) {
		folder, err := r.TestFolder(domain.NewExecutionContext([]string{"Root", "Child"}, "MyTest"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := filepath.Join("/tmp/out", "Advanced_Logs", "Root", "Child", "MyTest")
		if folder != expected {
			t.Errorf("expected %s, got %s", expected, folder)
		}
	})

	t.Run("outside a test case collapses to the suite folder", func(t *testing.T) {
		folder, err := r.TestFolder(domain.NewExecutionContext([]string{"Root", "Child"}, ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := filepath.Join("/tmp/out", "Advanced_Logs", "Root", "Child")
		if folder != expected {
			t.Errorf("expected %s, got %s", expected, folder)
		}
	})
}

func TestResolver_Errors(t *testing.T) {
	t.Run("no suite", func(t *testing.T) {
		r := NewResolver(newConfig("/tmp/out"), nil, WithPlatform(Linux))
		_, err := r.SuiteFolder(domain.ExecutionContext{TestName: "MyTest"})
		if !errors.Is(err, ErrNoSuite) {
			t.Errorf("expected ErrNoSuite, got %v", err)
		}
	})

	t.Run("default output dir lookup fails", func(t *testing.T) {
		boom := errors.New("boom")
		r := NewResolver(newConfig(""), &staticOutputs{err: boom}, WithPlatform(Linux))
		_, err := r.SuiteFolder(domain.NewExecutionContext([]string{"Root"}, ""))
		if !errors.Is(err, boom) {
			t.Errorf("expected wrapped boom, got %v", err)
		}
	})
}
