package host

import (
	"fmt"
	"os"
	"path/filepath"

	"advlog/internal/config"
	"advlog/internal/logging"
)

// Environment is the part of the test runner advanced logging depends on
type Environment interface {
	// OutputDir returns the default output directory of the test run
	OutputDir() (string, error)
	// CreateDirectory creates path and any missing parents. Existing
	// directories are not an error.
	CreateDirectory(path string) error
	// CreateFile writes content to path, creating parents and replacing
	// any existing file
	CreateFile(path, content string) error
	// SetLogLevel changes the environment's log verbosity and returns the
	// previous level
	SetLogLevel(level logging.LogLevel) logging.LogLevel
}

// OS is an Environment backed by the local filesystem and process environment
type OS struct {
	logger *logging.Logger
	lookup func(string) (string, bool)
}

// NewOS creates an OS environment logging through logger
func NewOS(logger *logging.Logger) *OS {
	return &OS{
		logger: logger,
		lookup: os.LookupEnv,
	}
}

// OutputDir returns $OUTPUT_DIR, or the working directory when it is unset
func (o *OS) OutputDir() (string, error) {
	if dir, ok := o.lookup(config.OutputDirVariable); ok && dir != "" {
		return dir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return dir, nil
}

// CreateDirectory creates path and its parents
func (o *OS) CreateDirectory(path string) error {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return fmt.Errorf("create directory %s: path exists and is not a directory", path)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	o.logger.Info("Created directory '%s'.", path)
	return nil
}

// CreateFile writes content to path, overwriting an existing file
func (o *OS) CreateFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write file %s: %w", path, err)
	}
	o.logger.Info("Created file '%s'.", path)
	return nil
}

// SetLogLevel sets the logger level and returns the previous one
func (o *OS) SetLogLevel(level logging.LogLevel) logging.LogLevel {
	return o.logger.SetLevel(level)
}
