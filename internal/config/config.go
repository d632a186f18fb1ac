package config

import (
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Advanced log layout. An empty OutputDir means the environment's
	// default output directory, resolved when a path is built.
	OutputDir         string
	TestLogFolderName string

	// Persisted execution context for the CLI
	ContextDir  string
	ContextFile string

	// Console verbosity
	LogLevel string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	OutputDir  string
	FolderName string
	EnvFile    string
	LogLevel   string
	Suites     []string
	TestName   string
	Encoding   string
	From       string
	Filter     string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		TestLogFolderName: DefaultTestLogFolderName,
		ContextDir:        DefaultContextDir,
		ContextFile:       DefaultContextFile,
		LogLevel:          DefaultLogLevel,
		Flags: Flags{
			EnvFile:  DefaultEnvFile,
			Encoding: DefaultEncoding,
		},
	}
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.ApplyFlags(flags)
	return cfg
}

// ApplyFlags stores flags and lets non-empty values override the config
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags

	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.FolderName != "" {
		c.TestLogFolderName = flags.FolderName
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if c.Flags.Encoding == "" {
		c.Flags.Encoding = DefaultEncoding
	}
}

// GetContextPath returns the absolute path of the persisted execution context
func (c *Config) GetContextPath() string {
	p := filepath.Join(c.ContextDir, c.ContextFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetLogRoot returns the advanced log folder under outputDir, or under the
// configured OutputDir when it is set
func (c *Config) GetLogRoot(outputDir string) string {
	if c.OutputDir != "" {
		outputDir = c.OutputDir
	}
	return filepath.Join(outputDir, c.TestLogFolderName)
}
