package paths

import (
	"fmt"
	"path/filepath"

	"advlog/internal/config"
	"advlog/internal/domain"
)

// OutputDirProvider supplies the default output directory of the test run
type OutputDirProvider interface {
	OutputDir() (string, error)
}

// Resolver builds advanced log paths from the execution context
type Resolver struct {
	config   *config.Config
	outputs  OutputDirProvider
	platform Platform
}

// Option configures a Resolver
type Option func(*Resolver)

// WithPlatform overrides the platform paths are built for
func WithPlatform(p Platform) Option {
	return func(r *Resolver) {
		r.platform = p
	}
}

// NewResolver creates a new Resolver
func NewResolver(cfg *config.Config, outputs OutputDirProvider, opts ...Option) *Resolver {
	r := &Resolver{
		config:   cfg,
		outputs:  outputs,
		platform: CurrentPlatform(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Platform returns the platform the resolver builds paths for
func (r *Resolver) Platform() Platform {
	return r.platform
}

// OutputRoot returns the configured output directory, or the environment's
// default when none is configured. The default is looked up on every call.
func (r *Resolver) OutputRoot() (string, error) {
	if r.config.OutputDir != "" {
		return r.config.OutputDir, nil
	}
	if r.outputs == nil {
		return "", fmt.Errorf("no output directory configured")
	}
	dir, err := r.outputs.OutputDir()
	if err != nil {
		return "", fmt.Errorf("resolve output directory: %w", err)
	}
	return dir, nil
}

// SuiteFolder returns the normalized folder of the current suite:
// {output}/{folder}/{suite_1}/.../{suite_N}
func (r *Resolver) SuiteFolder(ec domain.ExecutionContext) (string, error) {
	names, err := SuiteNames(ec.Suite)
	if err != nil {
		return "", err
	}

	root, err := r.OutputRoot()
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(names)+2)
	parts = append(parts, r.platform.prefixRoot(root), r.config.TestLogFolderName)
	parts = append(parts, names...)

	// Join cleans the result
	return filepath.Join(parts...), nil
}

// TestFolder returns the suite folder with the current test case appended.
// Outside a test case it equals SuiteFolder.
func (r *Resolver) TestFolder(ec domain.ExecutionContext) (string, error) {
	folder, err := r.SuiteFolder(ec)
	if err != nil {
		return "", err
	}
	return filepath.Join(folder, ec.TestName), nil
}
