// Package advlog writes additional test logs into a folder hierarchy that
// mirrors the suite and test case nesting:
//
//	{output_dir}/{test_log_folder_name}/{suite}/.../{suite}/{test_case}/{file}
//
// Files are overwritten, never appended to, and nothing is removed before a run.
package advlog

import (
	"fmt"
	"path/filepath"

	"advlog/internal/config"
	"advlog/internal/domain"
	"advlog/internal/host"
	"advlog/internal/logging"
	"advlog/internal/paths"
	"advlog/internal/textenc"
)

// Library creates advanced log folders and files
type Library struct {
	config   *config.Config
	env      host.Environment
	resolver *paths.Resolver
}

// New creates a Library. cfg is read, never modified.
func New(cfg *config.Config, env host.Environment, opts ...paths.Option) *Library {
	return &Library{
		config:   cfg,
		env:      env,
		resolver: paths.NewResolver(cfg, env, opts...),
	}
}

// Resolver returns the path resolver used by the library
func (l *Library) Resolver() *paths.Resolver {
	return l.resolver
}

// WriteLog writes content to filename inside the current suite/test folder
// and returns the normalized path of the file. Binary content is decoded
// with encoding (UTF-8 when empty) before anything is written.
func (l *Library) WriteLog(ec domain.ExecutionContext, filename string, content Content, encoding string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("write log: empty file name")
	}

	text := content.text
	if content.IsBinary() {
		if encoding == "" {
			encoding = config.DefaultEncoding
		}
		decoded, err := textenc.Decode(content.raw, encoding)
		if err != nil {
			return "", fmt.Errorf("write log %s: %w", filename, err)
		}
		text = decoded
	}

	folder, err := l.resolver.TestFolder(ec)
	if err != nil {
		return "", err
	}
	path := filepath.Join(folder, filename)

	if err := l.env.CreateFile(path, text); err != nil {
		return "", err
	}
	return path, nil
}

// CreateLogDir creates the folder of the current suite, or of the current
// test case when one is running, and returns its normalized path.
// Environment logging is limited to errors while the folder is created.
func (l *Library) CreateLogDir(ec domain.ExecutionContext) (string, error) {
	folder, err := l.resolver.TestFolder(ec)
	if err != nil {
		return "", err
	}

	err = logging.WithLevel(l.env, logging.LogLevelError, func() error {
		return l.env.CreateDirectory(folder)
	})
	if err != nil {
		return "", err
	}
	return folder, nil
}
