package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Scanner finds advanced log files under a log root
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns every file below root in lexical order. Hidden directories
// are skipped.
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("log root does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("log root is not a directory: %s", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}
