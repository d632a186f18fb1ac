package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters log files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps files whose base name matches pattern. Patterns with
// wildcards ("*.log", "*error*") use glob matching, falling back to an
// ordered match of the literal parts; plain patterns match as substrings.
func (f *Filter) FilterByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}

	var filtered []string
	for _, file := range files {
		if matchName(filepath.Base(file), pattern) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}
	if strings.Contains(pattern, "?") {
		return false
	}

	// "*a*b*" style: every literal part must appear in order
	parts := strings.Split(pattern, "*")
	rest := name
	found := false
	for i, part := range parts {
		if part == "" {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 || (i == 0 && idx != 0) {
			return false
		}
		rest = rest[idx+len(part):]
		found = true
	}
	if last := parts[len(parts)-1]; last != "" && !strings.HasSuffix(name, last) {
		return false
	}
	return found
}
