package paths

import (
	"errors"

	"advlog/internal/domain"
)

// ErrNoSuite is returned when a path is requested while no suite is executing
var ErrNoSuite = errors.New("no suite is currently executing")

// SuiteNames returns the names of s and all of its parents, outermost first
func SuiteNames(s *domain.Suite) ([]string, error) {
	if s == nil {
		return nil, ErrNoSuite
	}

	var names []string
	for suite := s; suite != nil; suite = suite.Parent {
		names = append(names, suite.Name)
	}

	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names, nil
}
