package domain

// Suite represents a test suite node. Suites nest, the root has no parent.
type Suite struct {
	Name   string // Suite name as reported by the test runner
	Parent *Suite // Enclosing suite, nil for the top-level suite
}

// NewSuite creates a suite nested inside parent (nil for a top-level suite)
func NewSuite(name string, parent *Suite) *Suite {
	return &Suite{Name: name, Parent: parent}
}

// SuiteFromNames builds a suite chain from names ordered outermost first and
// returns the innermost suite. Returns nil when names is empty.
func SuiteFromNames(names ...string) *Suite {
	var current *Suite
	for _, name := range names {
		current = NewSuite(name, current)
	}
	return current
}
