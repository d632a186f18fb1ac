package domain

// ExecutionContext describes where a test runner currently is
type ExecutionContext struct {
	Suite    *Suite // Currently executing suite, nil when none is running
	TestName string // Current test case name, empty outside a test case
}

// NewExecutionContext creates an ExecutionContext from suite names ordered
// outermost first and the current test name
func NewExecutionContext(suites []string, testName string) ExecutionContext {
	return ExecutionContext{
		Suite:    SuiteFromNames(suites...),
		TestName: testName,
	}
}

// ContextState is the persisted execution context used between CLI invocations
type ContextState struct {
	Suites    []string `json:"suites"`
	TestName  string   `json:"test_name,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

// ExecutionContext converts the stored state into an ExecutionContext
func (s *ContextState) ExecutionContext() ExecutionContext {
	if s == nil {
		return ExecutionContext{}
	}
	return NewExecutionContext(s.Suites, s.TestName)
}
