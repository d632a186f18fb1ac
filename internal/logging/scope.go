package logging

// LevelSetter is anything whose verbosity can be swapped, returning the old value
type LevelSetter interface {
	SetLogLevel(level LogLevel) LogLevel
}

// WithLevel runs fn with the verbosity of s set to level. The previous level
// is restored on every return path, including a panic in fn.
func WithLevel(s LevelSetter, level LogLevel, fn func() error) error {
	prev := s.SetLogLevel(level)
	defer s.SetLogLevel(prev)
	return fn()
}
