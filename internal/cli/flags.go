package cli

import "advlog/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	suites := make([]string, len(f.Suites))
	copy(suites, f.Suites)

	return config.Flags{
		OutputDir:  f.OutputDir,
		FolderName: f.FolderName,
		EnvFile:    f.EnvFile,
		LogLevel:   f.LogLevel,
		Suites:     suites,
		TestName:   f.TestName,
		Encoding:   f.Encoding,
		From:       f.From,
		Filter:     f.Filter,
	}
}
