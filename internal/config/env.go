package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads the dotenv file at path (a missing file is fine) and applies
// ADVLOG_* environment variables to fields the flags left unset
func (c *Config) LoadEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	if c.Flags.OutputDir == "" {
		if v := os.Getenv(EnvOutputDir); v != "" {
			c.OutputDir = v
		}
	}
	if c.Flags.FolderName == "" {
		if v := os.Getenv(EnvTestLogFolder); v != "" {
			c.TestLogFolderName = v
		}
	}
	if c.Flags.LogLevel == "" {
		if v := os.Getenv(EnvLogLevel); v != "" {
			c.LogLevel = v
		}
	}
	return nil
}
