package main

import (
	"fmt"
	"os"

	"advlog/internal/cli"
	"advlog/internal/cli/commands"
	"advlog/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "advlog",
		Short: "Advanced test logging",
		Long: `Write additional test logs into a folder hierarchy that mirrors the test suite nesting:
{output_dir}/Advanced_Logs/{suite}/.../{suite}/{test case}/{file}`,
		Version:      version,
		SilenceUsage: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
