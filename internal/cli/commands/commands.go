package commands

import (
	"fmt"
	"io"
	"os"

	"advlog/internal/advlog"
	"advlog/internal/cli"
	"advlog/internal/config"
	"advlog/internal/discovery"
	"advlog/internal/host"
	"advlog/internal/logging"
	"advlog/internal/storage"
	"advlog/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Write   *WriteCommand
	Mkdir   *MkdirCommand
	Context *ContextCommand
	Collect *CollectCommand
	Tree    *TreeCommand
	View    *ViewCommand

	logger    *logging.Logger
	formatter *ui.Formatter
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	logger := logging.NewLogger(logging.LogLevelInfo, os.Stderr)
	env := host.NewOS(logger)
	library := advlog.New(cfg, env)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	scanner := discovery.NewScanner()
	filter := discovery.NewFilter()
	viewer := ui.NewLogViewer()
	contexts := NewContextCommand(cfg, jsonStorage, formatter)
	logs := NewLogTree(cfg, env, scanner, filter)

	return &Commands{
		Write:     NewWriteCommand(cfg, library, contexts, formatter),
		Mkdir:     NewMkdirCommand(library, contexts, formatter),
		Context:   contexts,
		Collect:   NewCollectCommand(cfg, library, contexts, formatter, logger),
		Tree:      NewTreeCommand(logs, formatter),
		View:      NewViewCommand(logs, viewer),
		logger:    logger,
		formatter: formatter,
	}
}

// SetOutput redirects command output (paths, trees, context)
func (c *Commands) SetOutput(w io.Writer) {
	c.formatter.SetOutput(w)
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&flags.OutputDir, "output-dir", "o", "", "Directory in which to create the advanced log folder (default $OUTPUT_DIR or the working directory)")
	persistent.StringVar(&flags.FolderName, "folder-name", "", "Name of the folder the log hierarchy is built under (default \""+config.DefaultTestLogFolderName+"\")")
	persistent.StringVar(&flags.EnvFile, "env-file", config.DefaultEnvFile, "Dotenv file to load before reading ADVLOG_* variables")
	persistent.StringVarP(&flags.LogLevel, "log-level", "l", "", "Console verbosity: silent, error, info, verbose or debug")
	persistent.StringArrayVarP(&flags.Suites, "suite", "s", nil, "Suite name, outermost first (repeatable, overrides the stored context)")
	persistent.StringVarP(&flags.TestName, "test", "t", "", "Current test case name")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.ApplyFlags(flags.ToConfigFlags())
		if err := cfg.LoadEnv(cfg.Flags.EnvFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		c.logger.SetLevel(level)
		return nil
	}

	// Write command
	writeCmd := &cobra.Command{
		Use:   "write FILENAME [CONTENT]",
		Short: "Write content to an advanced log file",
		Long:  "Write content to FILENAME inside the current suite/test folder, replacing any existing file. Binary content read with --from is decoded with --encoding.",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  c.Write.Execute,
	}
	writeCmd.Flags().StringVarP(&flags.Encoding, "encoding", "e", config.DefaultEncoding, "Encoding of content read with --from")
	writeCmd.Flags().StringVar(&flags.From, "from", "", "Read content from a file ('-' for stdin) instead of the CONTENT argument")
	rootCmd.AddCommand(writeCmd)

	// Mkdir command
	mkdirCmd := &cobra.Command{
		Use:   "mkdir",
		Short: "Create the advanced log folder of the current suite or test",
		Long:  "Create the folder hierarchy for the current suite (and test case, when set) and print its path",
		Args:  cobra.NoArgs,
		RunE:  c.Mkdir.Execute,
	}
	rootCmd.AddCommand(mkdirCmd)

	// Context commands
	contextCmd := &cobra.Command{
		Use:   "context",
		Short: "Manage the stored suite/test context",
		Long:  "Store the current suite chain and test name so later commands can run without --suite/--test",
	}
	contextCmd.AddCommand(&cobra.Command{
		Use:   "set [SUITE...]",
		Short: "Store the current suite chain and test name",
		RunE:  c.Context.Set,
	})
	contextCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current context",
		Args:  cobra.NoArgs,
		RunE:  c.Context.Show,
	})
	contextCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the stored context",
		Args:  cobra.NoArgs,
		RunE:  c.Context.Clear,
	})
	rootCmd.AddCommand(contextCmd)

	// Collect command
	collectCmd := &cobra.Command{
		Use:   "collect FILE...",
		Short: "Copy files into the current test folder",
		Long:  "Copy each FILE into the current suite/test folder under its base name, decoding it with --encoding",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.Collect.Execute,
	}
	collectCmd.Flags().StringVarP(&flags.Encoding, "encoding", "e", config.DefaultEncoding, "Encoding of the collected files")
	rootCmd.AddCommand(collectCmd)

	// Tree command
	treeCmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the advanced log hierarchy",
		Args:  cobra.NoArgs,
		RunE:  c.Tree.Execute,
	}
	treeCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter log files by name pattern (supports wildcards, e.g., '*.log' or '*error*')")
	rootCmd.AddCommand(treeCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Browse advanced logs interactively",
		Args:  cobra.NoArgs,
		RunE:  c.View.Execute,
	}
	viewCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter log files by name pattern (supports wildcards, e.g., '*.log' or '*error*')")
	rootCmd.AddCommand(viewCmd)
}
