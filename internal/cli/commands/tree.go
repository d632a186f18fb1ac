package commands

import (
	"os"

	"advlog/internal/config"
	"advlog/internal/discovery"
	"advlog/internal/host"
	"advlog/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// LogTree locates and lists the advanced log hierarchy
type LogTree struct {
	config  *config.Config
	env     host.Environment
	scanner *discovery.Scanner
	filter  *discovery.Filter
}

// NewLogTree creates a new LogTree
func NewLogTree(cfg *config.Config, env host.Environment, scanner *discovery.Scanner, filter *discovery.Filter) *LogTree {
	return &LogTree{
		config:  cfg,
		env:     env,
		scanner: scanner,
		filter:  filter,
	}
}

// List returns the log root and the filtered files below it. A log root
// that does not exist yet yields no files.
func (lt *LogTree) List() (string, []string, error) {
	outputDir := lt.config.OutputDir
	if outputDir == "" {
		dir, err := lt.env.OutputDir()
		if err != nil {
			return "", nil, err
		}
		outputDir = dir
	}
	root := lt.config.GetLogRoot(outputDir)

	if _, err := os.Stat(root); os.IsNotExist(err) {
		return root, nil, nil
	}
	files, err := lt.scanner.Scan(root)
	if err != nil {
		return "", nil, err
	}
	return root, lt.filter.FilterByName(files, lt.config.Flags.Filter), nil
}

// TreeCommand handles the tree command
type TreeCommand struct {
	logs      *LogTree
	formatter *ui.Formatter
}

// NewTreeCommand creates a new TreeCommand
func NewTreeCommand(logs *LogTree, formatter *ui.Formatter) *TreeCommand {
	return &TreeCommand{logs: logs, formatter: formatter}
}

// Execute runs the command
func (tc *TreeCommand) Execute(cmd *cobra.Command, args []string) error {
	root, files, err := tc.logs.List()
	if err != nil {
		return err
	}
	tc.formatter.PrintTree(root, files)
	return nil
}

// ViewCommand handles the view command
type ViewCommand struct {
	logs   *LogTree
	viewer ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(logs *LogTree, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{logs: logs, viewer: viewer}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	root, files, err := vc.logs.List()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No advanced logs found")
		return nil
	}
	return vc.viewer.View(root, files)
}
