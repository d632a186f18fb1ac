package commands

import (
	"advlog/internal/advlog"
	"advlog/internal/ui"

	"github.com/spf13/cobra"
)

// MkdirCommand handles the mkdir command
type MkdirCommand struct {
	library   *advlog.Library
	contexts  *ContextCommand
	formatter *ui.Formatter
}

// NewMkdirCommand creates a new MkdirCommand
func NewMkdirCommand(library *advlog.Library, contexts *ContextCommand, formatter *ui.Formatter) *MkdirCommand {
	return &MkdirCommand{
		library:   library,
		contexts:  contexts,
		formatter: formatter,
	}
}

// Execute runs the command
func (mc *MkdirCommand) Execute(cmd *cobra.Command, args []string) error {
	ec, err := mc.contexts.Resolve(cmd)
	if err != nil {
		return err
	}
	path, err := mc.library.CreateLogDir(ec)
	if err != nil {
		return err
	}
	mc.formatter.PrintPath(path)
	return nil
}
