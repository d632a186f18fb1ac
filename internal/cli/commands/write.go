package commands

import (
	"fmt"
	"io"
	"os"

	"advlog/internal/advlog"
	"advlog/internal/config"
	"advlog/internal/ui"

	"github.com/spf13/cobra"
)

// WriteCommand handles the write command
type WriteCommand struct {
	config    *config.Config
	library   *advlog.Library
	contexts  *ContextCommand
	formatter *ui.Formatter
	stdin     io.Reader
}

// NewWriteCommand creates a new WriteCommand
func NewWriteCommand(cfg *config.Config, library *advlog.Library, contexts *ContextCommand, formatter *ui.Formatter) *WriteCommand {
	return &WriteCommand{
		config:    cfg,
		library:   library,
		contexts:  contexts,
		formatter: formatter,
		stdin:     os.Stdin,
	}
}

// Execute runs the command
func (wc *WriteCommand) Execute(cmd *cobra.Command, args []string) error {
	content, err := wc.content(args)
	if err != nil {
		return err
	}

	ec, err := wc.contexts.Resolve(cmd)
	if err != nil {
		return err
	}

	path, err := wc.library.WriteLog(ec, args[0], content, wc.config.Flags.Encoding)
	if err != nil {
		return err
	}
	wc.formatter.PrintPath(path)
	return nil
}

func (wc *WriteCommand) content(args []string) (advlog.Content, error) {
	from := wc.config.Flags.From
	switch {
	case from == "-":
		data, err := io.ReadAll(wc.stdin)
		if err != nil {
			return advlog.Content{}, fmt.Errorf("read stdin: %w", err)
		}
		return advlog.Bytes(data), nil
	case from != "":
		data, err := os.ReadFile(from)
		if err != nil {
			return advlog.Content{}, fmt.Errorf("read %s: %w", from, err)
		}
		return advlog.Bytes(data), nil
	case len(args) == 2:
		return advlog.Text(args[1]), nil
	}
	return advlog.Content{}, fmt.Errorf("no content: pass CONTENT or --from")
}
