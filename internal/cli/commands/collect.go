package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"advlog/internal/advlog"
	"advlog/internal/config"
	"advlog/internal/domain"
	"advlog/internal/logging"
	"advlog/internal/ui"

	"github.com/spf13/cobra"
)

// CollectCommand handles the collect command
type CollectCommand struct {
	config    *config.Config
	library   *advlog.Library
	contexts  *ContextCommand
	formatter *ui.Formatter
	logger    *logging.Logger
	progress  bool
}

// NewCollectCommand creates a new CollectCommand
func NewCollectCommand(
	cfg *config.Config,
	library *advlog.Library,
	contexts *ContextCommand,
	formatter *ui.Formatter,
	logger *logging.Logger,
) *CollectCommand {
	return &CollectCommand{
		config:    cfg,
		library:   library,
		contexts:  contexts,
		formatter: formatter,
		logger:    logger,
		progress:  true,
	}
}

// Execute runs the command
func (cc *CollectCommand) Execute(cmd *cobra.Command, args []string) error {
	ec, err := cc.contexts.Resolve(cmd)
	if err != nil {
		return err
	}

	var bar *ui.ProgressBar
	if cc.progress {
		bar = ui.NewProgressBar(len(args))
	}

	var written []string
	failed := 0
	for _, file := range args {
		path, err := cc.collect(ec, file)
		if err != nil {
			failed++
			cc.logger.Error("collect %s: %v", file, err)
		} else {
			written = append(written, path)
		}
		if bar != nil {
			bar.Update(len(written), failed)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	for _, path := range written {
		cc.formatter.PrintPath(path)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) could not be collected", failed, len(args))
	}
	return nil
}

func (cc *CollectCommand) collect(ec domain.ExecutionContext, file string) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return cc.library.WriteLog(ec, filepath.Base(file), advlog.Bytes(data), cc.config.Flags.Encoding)
}
