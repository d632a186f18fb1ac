package commands

import (
	"fmt"

	"advlog/internal/config"
	"advlog/internal/domain"
	"advlog/internal/storage"
	"advlog/internal/ui"

	"github.com/spf13/cobra"
)

// ContextCommand manages the stored execution context and resolves the
// context other commands run in
type ContextCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewContextCommand creates a new ContextCommand
func NewContextCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *ContextCommand {
	return &ContextCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Resolve returns the execution context for cmd. Suites given with --suite
// replace the stored context entirely; otherwise the stored context is used
// and --test, when given, overrides its test name.
func (cc *ContextCommand) Resolve(cmd *cobra.Command) (domain.ExecutionContext, error) {
	flags := cc.config.Flags
	if len(flags.Suites) > 0 {
		return domain.NewExecutionContext(flags.Suites, flags.TestName), nil
	}

	state, err := cc.storage.Load()
	if err != nil {
		return domain.ExecutionContext{}, err
	}
	ec := state.ExecutionContext()
	if f := cmd.Flags().Lookup("test"); f != nil && f.Changed {
		ec.TestName = flags.TestName
	}
	return ec, nil
}

// Set stores the suite chain (arguments or --suite) and --test
func (cc *ContextCommand) Set(cmd *cobra.Command, args []string) error {
	suites := args
	if len(suites) == 0 {
		suites = cc.config.Flags.Suites
	}
	if len(suites) == 0 {
		return fmt.Errorf("no suite given: pass suite names as arguments or with --suite")
	}

	state := &domain.ContextState{
		Suites:   suites,
		TestName: cc.config.Flags.TestName,
	}
	if err := cc.storage.Save(state); err != nil {
		return fmt.Errorf("failed to save context: %w", err)
	}
	cc.formatter.PrintContext(state.Suites, state.TestName)
	return nil
}

// Show prints the stored context
func (cc *ContextCommand) Show(cmd *cobra.Command, args []string) error {
	state, err := cc.storage.Load()
	if err != nil {
		return err
	}
	cc.formatter.PrintContext(state.Suites, state.TestName)
	return nil
}

// Clear removes the stored context
func (cc *ContextCommand) Clear(cmd *cobra.Command, args []string) error {
	if err := cc.storage.Clear(); err != nil {
		return err
	}
	cc.formatter.PrintSuccess("Context cleared")
	return nil
}
