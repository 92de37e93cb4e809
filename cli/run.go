package cli

import (
	"github.com/spf13/cobra"
)

// A runCommand is used to create one of an executable's
// operations.
type runCommand struct {
	use     string
	short   string
	long    string
	args    cobra.PositionalArgs
	runFunc func(cmd *cobra.Command, args []string) error
}

var _ cobraCommand = (*runCommand)(nil)

// NewRunCommand constructs a new operation command. use follows
// cobra's convention: the first word is the command name, the rest
// documents its positional arguments, which args validates.
func NewRunCommand(use, short, long string, args cobra.PositionalArgs,
	runFunc func(cmd *cobra.Command, args []string) error) *cobra.Command {
	runCmd := &runCommand{
		use:     use,
		short:   short,
		long:    long,
		args:    args,
		runFunc: runFunc,
	}
	return runCmd.Build()
}

// Build constructs the cobra.Command according to the
// runCommand's settings.
func (runCmd *runCommand) Build() *cobra.Command {
	cmd := cobra.Command{
		Use:          runCmd.use,
		Short:        runCmd.short,
		Long:         runCmd.long,
		Args:         runCmd.args,
		RunE:         runCmd.runFunc,
		SilenceUsage: true,
	}
	return &cmd
}
