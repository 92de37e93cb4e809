package cmd

import (
	"fmt"

	"github.com/porep-sys/porep-go/cli"
	"github.com/spf13/cobra"
)

var plotCmd = cli.NewRunCommand("plot <file>",
	"Replicate a file into plots.",
	`Replicate a file into plots.

The file is cut into blocks of leaves*32 bytes. Every full block is
built into a tree, encoded, and written to the plot directory under
its root. Blocks whose root already exists are reported as conflicts.`,
	cobra.ExactArgs(1), runPlot)

func init() {
	RootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.store.PlotFile(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "plots %d conflicts %d\n",
		s.store.Plots(), s.store.Conflicts())
	return nil
}
