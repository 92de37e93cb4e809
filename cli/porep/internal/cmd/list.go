package cmd

import (
	"fmt"

	"github.com/porep-sys/porep-go/cli"
	"github.com/spf13/cobra"
)

var listCmd = cli.NewRunCommand("list",
	"List the committed plots.",
	`List the root and input block offset of every committed plot,
in ascending root order.`,
	cobra.NoArgs, runList)

func init() {
	RootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	offsets, err := s.store.Offsets()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, root := range s.store.Roots() {
		fmt.Fprintf(out, "%s %d\n", root, offsets[root])
	}
	return nil
}
