package cmd

import (
	"fmt"

	"github.com/porep-sys/porep-go/cli"
	"github.com/porep-sys/porep-go/crypto"
	"github.com/spf13/cobra"
)

var inspectCmd = cli.NewRunCommand("inspect <root>",
	"Print the content of a plot.",
	`Print the header and every encoded node of the plot named root.`,
	cobra.ExactArgs(1), runInspect)

func init() {
	RootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	root, err := crypto.DigestFromHex(args[0])
	if err != nil {
		return err
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	tree, err := s.store.Tree(root)
	if err != nil {
		return err
	}
	params := tree.Params()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "offset %d\n", tree.Offset())
	fmt.Fprintf(out, "fanout %d leaves %d nodes %d\n",
		params.Fanout, params.Leaves, params.NodeCount())
	for i, n := range tree.Nodes() {
		fmt.Fprintf(out, "%4d %s\n", i, n)
	}
	return nil
}
