package cmd

import (
	"fmt"

	"github.com/porep-sys/porep-go/cli"
	"github.com/porep-sys/porep-go/crypto"
	"github.com/spf13/cobra"
)

var proveCmd = cli.NewRunCommand("prove",
	"Answer a challenge with a proof.",
	`Answer a challenge with a proof.

The challenge selects the plot whose root is nearest to it and the
leaf whose path is returned. Without --challenge or --random the
all-zero challenge is used.`,
	cobra.NoArgs, runProve)

func init() {
	RootCmd.AddCommand(proveCmd)
	proveCmd.Flags().String("challenge", "", "Hex encoded challenge, all-zero if empty")
	proveCmd.Flags().Bool("random", false, "Draw a random challenge")
}

func runProve(cmd *cobra.Command, args []string) error {
	challenge, err := challengeFlag(cmd, "challenge")
	if err != nil {
		return err
	}
	if random, _ := cmd.Flags().GetBool("random"); random {
		if challenge, err = crypto.RandomDigest(); err != nil {
			return err
		}
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	p, err := s.store.GenerateProof(challenge)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "challenge %s\n", challenge)
	fmt.Fprintf(out, "root %s\n", p.Root())
	fmt.Fprintf(out, "quality %f\n", p.Quality(challenge))
	fmt.Fprintf(out, "proof %s\n", p)
	return nil
}
