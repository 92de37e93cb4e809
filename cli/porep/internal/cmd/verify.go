package cmd

import (
	"errors"
	"fmt"

	"github.com/porep-sys/porep-go/cli"
	"github.com/porep-sys/porep-go/merkletree"
	"github.com/spf13/cobra"
)

var errProofRejected = errors.New("proof rejected")

var verifyCmd = cli.NewRunCommand("verify",
	"Check a proof against a challenge.",
	`Check a proof against a challenge.

Only the tree shape and compression function of the config are used;
the plot directory is not read. Without --challenge the all-zero
challenge is used.`,
	cobra.NoArgs, runVerify)

func init() {
	RootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().String("proof", "", "Hex encoded proof, as printed by prove")
	verifyCmd.Flags().String("challenge", "", "Hex encoded challenge, all-zero if empty")
	verifyCmd.MarkFlagRequired("proof")
}

func runVerify(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	hasher, err := conf.Compressor()
	if err != nil {
		return err
	}
	challenge, err := challengeFlag(cmd, "challenge")
	if err != nil {
		return err
	}
	p, err := merkletree.ParseProof(cmd.Flag("proof").Value.String(), conf.Params)
	if err != nil {
		return err
	}
	if !merkletree.Verify(p, challenge, conf.Params, hasher) {
		return errProofRejected
	}
	fmt.Fprintf(cmd.OutOrStdout(), "valid root %s\n", p.Root())
	return nil
}
