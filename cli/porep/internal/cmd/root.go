// Package cmd implements the CLI commands of the porep plotter.
package cmd

import (
	"github.com/porep-sys/porep-go/cli"
)

// RootCmd represents the base "porep" command when called without any subcommands.
var RootCmd = cli.NewRootCommand("porep",
	"Proof-of-replication plotter and prover",
	`porep replicates input data into encoded merkle trees, one plot
file per tree, and answers challenges with proofs of storage.`)
