package cmd

import (
	"github.com/porep-sys/porep-go/cli"
)

var versionCmd = cli.NewVersionCommand("porep")

func init() {
	RootCmd.AddCommand(versionCmd)
}
