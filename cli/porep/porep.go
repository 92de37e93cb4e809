// Executable proof-of-replication plotter and prover.
// Run "porep init" to create a configuration, "porep plot" to
// replicate a file and "porep prove" to answer a challenge.
package main

import (
	"github.com/porep-sys/porep-go/cli"
	"github.com/porep-sys/porep-go/cli/porep/internal/cmd"
)

func main() {
	cli.ExecuteRoot(cmd.RootCmd)
}
