package cli

import (
	"github.com/spf13/cobra"
)

// cobraCommand is used to implement any type of cobra command
// for the porep command-line tools.
type cobraCommand interface {
	Build() *cobra.Command
}
