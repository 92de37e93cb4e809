package cmd

import (
	"os"
	"path/filepath"

	"github.com/porep-sys/porep-go/application"
	"github.com/porep-sys/porep-go/cli"
	"github.com/porep-sys/porep-go/crypto/hashers/sha256"
	"github.com/porep-sys/porep-go/merkletree"
	"github.com/spf13/cobra"
)

var initCmd = cli.NewInitCommand("porep", mkConfig)

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".", "Location of directory for storing generated files")
	initCmd.Flags().String("hasher", sha256.SHA256, "Compression function of the trees")
	initCmd.Flags().Int("fanout", merkletree.DefaultParams.Fanout, "Number of children per tree node")
	initCmd.Flags().Int("leaves", merkletree.DefaultParams.Leaves, "Number of leaves per tree")
	initCmd.Flags().Bool("catalog", false, "Record committed plots in a leveldb catalog")
}

func mkConfig(cmd *cobra.Command, args []string) error {
	dir := cmd.Flag("dir").Value.String()
	hasher, _ := cmd.Flags().GetString("hasher")
	fanout, _ := cmd.Flags().GetInt("fanout")
	leaves, _ := cmd.Flags().GetInt("leaves")
	catalog, _ := cmd.Flags().GetBool("catalog")

	catalogPath := ""
	if catalog {
		catalogPath = "catalog"
	}
	conf := application.NewConfig("plots", catalogPath, &application.LoggerConfig{
		Environment: "production",
		Path:        "porep.log",
	})
	conf.Hasher = hasher
	conf.Params = merkletree.Params{Fanout: fanout, Leaves: leaves}
	if err := conf.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(dir, conf.PlotDir), 0755); err != nil {
		return err
	}
	return application.SaveConfig(filepath.Join(dir, "config.toml"), conf)
}
