package cmd

import (
	"fmt"

	"github.com/porep-sys/porep-go/application"
	"github.com/porep-sys/porep-go/crypto"
	"github.com/porep-sys/porep-go/plot"
	"github.com/porep-sys/porep-go/storage/kv"
	"github.com/porep-sys/porep-go/storage/kv/leveldbkv"
	"github.com/spf13/cobra"
)

const configMissingUsage = `
Couldn't load the config file.

To create a valid config, run
  porep init
which writes config.toml and a plot directory to the current working
directory. Use --config to point to a config stored elsewhere.
`

func loadConfig(cmd *cobra.Command) (*application.Config, error) {
	file := cmd.Flag("config").Value.String()
	conf, err := application.LoadConfig(file)
	if err != nil {
		return nil, fmt.Errorf("%v\n%s", err, configMissingUsage)
	}
	return conf, nil
}

// A session bundles the store of a loaded config with the
// resources it holds open.
type session struct {
	conf    *application.Config
	logger  *application.Logger
	catalog kv.DB
	store   *plot.Store
}

func openSession(cmd *cobra.Command) (*session, error) {
	conf, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	hasher, err := conf.Compressor()
	if err != nil {
		return nil, err
	}
	logger, err := application.NewLogger(conf.Logger)
	if err != nil {
		return nil, err
	}
	s := &session{conf: conf, logger: logger}
	opts := []plot.Option{plot.WithLogger(logger)}
	if conf.CatalogPath != "" {
		db, err := leveldbkv.OpenDB(conf.CatalogPath)
		if err != nil {
			return nil, err
		}
		s.catalog = db
		opts = append(opts, plot.WithCatalog(db))
	}
	s.store, err = plot.NewStore(plot.Config{
		Dir:    conf.PlotDir,
		Params: conf.Params,
		Hasher: hasher,
	}, opts...)
	if err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *session) Close() {
	if s.catalog != nil {
		if err := s.catalog.Close(); err != nil {
			s.logger.Error("cannot close catalog", "error", err)
		}
	}
	s.logger.Sync()
}

// challengeFlag reads a hex challenge from the named flag. An empty
// flag selects the all-zero challenge.
func challengeFlag(cmd *cobra.Command, name string) (crypto.Digest, error) {
	s := cmd.Flag(name).Value.String()
	if s == "" {
		return crypto.ZeroChallenge, nil
	}
	return crypto.DigestFromHex(s)
}
