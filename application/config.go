package application

import (
	"errors"
	"fmt"

	"github.com/porep-sys/porep-go/crypto"
	"github.com/porep-sys/porep-go/crypto/hashers"
	"github.com/porep-sys/porep-go/merkletree"
	"github.com/porep-sys/porep-go/utils"

	// compression functions selectable from the config file
	_ "github.com/porep-sys/porep-go/crypto/hashers/blake3"
	"github.com/porep-sys/porep-go/crypto/hashers/sha256"
	_ "github.com/porep-sys/porep-go/crypto/hashers/shake128"
)

// ErrMissingPlotDir indicates a configuration without a plot directory.
var ErrMissingPlotDir = errors.New("[application] Missing plot directory")

// AppConfig provides an abstraction of the
// underlying encoding format for the configs.
type AppConfig interface {
	Load(file, encoding string) error
	Save() error
	GetPath() string
}

// Config contains the configuration of a plotter: where the plots
// live, the optional catalog database, the tree shape, the
// compression function and the logger.
type Config struct {
	// PlotDir is the directory holding one file per committed plot.
	PlotDir string `toml:"plot_dir"`
	// CatalogPath is the leveldb directory of the plot catalog.
	// The catalog is disabled if empty.
	CatalogPath string `toml:"catalog_path,omitempty"`
	// Hasher is the id of a registered compression function.
	Hasher string `toml:"hasher"`
	merkletree.Params
	Logger *LoggerConfig `toml:"logger"`

	path     string
	encoding string
	loader   ConfigLoader
}

var _ AppConfig = (*Config)(nil)

// NewConfig returns a configuration with the reference tree shape and
// compression function, writing plots to plotDir.
func NewConfig(plotDir, catalogPath string, logger *LoggerConfig) *Config {
	return &Config{
		PlotDir:     plotDir,
		CatalogPath: catalogPath,
		Hasher:      sha256.SHA256,
		Params:      merkletree.DefaultParams,
		Logger:      logger,
	}
}

// Load initializes the config from file using the loader of the given
// encoding, resolves its relative paths against the directory of file
// and validates it.
func (conf *Config) Load(file, encoding string) error {
	conf.path = file
	conf.encoding = encoding
	conf.loader = newConfigLoader(encoding)
	if err := conf.loader.Decode(conf); err != nil {
		return err
	}
	if conf.PlotDir == "" {
		return ErrMissingPlotDir
	}
	conf.PlotDir = utils.ResolvePath(conf.PlotDir, file)
	if conf.CatalogPath != "" {
		conf.CatalogPath = utils.ResolvePath(conf.CatalogPath, file)
	}
	if conf.Logger == nil {
		conf.Logger = &LoggerConfig{Environment: "production"}
	}
	if conf.Logger.Path != "" {
		conf.Logger.Path = utils.ResolvePath(conf.Logger.Path, file)
	}
	return conf.Validate()
}

// Save writes the config to its path. It never overwrites an
// existing file.
func (conf *Config) Save() error {
	if conf.loader == nil {
		conf.loader = newConfigLoader(conf.encoding)
	}
	return conf.loader.Encode(conf)
}

// GetPath returns the path of the config file.
func (conf *Config) GetPath() string {
	return conf.path
}

// Validate checks the tree shape and the compression function.
func (conf *Config) Validate() error {
	if err := conf.Params.Validate(); err != nil {
		return err
	}
	h, err := conf.Compressor()
	if err != nil {
		return err
	}
	if h.Size() != crypto.HashSizeByte {
		return fmt.Errorf("hasher %s outputs %d bytes, need %d",
			h.ID(), h.Size(), crypto.HashSizeByte)
	}
	return nil
}

// Compressor returns the configured compression function.
func (conf *Config) Compressor() (hashers.Compressor, error) {
	return hashers.NewCompressor(conf.Hasher)
}

// LoadConfig reads and validates the toml config at file.
func LoadConfig(file string) (*Config, error) {
	conf := new(Config)
	if err := conf.Load(file, "toml"); err != nil {
		return nil, err
	}
	return conf, nil
}

// SaveConfig writes conf to file in toml encoding.
func SaveConfig(file string, conf *Config) error {
	conf.path = file
	conf.encoding = "toml"
	conf.loader = newConfigLoader("toml")
	return conf.Save()
}
