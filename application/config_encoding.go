package application

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/porep-sys/porep-go/utils"
)

// ErrUnknownConfigKey indicates a config file setting a key that no
// field of the config reads, usually a misspelled option.
var ErrUnknownConfigKey = errors.New("[application] Unknown config key")

// ConfigLoader reads and writes an AppConfig in one encoding.
type ConfigLoader interface {
	Encode(conf AppConfig) error
	Decode(conf AppConfig) error
}

var configEncodings = map[string]ConfigLoader{
	"toml": new(TomlLoader),
}

// newConfigLoader returns the loader registered for encoding,
// falling back to TOML.
func newConfigLoader(encoding string) ConfigLoader {
	if loader, ok := configEncodings[encoding]; ok {
		return loader
	}
	return configEncodings["toml"]
}

// TomlLoader reads and writes toml-encoded configurations.
type TomlLoader struct{}

var _ ConfigLoader = (*TomlLoader)(nil)

// Encode writes conf to its path. The file must not exist yet.
func (ld *TomlLoader) Encode(conf AppConfig) error {
	var buf bytes.Buffer
	e := toml.NewEncoder(&buf)
	e.Indent = ""
	if err := e.Encode(conf); err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	return utils.WriteFile(conf.GetPath(), buf.Bytes(), 0644)
}

// Decode fills conf from the file at its path. Keys that map to no
// config field are rejected so a misspelled option doesn't silently
// fall back to its default.
func (ld *TomlLoader) Decode(conf AppConfig) error {
	md, err := toml.DecodeFile(conf.GetPath(), conf)
	if err != nil {
		return fmt.Errorf("cannot load config %s: %w", conf.GetPath(), err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w in %s: %s", ErrUnknownConfigKey,
			conf.GetPath(), strings.Join(keys, ", "))
	}
	return nil
}
