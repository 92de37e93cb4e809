package application

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/porep-sys/porep-go/merkletree"
	"github.com/porep-sys/porep-go/utils"
)

func TestSaveLoadConfig(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.toml")
	conf := NewConfig("plot", "catalog.db", &LoggerConfig{
		Environment: "development",
		Path:        "porep.log",
	})
	if err := SaveConfig(file, conf); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if got.PlotDir != filepath.Join(dir, "plot") {
		t.Error("Plot dir must be resolved against the config file", got.PlotDir)
	}
	if got.CatalogPath != filepath.Join(dir, "catalog.db") {
		t.Error("Catalog path must be resolved against the config file", got.CatalogPath)
	}
	if got.Logger.Path != filepath.Join(dir, "porep.log") {
		t.Error("Log path must be resolved against the config file", got.Logger.Path)
	}
	if got.Params != merkletree.DefaultParams {
		t.Error("Unexpected params", got.Params)
	}
	if got.Hasher != conf.Hasher || got.GetPath() != file {
		t.Error("Unexpected hasher or path")
	}
	h, err := got.Compressor()
	if err != nil {
		t.Fatal(err)
	}
	if h.ID() != conf.Hasher {
		t.Error("Wrong compressor", h.ID())
	}

	if err := SaveConfig(file, conf); !errors.Is(err, utils.ErrFileExists) {
		t.Error("Expect ErrFileExists, got", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	file := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestLoadConfigDefaults(t *testing.T) {
	file := writeConfig(t, `
plot_dir = "/var/plot"
hasher = "BLAKE3"
fanout = 4
leaves = 64
`)
	conf, err := LoadConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if conf.PlotDir != "/var/plot" || conf.CatalogPath != "" {
		t.Error("Unexpected paths", conf.PlotDir, conf.CatalogPath)
	}
	if conf.Fanout != 4 || conf.Leaves != 64 {
		t.Error("Unexpected params", conf.Params)
	}
	if conf.Logger == nil || conf.Logger.Environment != "production" {
		t.Error("Expect a default production logger")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	for _, tc := range []struct {
		content string
		err     error
	}{
		{"hasher = \"SHA-256\"\nfanout = 2\nleaves = 64\n", ErrMissingPlotDir},
		{"plot_dir = \"p\"\nhasher = \"SHA-256\"\nfanout = 2\nleaves = 48\n", merkletree.ErrInvalidParams},
		{"plot_dir = \"p\"\nhasher = \"SHA-256\"\nfanout = 2\nleafs = 64\n", ErrUnknownConfigKey},
		{"plot_dir = \"p\"\nhasher = \"SHA-256\"\n[logger]\nenvironment = \"production\"\n", ErrUnknownConfigKey},
	} {
		if _, err := LoadConfig(writeConfig(t, tc.content)); !errors.Is(err, tc.err) {
			t.Error("Expect", tc.err, "got", err)
		}
	}
	if _, err := LoadConfig(writeConfig(t, "plot_dir = \"p\"\nhasher = \"MD5\"\nfanout = 2\nleaves = 64\n")); err == nil {
		t.Error("Expect an error for an unknown hasher")
	}
	if _, err := LoadConfig(writeConfig(t, "plot_dir = [")); err == nil {
		t.Error("Expect a decoding error")
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expect an error for a missing file")
	}
}
