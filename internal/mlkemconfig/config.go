// Package mlkemconfig loads cmd/mlkemtool's YAML configuration file
// (spec.md's ambient configuration layer, expanded in SPEC_FULL.md §1.3),
// using gopkg.in/yaml.v3 the way the rest of the pack's CLI tooling
// parses its config files.
package mlkemconfig

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is mlkemtool's on-disk configuration.
type Config struct {
	// ParameterSet names the default FIPS 203 parameter set: one of
	// "ML-KEM-512", "ML-KEM-768" or "ML-KEM-1024".
	ParameterSet string `yaml:"parameter_set"`

	// LogLevel is a zerolog level name: "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level"`

	// KATDirectory names a directory of *.kat files. mlkemtool does not
	// read this field: `mlkemtool verify` always takes the KAT file path as
	// its command-line argument.
	KATDirectory string `yaml:"kat_directory"`
}

// Default returns the configuration mlkemtool falls back to when no
// config file is given.
func Default() Config {
	return Config{
		ParameterSet: "ML-KEM-768",
		LogLevel:     "info",
		KATDirectory: "./kats",
	}
}

// Load reads and parses a YAML config file at path, starting from
// Default() so an omitted field keeps its default rather than zeroing
// out.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "mlkemconfig: reading %s", path)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "mlkemconfig: parsing %s", path)
	}
	return cfg, nil
}
