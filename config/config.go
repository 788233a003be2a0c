// Package config is for app-wide settings unmarshalled from Viper (see
// cmd/rnaview-core), following the split jjti-repp's config package
// uses between CLI-bound flags and the domain options they configure.
package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/OOAAHH/RNAView/pairing"
	"github.com/OOAAHH/RNAView/pdbio"
)

// Config is the root-level settings struct: a mix of settings available
// from a bound YAML profile and command-line flags.
type Config struct {
	// Input is the path to the structure file (PDB or mmCIF). A
	// gzip-compressed PDB file (".gz") is read transparently; a
	// gzip-compressed mmCIF file is not decompressed.
	Input string `mapstructure:"input"`

	// Output is the destination path for the emitted record; "-" (the
	// default) means stdout.
	Output string `mapstructure:"output"`

	// Format selects the emitted surface: "text" or "json".
	Format string `mapstructure:"format"`

	// Legacy, when true, prepends the BPRS compatibility preamble to a
	// text-format emission.
	Legacy bool `mapstructure:"legacy"`

	// Options are the §6.3 recognised options governing upstream parsing
	// and BaseIndex numbering.
	Options pdbio.Options `mapstructure:"options"`
}

// NewConfig returns a new Config populated by Viper settings (bound
// flags and/or a loaded profile file).
func NewConfig() Config {
	c := Config{
		Format:  "text",
		Output:  "-",
		Options: pdbio.DefaultOptions(),
	}
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode config: %v", err)
	}
	return c
}

// Constants returns the pairing.Constants a Config run should use.
// There is no per-run override in §6.3, so this is always the
// package default; it is broken out as its own accessor so a future
// profile field has somewhere to plug in.
func (c Config) Constants() pairing.Constants {
	return pairing.Default
}
