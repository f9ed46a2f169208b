package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the file names and behavior overridable from a TOML config
// file or CLI flags. The fixed defaults match the original fixed-filename
// interface exactly, so a bare invocation with no config and no flags
// behaves identically to it.
type Config struct {
	IO struct {
		InputFile      string `toml:"input_file"`
		HexOutputFile  string `toml:"hex_output_file"`
		SymbolsFile    string `toml:"symbols_file"`
		ReferencesFile string `toml:"references_file"`
	} `toml:"io"`

	Output struct {
		BytesPerLine int `toml:"bytes_per_line"`
	} `toml:"output"`

	Diagnostics struct {
		ColorOutput bool `toml:"color_output"`
		Verbose     bool `toml:"verbose"`
	} `toml:"diagnostics"`
}

// DefaultConfig returns the original fixed-filename configuration:
// programa.asm in, programa.hex/simbolos.txt/referencias.txt out, a 16-byte
// hex dump wrap width, no color, not verbose.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.IO.InputFile = "programa.asm"
	cfg.IO.HexOutputFile = "programa.hex"
	cfg.IO.SymbolsFile = "simbolos.txt"
	cfg.IO.ReferencesFile = "referencias.txt"
	cfg.Output.BytesPerLine = 16
	cfg.Diagnostics.ColorOutput = false
	cfg.Diagnostics.Verbose = false
	return cfg
}

// LoadConfig reads path as TOML over DefaultConfig, so a partial file only
// overrides the keys it sets. A missing path is not an error: the defaults
// are returned unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
