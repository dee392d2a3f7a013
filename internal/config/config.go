// internal/config/config.go
package config

import (
	"gopkg.in/yaml.v3"
	"os"

	"github.com/kgeorge/pdflines/internal/tokenizer"
)

const (
	DefaultInputFile = "file.pdf"
	DefaultEngine    = "fitz"
)

type Config struct {
	InputFile  string `yaml:"input_file"`
	Separators string `yaml:"separators"`
	Engine     string `yaml:"engine"`
	Normalize  bool   `yaml:"normalize"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		InputFile:  DefaultInputFile,
		Separators: tokenizer.DefaultSeparators,
		Engine:     DefaultEngine,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Separators is a pointer so that an explicit empty string in the
	// file is kept and rejected later as invalid configuration, rather
	// than being confused with the key not being set at all.
	var raw struct {
		InputFile  string  `yaml:"input_file"`
		Separators *string `yaml:"separators"`
		Engine     string  `yaml:"engine"`
		Normalize  bool    `yaml:"normalize"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	cfg := Config{
		InputFile:  raw.InputFile,
		Separators: tokenizer.DefaultSeparators,
		Engine:     raw.Engine,
		Normalize:  raw.Normalize,
	}
	if raw.Separators != nil {
		cfg.Separators = *raw.Separators
	}
	if cfg.InputFile == "" {
		cfg.InputFile = DefaultInputFile
	}
	if cfg.Engine == "" {
		cfg.Engine = DefaultEngine
	}

	return &cfg, nil
}
