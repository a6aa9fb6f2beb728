package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config stores CLI options for a single generation run.
type Config struct {
	Input       string
	Output      string
	Module      string
	ConfigFile  string
	Verbose     bool
	ShowVersion bool
}

// OutputFilename returns destination file path for generator layer.
func (c *Config) OutputFilename() string {
	return c.Output
}

// ModuleName returns the configured native module, empty when unset.
func (c *Config) ModuleName() string {
	return c.Module
}

// FileConfig is the YAML configuration file layout.
type FileConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Module string `yaml:"module"`
}

// LoadConfigFile reads a YAML config file. Unknown keys are rejected; an
// empty file yields an empty config.
func LoadConfigFile(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fc := &FileConfig{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}
