package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	defaultInput  = "types.json"
	defaultOutput = "types.res"
)

// ParseArgs parses command line arguments into Config. Values from a
// --config file fill in every flag not given explicitly.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}

	fs := pflag.NewFlagSet("gen-res", pflag.ContinueOnError)
	fs.StringVarP(&cfg.Input, "input", "i", defaultInput, "schema document path")
	fs.StringVarP(&cfg.Output, "output", "o", defaultOutput, "generated bindings path")
	fs.StringVarP(&cfg.Module, "module", "m", "", "native module name (default: document name)")
	fs.StringVarP(&cfg.ConfigFile, "config", "c", "", "YAML config file")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "log generation summary")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if cfg.ConfigFile != "" {
		fc, err := LoadConfigFile(cfg.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		applyFileConfig(fs, cfg, fc)
	}

	if strings.TrimSpace(cfg.Input) == "" {
		return nil, fmt.Errorf("--input is required")
	}
	if strings.TrimSpace(cfg.Output) == "" {
		return nil, fmt.Errorf("--output is required")
	}
	return cfg, nil
}

func applyFileConfig(fs *pflag.FlagSet, cfg *Config, fc *FileConfig) {
	if fc.Input != "" && !fs.Changed("input") {
		cfg.Input = fc.Input
	}
	if fc.Output != "" && !fs.Changed("output") {
		cfg.Output = fc.Output
	}
	if fc.Module != "" && !fs.Changed("module") {
		cfg.Module = fc.Module
	}
}
