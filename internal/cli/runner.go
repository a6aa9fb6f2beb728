package cli

import (
	"fmt"
	"log"

	"github.com/seitarof/gen-res/internal/generator"
	"github.com/seitarof/gen-res/internal/schema"
)

// Runner orchestrates loader/generator layers.
type Runner interface {
	Run(cfg *Config) error
}

type runnerImpl struct {
	loader    schema.Loader
	generator generator.Generator
}

// NewRunner creates a default runner implementation.
func NewRunner(l schema.Loader, g generator.Generator) Runner {
	return &runnerImpl{
		loader:    l,
		generator: g,
	}
}

// Run executes a single generation cycle.
func (r *runnerImpl) Run(cfg *Config) error {
	doc, err := r.loader.Load(cfg.Input)
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	if err := r.generator.Generate(cfg, doc); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if cfg.Verbose {
		logSummary(doc, cfg.Output)
	}
	return nil
}

func logSummary(doc *schema.Document, output string) {
	log.Printf(
		"gen-res: generated %d classes, %d interfaces, %d enums, %d constants -> %s",
		len(doc.Classes),
		len(doc.Interfaces),
		len(doc.Enums),
		len(doc.Constants),
		output,
	)
}
