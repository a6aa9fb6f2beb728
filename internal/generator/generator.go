package generator

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"

	"github.com/seitarof/gen-res/internal/hierarchy"
	"github.com/seitarof/gen-res/internal/resolver"
	"github.com/seitarof/gen-res/internal/schema"
)

//go:embed templates/*.res.tmpl
var templateFS embed.FS

// DefaultModule is the native module bound when neither the configuration
// nor the document names one.
const DefaultModule = "@minecraft/server"

// Generator generates binding source from a schema document.
type Generator interface {
	Generate(cfg Config, doc *schema.Document) error
}

// Config is the minimum config contract required by generator.
type Config interface {
	OutputFilename() string
	ModuleName() string
}

// FileWriter writes generated code to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type generatorImpl struct {
	resolver resolver.Resolver
	writer   FileWriter
	tmpl     *template.Template
}

type fileWriter struct{}

// New creates a binding generator.
func New(r resolver.Resolver, w FileWriter) Generator {
	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.res.tmpl"))
	return &generatorImpl{resolver: r, writer: w, tmpl: tmpl}
}

// NewFileWriter creates a plain file writer.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

func (g *generatorImpl) Generate(cfg Config, doc *schema.Document) error {
	if doc == nil {
		return fmt.Errorf("no schema document")
	}

	module := cfg.ModuleName()
	if module == "" {
		module = doc.Name
	}
	if module == "" {
		module = DefaultModule
	}

	out, err := g.render(module, doc)
	if err != nil {
		return err
	}
	if err := g.writer.Write(cfg.OutputFilename(), out); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (w *fileWriter) Write(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0o644)
}

// render emits classes, interfaces, enums and constants, in that order.
func (g *generatorImpl) render(module string, doc *schema.Document) ([]byte, error) {
	var buf bytes.Buffer

	idx := hierarchy.NewIndex(doc.Classes)
	if err := g.emitClasses(&buf, module, doc.Classes, idx); err != nil {
		return nil, err
	}
	if err := g.emitInterfaces(&buf, doc.Interfaces); err != nil {
		return nil, err
	}
	if err := g.emitEnums(&buf, doc.Enums); err != nil {
		return nil, err
	}
	if err := g.emitConstants(&buf, doc.Constants); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *generatorImpl) execute(buf *bytes.Buffer, name string, data any) error {
	if err := g.tmpl.ExecuteTemplate(buf, name, data); err != nil {
		return fmt.Errorf("template: %w", err)
	}
	return nil
}
