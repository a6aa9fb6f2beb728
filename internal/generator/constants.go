package generator

import (
	"bytes"
	"fmt"

	"github.com/seitarof/gen-res/internal/naming"
	"github.com/seitarof/gen-res/internal/schema"
)

type constantData struct {
	Name   string
	Type   string
	Native string
}

func (g *generatorImpl) emitConstants(buf *bytes.Buffer, constants []schema.Constant) error {
	data := make([]constantData, 0, len(constants))
	for _, c := range constants {
		res, err := g.resolver.Resolve(c.Type)
		if err != nil {
			return fmt.Errorf("constant %q: %w", c.Name, err)
		}
		data = append(data, constantData{
			Name:   naming.LowerInitial(c.Name),
			Type:   naming.LowerInitial(res.Type),
			Native: c.Name,
		})
	}
	return g.execute(buf, "constants", data)
}
