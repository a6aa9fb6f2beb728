package generator

import (
	"bytes"
	"fmt"

	"github.com/seitarof/gen-res/internal/naming"
	"github.com/seitarof/gen-res/internal/schema"
)

type interfaceData struct {
	Name   string
	Fields []fieldData
}

type fieldData struct {
	Name     string
	Type     string
	Optional bool
}

func (g *generatorImpl) emitInterfaces(buf *bytes.Buffer, interfaces []schema.Interface) error {
	data := make([]interfaceData, 0, len(interfaces))
	for _, iface := range interfaces {
		id := interfaceData{Name: naming.LowerInitial(iface.Name)}
		for _, p := range iface.Properties {
			res, err := g.resolver.Resolve(p.Type)
			if err != nil {
				return fmt.Errorf("interface %q: property %q: %w", iface.Name, p.Name, err)
			}
			id.Fields = append(id.Fields, fieldData{
				Name:     naming.LowerInitial(p.Name),
				Type:     res.Type,
				Optional: res.Optional,
			})
		}
		data = append(data, id)
	}
	return g.execute(buf, "interfaces", data)
}
