package generator

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/seitarof/gen-res/internal/naming"
	"github.com/seitarof/gen-res/internal/schema"
)

// ErrMissingEnumValue is returned for an enum member declared without a value.
var ErrMissingEnumValue = errors.New("enum member without value")

type enumData struct {
	Name    string
	Members []memberData
}

type memberData struct {
	Key   string
	Value string
}

func (g *generatorImpl) emitEnums(buf *bytes.Buffer, enums []schema.Enum) error {
	data := make([]enumData, 0, len(enums))
	for _, e := range enums {
		ed := enumData{Name: naming.LowerInitial(e.Name)}
		for _, c := range e.Constants {
			if c.Value.Kind == schema.LiteralNone {
				return fmt.Errorf("enum %q: member %q: %w", e.Name, c.Name, ErrMissingEnumValue)
			}
			ed.Members = append(ed.Members, memberData{
				Key:   strconv.Quote(c.Name),
				Value: c.Value.Render(),
			})
		}
		data = append(data, ed)
	}
	return g.execute(buf, "enums", data)
}
