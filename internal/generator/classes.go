package generator

import (
	"bytes"
	"fmt"
	"log"

	"github.com/seitarof/gen-res/internal/hierarchy"
	"github.com/seitarof/gen-res/internal/naming"
	"github.com/seitarof/gen-res/internal/schema"
)

type classData struct {
	Module  string
	Name    string
	Scope   string
	Methods []functionData
	Values  []valueData
}

type valueData struct {
	Name   string
	Type   string
	Native string
}

func (g *generatorImpl) emitClasses(buf *bytes.Buffer, module string, classes []schema.Class, idx *hierarchy.Index) error {
	data := make([]classData, 0, len(classes))
	for i := range classes {
		cd, err := g.buildClass(module, &classes[i], idx)
		if err != nil {
			return fmt.Errorf("class %q: %w", classes[i].Name, err)
		}
		data = append(data, cd)
	}
	return g.execute(buf, "classes", data)
}

func (g *generatorImpl) buildClass(module string, cls *schema.Class, idx *hierarchy.Index) (classData, error) {
	if len(cls.BaseTypes) > 1 {
		log.Printf("gen-res: warning: class %q declares %d base types, inherited members not emitted", cls.Name, len(cls.BaseTypes))
	}
	members, err := idx.Flatten(cls)
	if err != nil {
		return classData{}, err
	}

	typeName := naming.LowerInitial(cls.Name)
	cd := classData{
		Module: module,
		Name:   typeName,
		Scope:  cls.Name,
	}

	receiver := schema.Argument{Name: receiverName, Type: schema.Named(typeName)}
	for _, fn := range members.Functions {
		args := make([]schema.Argument, 0, len(fn.Arguments)+1)
		args = append(args, receiver)
		args = append(args, fn.Arguments...)

		fd, err := g.bindFunction(fn, args)
		if err != nil {
			return classData{}, fmt.Errorf("function %q: %w", fn.Name, err)
		}
		cd.Methods = append(cd.Methods, fd)
	}

	for _, group := range [][]schema.Constant{members.Constants, members.Properties} {
		for _, c := range group {
			vd, err := g.scopedValue(cls.Name, c)
			if err != nil {
				return classData{}, err
			}
			cd.Values = append(cd.Values, vd)
		}
	}
	return cd, nil
}

// scopedValue binds a class member under a name unique across classes.
func (g *generatorImpl) scopedValue(className string, c schema.Constant) (valueData, error) {
	res, err := g.resolver.Resolve(c.Type)
	if err != nil {
		return valueData{}, fmt.Errorf("member %q: %w", c.Name, err)
	}
	return valueData{
		Name:   c.Name + "_" + className,
		Type:   naming.LowerInitial(res.Type),
		Native: c.Name,
	}, nil
}
