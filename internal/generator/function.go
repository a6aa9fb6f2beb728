package generator

import (
	"fmt"

	"github.com/seitarof/gen-res/internal/naming"
	"github.com/seitarof/gen-res/internal/schema"
)

type functionData struct {
	Name   string
	Params []string
	Return string
	Native string
}

// receiverName is the synthetic first argument of every method binding.
const receiverName = "bind"

var unitArgument = schema.Argument{Name: "unit", Type: schema.Named("unit")}

// padArguments appends a unit argument to a single-argument list. Lists of
// any other length are returned unchanged.
func padArguments(args []schema.Argument) []schema.Argument {
	if len(args) != 1 {
		return args
	}
	return []schema.Argument{args[0], unitArgument}
}

// bindFunction renders one external call. The local name is cased; the
// native name is kept verbatim as the linkage target.
func (g *generatorImpl) bindFunction(fn schema.Function, args []schema.Argument) (functionData, error) {
	args = padArguments(args)

	params := make([]string, 0, len(args))
	for _, a := range args {
		res, err := g.resolver.Resolve(a.Type)
		if err != nil {
			return functionData{}, fmt.Errorf("argument %q: %w", a.Name, err)
		}
		params = append(params, naming.LowerInitial(res.Type))
	}

	ret := "unit"
	if fn.ReturnType != nil {
		res, err := g.resolver.Resolve(fn.ReturnType)
		if err != nil {
			return functionData{}, fmt.Errorf("return type: %w", err)
		}
		ret = naming.LowerInitial(res.Type)
	}

	return functionData{
		Name:   naming.LowerInitial(fn.Name),
		Params: params,
		Return: ret,
		Native: fn.Name,
	}, nil
}
