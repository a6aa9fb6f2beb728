// Package resolver renders schema type descriptors as ReScript type expressions.
package resolver

import (
	"errors"
	"fmt"

	"github.com/seitarof/gen-res/internal/naming"
	"github.com/seitarof/gen-res/internal/schema"
)

var (
	// ErrUnsupportedShape is returned for descriptors that have no binding
	// form: optional of optional, array of optional and nested unions.
	ErrUnsupportedShape = errors.New("unsupported type shape")
	// ErrUnknownKind is returned for a nil or unrecognised descriptor.
	ErrUnknownKind = errors.New("unknown type descriptor")
)

// Resolved is one rendered type expression.
type Resolved struct {
	Type     string
	Optional bool
}

// Resolver maps type descriptors to type expressions.
type Resolver interface {
	Resolve(t schema.Type) (Resolved, error)
}

type resolverImpl struct{}

// New returns the default resolver.
func New() Resolver {
	return &resolverImpl{}
}

func (r *resolverImpl) Resolve(t schema.Type) (Resolved, error) {
	switch t := t.(type) {
	case *schema.Primitive:
		return Resolved{Type: naming.LowerInitial(t.Name)}, nil
	case *schema.Reference:
		return Resolved{Type: naming.LowerInitial(t.Name)}, nil
	case *schema.Array:
		if _, ok := t.Element.(*schema.Optional); ok {
			return Resolved{}, fmt.Errorf("%w: array of optional", ErrUnsupportedShape)
		}
		elem, err := r.Resolve(t.Element)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Type: "array<" + elem.Type + ">"}, nil
	case *schema.Optional:
		if _, ok := t.Inner.(*schema.Optional); ok {
			return Resolved{}, fmt.Errorf("%w: optional of optional", ErrUnsupportedShape)
		}
		inner, err := r.Resolve(t.Inner)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Type: naming.LowerInitial(inner.Type), Optional: true}, nil
	case *schema.Map:
		if t.Key == nil {
			return Resolved{}, fmt.Errorf("%w: map without key", ErrUnknownKind)
		}
		value, err := r.Resolve(t.Value)
		if err != nil {
			return Resolved{}, err
		}
		key := naming.LowerInitial(t.Key.TypeName())
		return Resolved{Type: naming.MapContainer + ".t<" + key + "," + value.Type + ">"}, nil
	case *schema.Variant:
		arms := make([]UnionArm, 0, len(t.Arms))
		for _, a := range t.Arms {
			tag, err := UnionTag(a)
			if err != nil {
				return Resolved{}, err
			}
			res, err := r.Resolve(a)
			if err != nil {
				return Resolved{}, err
			}
			arms = append(arms, UnionArm{Tag: tag, Payload: naming.LowerInitial(res.Type)})
		}
		union, err := RenderUnion(arms)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Type: union}, nil
	case nil:
		return Resolved{}, fmt.Errorf("%w: missing type", ErrUnknownKind)
	default:
		return Resolved{}, fmt.Errorf("%w: %T", ErrUnknownKind, t)
	}
}
