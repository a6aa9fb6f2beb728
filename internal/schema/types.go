package schema

// Kind is the coarse-grained category of a type descriptor.
type Kind int

const (
	KindPrimitive Kind = iota
	KindReference
	KindArray
	KindOptional
	KindMap
	KindVariant
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindReference:
		return "reference"
	case KindArray:
		return "array"
	case KindOptional:
		return "optional"
	case KindMap:
		return "map"
	case KindVariant:
		return "variant"
	default:
		return "unknown"
	}
}

// Structural descriptor names as they appear in the schema document.
const (
	NameArray    = "array"
	NameOptional = "optional"
	NameMap      = "map"
	NameVariant  = "variant"
)

var primitiveNames = map[string]struct{}{
	"string":    {},
	"number":    {},
	"int32":     {},
	"boolean":   {},
	"undefined": {},
	"float":     {},
	"double":    {},
	"int64":     {},
	"uint8":     {},
	"uint16":    {},
	"uint32":    {},
	"this":      {},
	"unknown":   {},
}

// IsPrimitiveName reports whether name is one of the scalar schema types.
func IsPrimitiveName(name string) bool {
	_, ok := primitiveNames[name]
	return ok
}

// Type is one node of a type descriptor tree.
//
// The set of implementations is closed: *Primitive, *Reference, *Array,
// *Optional, *Map and *Variant. Consumers type-switch over them and treat
// anything else as an error.
type Type interface {
	Kind() Kind
	// TypeName returns the descriptor name as written in the schema.
	TypeName() string
	// Meta returns the descriptor flags carried alongside the shape.
	Meta() TypeMeta
	sealed()
}

// TypeMeta holds descriptor flags that never influence rendering.
type TypeMeta struct {
	IsBindType  bool
	IsErrorable bool
	ValidRange  *Range
}

// Range is the optional numeric bound attached to a descriptor.
type Range struct {
	Min *float64
	Max *float64
}

type typeBase struct {
	meta TypeMeta
}

func (b typeBase) Meta() TypeMeta { return b.meta }

func (typeBase) sealed() {}

// Primitive is a scalar such as string, int32 or boolean.
type Primitive struct {
	typeBase
	Name string
}

func (t *Primitive) Kind() Kind       { return KindPrimitive }
func (t *Primitive) TypeName() string { return t.Name }

// Reference names a class or interface declared elsewhere in the document.
type Reference struct {
	typeBase
	Name string
}

func (t *Reference) Kind() Kind       { return KindReference }
func (t *Reference) TypeName() string { return t.Name }

// Array is an ordered collection of Element.
type Array struct {
	typeBase
	Element Type
}

func (t *Array) Kind() Kind       { return KindArray }
func (t *Array) TypeName() string { return NameArray }

// Optional wraps exactly one inner descriptor.
type Optional struct {
	typeBase
	Inner Type
}

func (t *Optional) Kind() Kind       { return KindOptional }
func (t *Optional) TypeName() string { return NameOptional }

// Map is a keyed container.
type Map struct {
	typeBase
	Key   Type
	Value Type
}

func (t *Map) Kind() Kind       { return KindMap }
func (t *Map) TypeName() string { return NameMap }

// Variant is a tagged union. Arms keep their declaration order.
type Variant struct {
	typeBase
	Arms []Type
}

func (t *Variant) Kind() Kind       { return KindVariant }
func (t *Variant) TypeName() string { return NameVariant }

// Named returns a Primitive when name is a scalar type and a Reference otherwise.
func Named(name string) Type {
	if IsPrimitiveName(name) {
		return &Primitive{Name: name}
	}
	return &Reference{Name: name}
}

// ArrayOf returns an Array descriptor.
func ArrayOf(elem Type) *Array { return &Array{Element: elem} }

// OptionalOf returns an Optional descriptor.
func OptionalOf(inner Type) *Optional { return &Optional{Inner: inner} }

// MapOf returns a Map descriptor.
func MapOf(key, value Type) *Map { return &Map{Key: key, Value: value} }

// VariantOf returns a Variant descriptor with arms in the given order.
func VariantOf(arms ...Type) *Variant { return &Variant{Arms: arms} }
