package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-json"
)

// ErrMalformedType marks a type descriptor whose name and payload disagree.
var ErrMalformedType = errors.New("malformed type descriptor")

// Loader reads a schema document.
type Loader interface {
	Load(path string) (*Document, error)
}

type loaderImpl struct{}

// NewLoader returns a loader reading JSON documents from disk.
func NewLoader() Loader {
	return &loaderImpl{}
}

func (l *loaderImpl) Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(b))
}

// Decode parses one JSON schema document.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var w wireDocument
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return w.toDocument()
}

type wireType struct {
	Name         string      `json:"name"`
	IsBindType   bool        `json:"is_bind_type"`
	IsErrorable  bool        `json:"is_errorable"`
	ValidRange   *wireRange  `json:"valid_range"`
	KeyType      *wireType   `json:"key_type"`
	ValueType    *wireType   `json:"value_type"`
	ElementType  *wireType   `json:"element_type"`
	OptionalType *wireType   `json:"optional_type"`
	VariantTypes []*wireType `json:"variant_types"`
}

type wireRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type wireArgument struct {
	Name    string               `json:"name"`
	Type    *wireType            `json:"type"`
	Details *wireArgumentDetails `json:"details"`
}

type wireArgumentDetails struct {
	DefaultValue any `json:"default_value"`
	MaxValue     any `json:"max_value"`
	MinValue     any `json:"min_value"`
}

type wireFunction struct {
	Name          string         `json:"name"`
	Arguments     []wireArgument `json:"arguments"`
	ReturnType    *wireType      `json:"return_type"`
	IsConstructor bool           `json:"is_constructor"`
	IsStatic      bool           `json:"is_static"`
	Privilege     string         `json:"privilege"`
}

type wireConstant struct {
	Name       string    `json:"name"`
	Type       *wireType `json:"type"`
	Value      any       `json:"value"`
	IsReadOnly bool      `json:"is_read_only"`
	IsStatic   bool      `json:"is_static"`
}

type wireClass struct {
	Name       string         `json:"name"`
	Type       *wireType      `json:"type"`
	BaseTypes  []*wireType    `json:"base_types"`
	Constants  []wireConstant `json:"constants"`
	Functions  []wireFunction `json:"functions"`
	Properties []wireConstant `json:"properties"`
}

type wireInterface struct {
	Name       string         `json:"name"`
	Type       *wireType      `json:"type"`
	Properties []wireConstant `json:"properties"`
}

type wireEnum struct {
	Name      string         `json:"name"`
	Constants []wireConstant `json:"constants"`
}

type wireDocument struct {
	Name             string          `json:"name"`
	UUID             string          `json:"uuid"`
	Version          string          `json:"version"`
	ModuleType       string          `json:"module_type"`
	MinecraftVersion string          `json:"minecraft_version"`
	Classes          []wireClass     `json:"classes"`
	Interfaces       []wireInterface `json:"interfaces"`
	Enums            []wireEnum      `json:"enums"`
	Constants        []wireConstant  `json:"constants"`
	Functions        []wireFunction  `json:"functions"`
	Errors           []wireInterface `json:"errors"`
	Objects          []wireConstant  `json:"objects"`
}

func (w *wireDocument) toDocument() (*Document, error) {
	doc := &Document{
		Name:             w.Name,
		UUID:             w.UUID,
		Version:          w.Version,
		ModuleType:       w.ModuleType,
		MinecraftVersion: w.MinecraftVersion,
	}

	var err error
	for i, c := range w.Classes {
		cls, cerr := c.toClass(fmt.Sprintf("classes[%d]", i))
		if cerr != nil {
			return nil, cerr
		}
		doc.Classes = append(doc.Classes, cls)
	}
	if doc.Interfaces, err = toInterfaces(w.Interfaces, "interfaces"); err != nil {
		return nil, err
	}
	if doc.Errors, err = toInterfaces(w.Errors, "errors"); err != nil {
		return nil, err
	}
	for i, e := range w.Enums {
		path := fmt.Sprintf("enums[%d]", i)
		consts, cerr := toConstants(e.Constants, path+".constants")
		if cerr != nil {
			return nil, cerr
		}
		doc.Enums = append(doc.Enums, Enum{Name: e.Name, Constants: consts})
	}
	if doc.Constants, err = toConstants(w.Constants, "constants"); err != nil {
		return nil, err
	}
	if doc.Objects, err = toConstants(w.Objects, "objects"); err != nil {
		return nil, err
	}
	if doc.Functions, err = toFunctions(w.Functions, "functions"); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *wireClass) toClass(path string) (Class, error) {
	cls := Class{Name: c.Name}

	var err error
	if cls.Type, err = toOptionalType(c.Type, path+".type"); err != nil {
		return Class{}, err
	}
	for i, b := range c.BaseTypes {
		t, terr := toType(b, fmt.Sprintf("%s.base_types[%d]", path, i))
		if terr != nil {
			return Class{}, terr
		}
		cls.BaseTypes = append(cls.BaseTypes, t)
	}
	if cls.Constants, err = toConstants(c.Constants, path+".constants"); err != nil {
		return Class{}, err
	}
	if cls.Functions, err = toFunctions(c.Functions, path+".functions"); err != nil {
		return Class{}, err
	}
	if cls.Properties, err = toConstants(c.Properties, path+".properties"); err != nil {
		return Class{}, err
	}
	return cls, nil
}

func toInterfaces(in []wireInterface, path string) ([]Interface, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]Interface, 0, len(in))
	for i, w := range in {
		p := fmt.Sprintf("%s[%d]", path, i)
		t, err := toOptionalType(w.Type, p+".type")
		if err != nil {
			return nil, err
		}
		props, err := toConstants(w.Properties, p+".properties")
		if err != nil {
			return nil, err
		}
		out = append(out, Interface{Name: w.Name, Type: t, Properties: props})
	}
	return out, nil
}

func toConstants(in []wireConstant, path string) ([]Constant, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]Constant, 0, len(in))
	for i, w := range in {
		p := fmt.Sprintf("%s[%d]", path, i)
		t, err := toOptionalType(w.Type, p+".type")
		if err != nil {
			return nil, err
		}
		lit, err := toLiteral(w.Value)
		if err != nil {
			return nil, fmt.Errorf("%s.value: %w", p, err)
		}
		out = append(out, Constant{
			Name:       w.Name,
			Type:       t,
			Value:      lit,
			IsReadOnly: w.IsReadOnly,
			IsStatic:   w.IsStatic,
		})
	}
	return out, nil
}

func toFunctions(in []wireFunction, path string) ([]Function, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]Function, 0, len(in))
	for i, w := range in {
		p := fmt.Sprintf("%s[%d]", path, i)
		fn := Function{
			Name:          w.Name,
			IsConstructor: w.IsConstructor,
			IsStatic:      w.IsStatic,
			Privilege:     w.Privilege,
		}
		ret, err := toOptionalType(w.ReturnType, p+".return_type")
		if err != nil {
			return nil, err
		}
		fn.ReturnType = ret
		for j, a := range w.Arguments {
			ap := fmt.Sprintf("%s.arguments[%d]", p, j)
			t, err := toType(a.Type, ap+".type")
			if err != nil {
				return nil, err
			}
			arg := Argument{Name: a.Name, Type: t}
			if a.Details != nil {
				arg.Details = &ArgumentDetails{
					DefaultValue: a.Details.DefaultValue,
					MaxValue:     a.Details.MaxValue,
					MinValue:     a.Details.MinValue,
				}
			}
			fn.Arguments = append(fn.Arguments, arg)
		}
		out = append(out, fn)
	}
	return out, nil
}

func toOptionalType(w *wireType, path string) (Type, error) {
	if w == nil {
		return nil, nil
	}
	return toType(w, path)
}

func toType(w *wireType, path string) (Type, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: %s: missing", ErrMalformedType, path)
	}
	if w.Name == "" {
		return nil, fmt.Errorf("%w: %s: empty name", ErrMalformedType, path)
	}

	base := typeBase{meta: TypeMeta{IsBindType: w.IsBindType, IsErrorable: w.IsErrorable}}
	if w.ValidRange != nil {
		base.meta.ValidRange = &Range{Min: w.ValidRange.Min, Max: w.ValidRange.Max}
	}

	switch w.Name {
	case NameArray:
		if w.ElementType == nil {
			return nil, fmt.Errorf("%w: %s: array without element_type", ErrMalformedType, path)
		}
		elem, err := toType(w.ElementType, path+".element_type")
		if err != nil {
			return nil, err
		}
		return &Array{typeBase: base, Element: elem}, nil
	case NameOptional:
		if w.OptionalType == nil {
			return nil, fmt.Errorf("%w: %s: optional without optional_type", ErrMalformedType, path)
		}
		inner, err := toType(w.OptionalType, path+".optional_type")
		if err != nil {
			return nil, err
		}
		return &Optional{typeBase: base, Inner: inner}, nil
	case NameMap:
		if w.KeyType == nil || w.ValueType == nil {
			return nil, fmt.Errorf("%w: %s: map without key_type or value_type", ErrMalformedType, path)
		}
		key, err := toType(w.KeyType, path+".key_type")
		if err != nil {
			return nil, err
		}
		value, err := toType(w.ValueType, path+".value_type")
		if err != nil {
			return nil, err
		}
		return &Map{typeBase: base, Key: key, Value: value}, nil
	case NameVariant:
		if len(w.VariantTypes) == 0 {
			return nil, fmt.Errorf("%w: %s: variant without variant_types", ErrMalformedType, path)
		}
		arms := make([]Type, 0, len(w.VariantTypes))
		for i, a := range w.VariantTypes {
			arm, err := toType(a, fmt.Sprintf("%s.variant_types[%d]", path, i))
			if err != nil {
				return nil, err
			}
			arms = append(arms, arm)
		}
		return &Variant{typeBase: base, Arms: arms}, nil
	}

	if IsPrimitiveName(w.Name) {
		return &Primitive{typeBase: base, Name: w.Name}, nil
	}
	return &Reference{typeBase: base, Name: w.Name}, nil
}

func toLiteral(v any) (Literal, error) {
	switch val := v.(type) {
	case nil:
		return Literal{}, nil
	case string:
		return StringLiteral(val), nil
	case json.Number:
		return NumberLiteral(val.String()), nil
	case float64:
		return NumberLiteral(strconv.FormatFloat(val, 'g', -1, 64)), nil
	case bool:
		return Literal{Kind: LiteralBool, Text: strconv.FormatBool(val)}, nil
	default:
		return Literal{}, fmt.Errorf("unsupported literal of type %T", v)
	}
}
