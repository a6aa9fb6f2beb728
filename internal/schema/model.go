package schema

import "strconv"

// Document is the root of one native scripting API description.
//
// Functions, Errors and Objects are decoded but never emitted.
type Document struct {
	Name             string
	UUID             string
	Version          string
	ModuleType       string
	MinecraftVersion string

	Classes    []Class
	Interfaces []Interface
	Enums      []Enum
	Constants  []Constant
	Functions  []Function
	Errors     []Interface
	Objects    []Constant
}

// Class is a native class with its own declared members.
type Class struct {
	Name       string
	Type       Type
	BaseTypes  []Type
	Constants  []Constant
	Functions  []Function
	Properties []Constant
}

// Interface is a structural record type.
type Interface struct {
	Name       string
	Type       Type
	Properties []Constant
}

// Enum is an ordered list of named literal values.
type Enum struct {
	Name      string
	Constants []Constant
}

// Constant is a named, typed value. Class properties use the same shape.
type Constant struct {
	Name       string
	Type       Type
	Value      Literal
	IsReadOnly bool
	IsStatic   bool
}

// Function is a native function or method.
type Function struct {
	Name          string
	Arguments     []Argument
	ReturnType    Type
	IsConstructor bool
	IsStatic      bool
	Privilege     string
}

// Argument is one declared function parameter.
type Argument struct {
	Name    string
	Type    Type
	Details *ArgumentDetails
}

// ArgumentDetails is parameter metadata kept verbatim from the document.
type ArgumentDetails struct {
	DefaultValue any
	MaxValue     any
	MinValue     any
}

// LiteralKind identifies the JSON token a Literal was decoded from.
type LiteralKind int

const (
	LiteralNone LiteralKind = iota
	LiteralString
	LiteralNumber
	LiteralBool
)

// Literal is a constant value. Numbers keep their exact JSON text.
type Literal struct {
	Kind LiteralKind
	Text string
}

// StringLiteral returns a string-valued Literal.
func StringLiteral(s string) Literal { return Literal{Kind: LiteralString, Text: s} }

// NumberLiteral returns a number-valued Literal from its JSON text.
func NumberLiteral(text string) Literal { return Literal{Kind: LiteralNumber, Text: text} }

// Render returns the literal as it appears in generated source.
func (l Literal) Render() string {
	switch l.Kind {
	case LiteralString:
		return strconv.Quote(l.Text)
	case LiteralNumber, LiteralBool:
		return l.Text
	default:
		return "null"
	}
}
