package resolver

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/seitarof/gen-res/internal/naming"
	"github.com/seitarof/gen-res/internal/schema"
)

var (
	// ErrDuplicateUnionTag is returned when two arms of one union derive the
	// same constructor tag.
	ErrDuplicateUnionTag = errors.New("duplicate union tag")
	// ErrInvalidUnionTag is returned when an arm derives a tag that is not an
	// identifier.
	ErrInvalidUnionTag = errors.New("invalid union tag")
)

// unwrapMarker tells the binding compiler not to box union values at the
// foreign boundary.
const unwrapMarker = "@unwrap"

// UnionArm is one constructor of a union: its tag and rendered payload type.
type UnionArm struct {
	Tag     string
	Payload string
}

// RenderUnion builds a polymorphic variant with one constructor per arm, in
// arm order. Payloads must already be rendered and cased.
func RenderUnion(arms []UnionArm) (string, error) {
	seen := make(map[string]int, len(arms))

	var b strings.Builder
	b.WriteString(unwrapMarker)
	b.WriteString(" [")
	for i, arm := range arms {
		if !isTag(arm.Tag) {
			return "", fmt.Errorf("%w: %q from arm %d", ErrInvalidUnionTag, arm.Tag, i)
		}
		if first, dup := seen[arm.Tag]; dup {
			return "", fmt.Errorf("%w: #%s from arms %d and %d", ErrDuplicateUnionTag, arm.Tag, first, i)
		}
		seen[arm.Tag] = i

		b.WriteString("|#")
		b.WriteString(arm.Tag)
		b.WriteString("(")
		b.WriteString(arm.Payload)
		b.WriteString(")")
	}
	b.WriteString("]")
	return b.String(), nil
}

// UnionTag derives the constructor tag for one union arm. Array arms are
// tagged Array plus the element's tag, every map is tagged Map, and an
// optional arm takes its inner tag. A union nested in a union has no tag.
func UnionTag(t schema.Type) (string, error) {
	switch t := t.(type) {
	case *schema.Primitive:
		return naming.UpperInitial(naming.LowerInitial(t.Name)), nil
	case *schema.Reference:
		return naming.UpperInitial(t.Name), nil
	case *schema.Array:
		elem, err := UnionTag(t.Element)
		if err != nil {
			return "", err
		}
		return "Array" + elem, nil
	case *schema.Optional:
		return UnionTag(t.Inner)
	case *schema.Map:
		return "Map", nil
	case *schema.Variant:
		return "", fmt.Errorf("%w: variant inside variant", ErrUnsupportedShape)
	case nil:
		return "", fmt.Errorf("%w: missing type", ErrUnknownKind)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownKind, t)
	}
}

func isTag(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
