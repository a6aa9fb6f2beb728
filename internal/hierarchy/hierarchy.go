// Package hierarchy resolves single-inheritance class members.
package hierarchy

import (
	"errors"
	"fmt"
	"slices"

	"github.com/seitarof/gen-res/internal/schema"
)

var (
	// ErrUnresolvedBase is returned when a base class is not in the index.
	ErrUnresolvedBase = errors.New("unresolved base class")
	// ErrInheritanceCycle is returned when a base chain leads back to a class
	// already being flattened.
	ErrInheritanceCycle = errors.New("inheritance cycle")
)

// Members is the member view of one class: its own declarations followed by
// everything inherited through its single base class.
type Members struct {
	Constants  []schema.Constant
	Functions  []schema.Function
	Properties []schema.Constant
}

// Index maps class names to class records. It is read-only once built.
type Index struct {
	byName map[string]*schema.Class
}

// NewIndex indexes classes by name. A later class replaces an earlier one
// with the same name.
func NewIndex(classes []schema.Class) *Index {
	byName := make(map[string]*schema.Class, len(classes))
	for i := range classes {
		byName[classes[i].Name] = &classes[i]
	}
	return &Index{byName: byName}
}

// Flatten returns c's own members followed by a copy of its base class's
// flattened members. Classes with zero or several base types keep only their
// own members. Neither c nor any indexed class is modified.
func (x *Index) Flatten(c *schema.Class) (Members, error) {
	return x.flatten(c, make(map[string]struct{}))
}

func (x *Index) flatten(c *schema.Class, visiting map[string]struct{}) (Members, error) {
	m := Members{
		Constants:  slices.Clone(c.Constants),
		Functions:  slices.Clone(c.Functions),
		Properties: slices.Clone(c.Properties),
	}
	if len(c.BaseTypes) != 1 {
		return m, nil
	}

	if _, ok := visiting[c.Name]; ok {
		return Members{}, fmt.Errorf("%w: %q", ErrInheritanceCycle, c.Name)
	}
	visiting[c.Name] = struct{}{}

	baseName := c.BaseTypes[0].TypeName()
	base, ok := x.byName[baseName]
	if !ok {
		return Members{}, fmt.Errorf("%w: %q (base of %q)", ErrUnresolvedBase, baseName, c.Name)
	}
	inherited, err := x.flatten(base, visiting)
	if err != nil {
		return Members{}, err
	}

	m.Constants = append(m.Constants, inherited.Constants...)
	m.Functions = append(m.Functions, inherited.Functions...)
	m.Properties = append(m.Properties, inherited.Properties...)
	return m, nil
}
