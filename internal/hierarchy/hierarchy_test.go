package hierarchy

import (
	"errors"
	"slices"
	"testing"

	"github.com/seitarof/gen-res/internal/schema"
)

func constant(name string) schema.Constant {
	return schema.Constant{Name: name, Type: schema.Named("string")}
}

func function(name string) schema.Function {
	return schema.Function{Name: name, ReturnType: schema.Named("undefined")}
}

func TestFlatten_SingleBase(t *testing.T) {
	classes := []schema.Class{
		{
			Name:       "Entity",
			Constants:  []schema.Constant{constant("typeId")},
			Functions:  []schema.Function{function("kill")},
			Properties: []schema.Constant{constant("id")},
		},
		{
			Name:       "Player",
			BaseTypes:  []schema.Type{schema.Named("Entity")},
			Functions:  []schema.Function{function("sendMessage")},
			Properties: []schema.Constant{constant("id"), constant("name")},
		},
	}
	idx := NewIndex(classes)

	m, err := idx.Flatten(&classes[1])
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	if got := names(m.Constants); !slices.Equal(got, []string{"typeId"}) {
		t.Fatalf("constants = %v", got)
	}
	if got := functionNames(m.Functions); !slices.Equal(got, []string{"sendMessage", "kill"}) {
		t.Fatalf("functions = %v", got)
	}
	// Same-named members are not merged.
	if got := names(m.Properties); !slices.Equal(got, []string{"id", "name", "id"}) {
		t.Fatalf("properties = %v", got)
	}
}

func TestFlatten_NoBaseOrMultipleBases(t *testing.T) {
	classes := []schema.Class{
		{Name: "A", Properties: []schema.Constant{constant("a")}},
		{Name: "B", Properties: []schema.Constant{constant("b")}},
		{Name: "Root", Properties: []schema.Constant{constant("own")}},
		{
			Name:       "Mixed",
			BaseTypes:  []schema.Type{schema.Named("A"), schema.Named("B")},
			Properties: []schema.Constant{constant("own")},
		},
	}
	idx := NewIndex(classes)

	for _, i := range []int{2, 3} {
		m, err := idx.Flatten(&classes[i])
		if err != nil {
			t.Fatalf("Flatten(%s) error = %v", classes[i].Name, err)
		}
		if got := names(m.Properties); !slices.Equal(got, []string{"own"}) {
			t.Fatalf("Flatten(%s) properties = %v, want [own]", classes[i].Name, got)
		}
	}
}

func TestFlatten_Transitive(t *testing.T) {
	classes := []schema.Class{
		{Name: "Player", BaseTypes: []schema.Type{schema.Named("Entity")}, Properties: []schema.Constant{constant("name")}},
		{Name: "Entity", BaseTypes: []schema.Type{schema.Named("Object")}, Properties: []schema.Constant{constant("id")}},
		{Name: "Object", Properties: []schema.Constant{constant("isValid")}},
	}
	idx := NewIndex(classes)

	m, err := idx.Flatten(&classes[0])
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	if got := names(m.Properties); !slices.Equal(got, []string{"name", "id", "isValid"}) {
		t.Fatalf("properties = %v", got)
	}
}

func TestFlatten_DoesNotMutate(t *testing.T) {
	classes := []schema.Class{
		{Name: "Entity", Properties: []schema.Constant{constant("id")}},
		{Name: "Player", BaseTypes: []schema.Type{schema.Named("Entity")}, Properties: []schema.Constant{constant("name")}},
	}
	idx := NewIndex(classes)

	first, err := idx.Flatten(&classes[1])
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	second, err := idx.Flatten(&classes[1])
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	if !slices.Equal(names(first.Properties), names(second.Properties)) {
		t.Fatalf("repeated Flatten() differs: %v vs %v", names(first.Properties), names(second.Properties))
	}
	if len(classes[1].Properties) != 1 || len(classes[0].Properties) != 1 {
		t.Fatalf("class records were modified: %#v", classes)
	}

	first.Properties[0].Name = "changed"
	if classes[1].Properties[0].Name != "name" {
		t.Fatal("flattened view should not alias the class record")
	}
}

func TestFlatten_UnresolvedBase(t *testing.T) {
	classes := []schema.Class{
		{Name: "Player", BaseTypes: []schema.Type{schema.Named("Entity")}},
	}
	_, err := NewIndex(classes).Flatten(&classes[0])
	if !errors.Is(err, ErrUnresolvedBase) {
		t.Fatalf("Flatten() error = %v, want ErrUnresolvedBase", err)
	}
}

func TestFlatten_Cycle(t *testing.T) {
	classes := []schema.Class{
		{Name: "A", BaseTypes: []schema.Type{schema.Named("B")}},
		{Name: "B", BaseTypes: []schema.Type{schema.Named("A")}},
	}
	_, err := NewIndex(classes).Flatten(&classes[0])
	if !errors.Is(err, ErrInheritanceCycle) {
		t.Fatalf("Flatten() error = %v, want ErrInheritanceCycle", err)
	}
}

func TestNewIndex_LaterClassWins(t *testing.T) {
	classes := []schema.Class{
		{Name: "Entity", Properties: []schema.Constant{{Name: "old"}}},
		{Name: "Entity", Properties: []schema.Constant{{Name: "id"}}},
		{Name: "Player", BaseTypes: []schema.Type{schema.Named("Entity")}},
	}
	m, err := NewIndex(classes).Flatten(&classes[2])
	if err != nil {
		t.Fatalf("Flatten() error = %v", err)
	}
	if got := names(m.Properties); !slices.Equal(got, []string{"id"}) {
		t.Fatalf("properties = %v, want [id]", got)
	}
}

func names(cs []schema.Constant) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}

func functionNames(fs []schema.Function) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Name)
	}
	return out
}
