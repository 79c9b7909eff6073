package introspect

import (
	"slices"
	"strings"

	"structmapper/options"
)

//go:generate go tool stringer -type=Shape -output=shape_string.go

// Type identifies a record type. reflect.Type and *analyze.TypeInfo both
// satisfy it; oracles type-assert to their own representation.
type Type interface {
	String() string
}

// Shape is the structural classification of a type. The shapes are
// mutually exclusive.
type Shape int

const (
	ShapePlain Shape = iota
	ShapeMap
	ShapeCollection
)

// Property is an accessible member of a type: an exported field or a
// getter/setter method pair.
type Property struct {
	Name     string
	Readable bool
	Writable bool
}

// Field is a field declared directly on a struct type.
type Field struct {
	Name     string
	Exported bool
	Embedded bool
	Owner    Type // declaring type
}

// Oracle answers structural questions about types. Implementations must be
// side-effect free and safe for concurrent use.
type Oracle interface {
	Shape(t Type) Shape
	// Properties returns the accessible properties in declaration order.
	Properties(t Type) []Property
	// DeclaredFields returns the fields declared on t itself, exported or not.
	DeclaredFields(t Type) []Field
	// Ancestors returns the embedded struct types of t, transitively,
	// nearest first. t itself is not included.
	Ancestors(t Type) []Type
}

// Directive is a per-member mapping directive.
type Directive struct {
	// PairName is the counterpart member name. Empty means the same name.
	PairName string
	// Optional directives are skipped when the counterpart does not exist.
	Optional bool
}

// Pair returns the counterpart name for a member called name.
func (d Directive) Pair(name string) string {
	if p := strings.TrimSpace(d.PairName); p != "" {
		return p
	}

	return name
}

// DirectiveSource looks up declarative directives. Absence is the common
// case and is reported with a nil bundle or a false flag.
type DirectiveSource interface {
	TypeOptions(t Type) (*options.Bundle, error)
	PropertyDirective(t Type, p Property) (Directive, bool)
	FieldDirective(t Type, f Field) (Directive, bool)
}

// ParseDirective parses the "Pair,optional" directive syntax shared by struct
// tags and directive comments. Unknown flags are ignored.
func ParseDirective(s string) Directive {
	parts := strings.Split(s, ",")

	d := Directive{PairName: strings.TrimSpace(parts[0])}
	for _, flag := range parts[1:] {
		if strings.TrimSpace(flag) == "optional" {
			d.Optional = true
		}
	}

	return d
}

// Exclusion reports whether a member name is never eligible for default
// inference.
type Exclusion func(name string) bool

// DefaultExclusion excludes the blank identifier and the XXX_ bookkeeping
// members emitted by protobuf generators.
func DefaultExclusion(name string) bool {
	return name == "_" || strings.HasPrefix(name, "XXX_")
}

// ExcludeNames extends DefaultExclusion with an explicit name list.
func ExcludeNames(names ...string) Exclusion {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}

	return func(name string) bool {
		if DefaultExclusion(name) {
			return true
		}

		_, ok := set[name]

		return ok
	}
}

// HasMember reports whether name exists on t as a property or as a field
// declared on t or any of its ancestors. Every name exists on a map.
func HasMember(o Oracle, t Type, name string) bool {
	if o.Shape(t) == ShapeMap {
		return true
	}

	return slices.Contains(Members(o, t), name)
}

// Members lists the property names of t, then the names of fields declared
// on t and its ancestors that are not also properties.
func Members(o Oracle, t Type) []string {
	var names []string

	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	for _, p := range o.Properties(t) {
		add(p.Name)
	}

	for _, owner := range append([]Type{t}, o.Ancestors(t)...) {
		for _, f := range o.DeclaredFields(owner) {
			add(f.Name)
		}
	}

	return names
}
