package builder

import (
	"structmapper/introspect"
	"structmapper/options"
)

type fakeType string

func (t fakeType) String() string { return string(t) }

// fakeOracle serves both introspection and directives from literal tables
// keyed by type name, or "Type.Member" for directives.
type fakeOracle struct {
	shapes     map[string]introspect.Shape
	properties map[string][]introspect.Property
	fields     map[string][]string
	ancestors  map[string][]string
	typeOpts   map[string]*options.Bundle
	propDirs   map[string]introspect.Directive
	fieldDirs  map[string]introspect.Directive
}

func newFakeOracle() *fakeOracle {
	return &fakeOracle{
		shapes:     map[string]introspect.Shape{},
		properties: map[string][]introspect.Property{},
		fields:     map[string][]string{},
		ancestors:  map[string][]string{},
		typeOpts:   map[string]*options.Bundle{},
		propDirs:   map[string]introspect.Directive{},
		fieldDirs:  map[string]introspect.Directive{},
	}
}

// record declares a plain type with readable and writable properties.
func (o *fakeOracle) record(name string, props ...string) fakeType {
	for _, p := range props {
		o.properties[name] = append(o.properties[name], introspect.Property{
			Name: p, Readable: true, Writable: true,
		})
	}

	return fakeType(name)
}

func (o *fakeOracle) shaped(name string, shape introspect.Shape, props ...string) fakeType {
	o.shapes[name] = shape
	return o.record(name, props...)
}

func (o *fakeOracle) Shape(t introspect.Type) introspect.Shape {
	return o.shapes[t.String()]
}

func (o *fakeOracle) Properties(t introspect.Type) []introspect.Property {
	return o.properties[t.String()]
}

func (o *fakeOracle) DeclaredFields(t introspect.Type) []introspect.Field {
	var out []introspect.Field
	for _, name := range o.fields[t.String()] {
		out = append(out, introspect.Field{Name: name, Owner: t})
	}

	return out
}

func (o *fakeOracle) Ancestors(t introspect.Type) []introspect.Type {
	var out []introspect.Type
	for _, name := range o.ancestors[t.String()] {
		out = append(out, fakeType(name))
	}

	return out
}

func (o *fakeOracle) TypeOptions(t introspect.Type) (*options.Bundle, error) {
	return o.typeOpts[t.String()], nil
}

func (o *fakeOracle) PropertyDirective(t introspect.Type, p introspect.Property) (introspect.Directive, bool) {
	d, ok := o.propDirs[t.String()+"."+p.Name]
	return d, ok
}

func (o *fakeOracle) FieldDirective(t introspect.Type, f introspect.Field) (introspect.Directive, bool) {
	d, ok := o.fieldDirs[f.Owner.String()+"."+f.Name]
	return d, ok
}
