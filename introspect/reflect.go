package introspect

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"structmapper/options"
)

// Struct tag keys read by Reflect.
const (
	TagMapping = "mapping"
	TagOptions = "mapping-options"
)

// Types may declare their option bundle in code instead of a tag.
type optionsProvider interface {
	MappingOptions() options.Bundle
}

// Method-backed properties have nowhere to carry a tag.
type propertyDirectiveProvider interface {
	PropertyDirectives() map[string]string
}

var (
	_ Oracle          = (*Reflect)(nil)
	_ DirectiveSource = (*Reflect)(nil)
)

// Reflect implements Oracle and DirectiveSource over reflect.Type values.
// Types that are not reflect.Type are treated as empty plain records.
//
// Properties are exported fields (promoted ones included) plus method
// accessors: GetX() is a reader, SetX(v) a writer, and X() counts as a
// reader only when SetX exists. Pointer types are dereferenced.
type Reflect struct {
	properties sync.Map // reflect.Type -> []Property
	fields     sync.Map // reflect.Type -> []Field
	ancestors  sync.Map // reflect.Type -> []Type
}

// NewReflect creates a Reflect with empty caches.
func NewReflect() *Reflect {
	return &Reflect{}
}

func asReflect(t Type) (reflect.Type, bool) {
	rt, ok := t.(reflect.Type)
	if !ok || rt == nil {
		return nil, false
	}

	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	return rt, true
}

func (r *Reflect) Shape(t Type) Shape {
	rt, ok := asReflect(t)
	if !ok {
		return ShapePlain
	}

	switch rt.Kind() {
	case reflect.Map:
		return ShapeMap
	case reflect.Slice, reflect.Array:
		return ShapeCollection
	default:
		return ShapePlain
	}
}

func (r *Reflect) Properties(t Type) []Property {
	rt, ok := asReflect(t)
	if !ok {
		return nil
	}

	if v, ok := r.properties.Load(rt); ok {
		return slices.Clone(v.([]Property))
	}

	v, _ := r.properties.LoadOrStore(rt, reflectProperties(rt))

	return slices.Clone(v.([]Property))
}

func reflectProperties(rt reflect.Type) []Property {
	var props []Property

	if rt.Kind() == reflect.Struct {
		for _, f := range reflect.VisibleFields(rt) {
			if f.Anonymous || !f.IsExported() {
				continue
			}

			props = append(props, Property{Name: f.Name, Readable: true, Writable: true})
		}
	}

	// the pointer method set includes value receivers
	pt := reflect.PointerTo(rt)
	methods := make([]Method, 0, pt.NumMethod())

	for i := range pt.NumMethod() {
		m := pt.Method(i)
		methods = append(methods, Method{
			Name:        m.Name,
			Params:      m.Type.NumIn() - 1, // receiver
			Results:     m.Type.NumOut(),
			ReturnsBool: m.Type.NumOut() == 1 && m.Type.Out(0).Kind() == reflect.Bool,
		})
	}

	return MergeAccessors(props, methods)
}

func (r *Reflect) DeclaredFields(t Type) []Field {
	rt, ok := asReflect(t)
	if !ok || rt.Kind() != reflect.Struct {
		return nil
	}

	if v, ok := r.fields.Load(rt); ok {
		return slices.Clone(v.([]Field))
	}

	fields := make([]Field, 0, rt.NumField())

	for i := range rt.NumField() {
		f := rt.Field(i)
		if f.Name == "_" {
			continue
		}

		fields = append(fields, Field{
			Name:     f.Name,
			Exported: f.IsExported(),
			Embedded: f.Anonymous,
			Owner:    rt,
		})
	}

	v, _ := r.fields.LoadOrStore(rt, fields)

	return slices.Clone(v.([]Field))
}

func (r *Reflect) Ancestors(t Type) []Type {
	rt, ok := asReflect(t)
	if !ok || rt.Kind() != reflect.Struct {
		return nil
	}

	if v, ok := r.ancestors.Load(rt); ok {
		return slices.Clone(v.([]Type))
	}

	var out []Type

	seen := map[reflect.Type]bool{rt: true}
	queue := []reflect.Type{rt}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for i := range cur.NumField() {
			f := cur.Field(i)
			if !f.Anonymous {
				continue
			}

			et := f.Type
			for et.Kind() == reflect.Pointer {
				et = et.Elem()
			}

			if et.Kind() != reflect.Struct || seen[et] {
				continue
			}

			seen[et] = true
			out = append(out, et)
			queue = append(queue, et)
		}
	}

	v, _ := r.ancestors.LoadOrStore(rt, out)

	return slices.Clone(v.([]Type))
}

// TypeOptions returns the bundle from a MappingOptions method, or from the
// mapping-options tag on a blank field. Nil means no directive.
func (r *Reflect) TypeOptions(t Type) (*options.Bundle, error) {
	rt, ok := asReflect(t)
	if !ok {
		return nil, nil
	}

	if p, ok := reflect.New(rt).Interface().(optionsProvider); ok {
		b := p.MappingOptions()
		return &b, nil
	}

	if rt.Kind() != reflect.Struct {
		return nil, nil
	}

	for i := range rt.NumField() {
		f := rt.Field(i)
		if f.Name != "_" {
			continue
		}

		raw, ok := f.Tag.Lookup(TagOptions)
		if !ok {
			continue
		}

		b, err := options.ParseBundle(raw)
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", rt, err)
		}

		return &b, nil
	}

	return nil, nil
}

func (r *Reflect) PropertyDirective(t Type, p Property) (Directive, bool) {
	rt, ok := asReflect(t)
	if !ok {
		return Directive{}, false
	}

	provider, ok := reflect.New(rt).Interface().(propertyDirectiveProvider)
	if !ok {
		return Directive{}, false
	}

	raw, ok := provider.PropertyDirectives()[p.Name]
	if !ok {
		return Directive{}, false
	}

	return ParseDirective(raw), true
}

func (r *Reflect) FieldDirective(t Type, f Field) (Directive, bool) {
	owner := f.Owner
	if owner == nil {
		owner = t
	}

	rt, ok := asReflect(owner)
	if !ok || rt.Kind() != reflect.Struct {
		return Directive{}, false
	}

	for i := range rt.NumField() {
		sf := rt.Field(i)
		if sf.Name != f.Name {
			continue
		}

		raw, ok := sf.Tag.Lookup(TagMapping)
		if !ok {
			return Directive{}, false
		}

		return ParseDirective(raw), true
	}

	return Directive{}, false
}
