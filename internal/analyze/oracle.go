package analyze

import (
	"fmt"

	"structmapper/introspect"
	"structmapper/options"
)

var (
	_ introspect.Oracle          = (*Oracle)(nil)
	_ introspect.DirectiveSource = (*Oracle)(nil)
)

// Oracle answers introspection and directive queries from a loaded type
// graph, without running the code. Types are *TypeInfo values from the
// graph; anything else is an empty plain record.
//
// Directives use the same struct tags as introspect.Reflect. Type options
// may also come from a //mapping:options doc comment, and getters carry
// property directives as //mapping:pair comments.
type Oracle struct {
	graph *TypeGraph
}

// NewOracle wraps a loaded graph.
func NewOracle(graph *TypeGraph) *Oracle {
	return &Oracle{graph: graph}
}

// Graph returns the underlying type graph.
func (o *Oracle) Graph() *TypeGraph {
	return o.graph
}

func asInfo(t introspect.Type) (*TypeInfo, bool) {
	ti, ok := t.(*TypeInfo)
	return ti, ok && ti != nil
}

// namedOf strips pointers, keeping the named type that owns methods.
func namedOf(t introspect.Type) *TypeInfo {
	ti, ok := asInfo(t)
	if !ok {
		return nil
	}

	for ti.Kind == TypeKindPointer && ti.ElemType != nil {
		ti = ti.ElemType
	}

	return ti
}

func structOf(t introspect.Type) *TypeInfo {
	ti, ok := asInfo(t)
	if !ok {
		return nil
	}

	if r := ti.Resolved(); r != nil && r.Kind == TypeKindStruct {
		return r
	}

	return nil
}

func (o *Oracle) Shape(t introspect.Type) introspect.Shape {
	ti, ok := asInfo(t)
	if !ok {
		return introspect.ShapePlain
	}

	switch ti.Resolved().Kind {
	case TypeKindMap:
		return introspect.ShapeMap
	case TypeKindSlice, TypeKindArray:
		return introspect.ShapeCollection
	default:
		return introspect.ShapePlain
	}
}

// Properties lists exported fields, promoted ones after the fields of
// their embedding struct, then accessor-backed properties.
func (o *Oracle) Properties(t introspect.Type) []introspect.Property {
	var props []introspect.Property

	if s := structOf(t); s != nil {
		seen := make(map[string]bool)
		visited := make(map[*TypeInfo]bool)
		level := []*TypeInfo{s}

		for len(level) > 0 {
			var next []*TypeInfo

			for _, st := range level {
				if visited[st] {
					continue
				}

				visited[st] = true

				for _, f := range st.Fields {
					if f.Embedded {
						if e := structOf(f.Type); e != nil {
							next = append(next, e)
						}

						continue
					}

					if !f.Exported || seen[f.Name] {
						continue
					}

					seen[f.Name] = true
					props = append(props, introspect.Property{Name: f.Name, Readable: true, Writable: true})
				}
			}

			level = next
		}
	}

	n := namedOf(t)
	if n == nil {
		return props
	}

	methods := make([]introspect.Method, 0, len(n.Methods))
	for _, m := range n.Methods {
		methods = append(methods, introspect.Method{
			Name:        m.Name,
			Params:      m.Params,
			Results:     m.Results,
			ReturnsBool: m.ReturnsBool,
		})
	}

	return introspect.MergeAccessors(props, methods)
}

func (o *Oracle) DeclaredFields(t introspect.Type) []introspect.Field {
	s := structOf(t)
	if s == nil {
		return nil
	}

	var fields []introspect.Field

	for _, f := range s.Fields {
		if f.Name == "_" {
			continue
		}

		fields = append(fields, introspect.Field{
			Name:     f.Name,
			Exported: f.Exported,
			Embedded: f.Embedded,
			Owner:    s,
		})
	}

	return fields
}

func (o *Oracle) Ancestors(t introspect.Type) []introspect.Type {
	s := structOf(t)
	if s == nil {
		return nil
	}

	var out []introspect.Type

	seen := map[*TypeInfo]bool{s: true}
	queue := []*TypeInfo{s}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, f := range cur.Fields {
			if !f.Embedded {
				continue
			}

			e := structOf(f.Type)
			if e == nil || seen[e] {
				continue
			}

			seen[e] = true
			out = append(out, e)
			queue = append(queue, e)
		}
	}

	return out
}

// TypeOptions prefers the //mapping:options doc comment over the blank
// field tag.
func (o *Oracle) TypeOptions(t introspect.Type) (*options.Bundle, error) {
	n := namedOf(t)
	if n == nil {
		return nil, nil
	}

	raw, found := n.Options, n.Options != ""

	if !found {
		if s := structOf(n); s != nil {
			for _, f := range s.Fields {
				if f.Name == "_" && f.HasTag(introspect.TagOptions) {
					raw, found = f.GetTag(introspect.TagOptions), true
					break
				}
			}
		}
	}

	if !found {
		return nil, nil
	}

	b, err := options.ParseBundle(raw)
	if err != nil {
		return nil, fmt.Errorf("type %s: %w", n, err)
	}

	return &b, nil
}

func (o *Oracle) PropertyDirective(t introspect.Type, p introspect.Property) (introspect.Directive, bool) {
	n := namedOf(t)
	if n == nil {
		return introspect.Directive{}, false
	}

	for _, name := range introspect.GetterNames(p.Name) {
		for _, m := range n.Methods {
			if m.Name == name && m.HasDirective {
				return introspect.ParseDirective(m.Directive), true
			}
		}
	}

	return introspect.Directive{}, false
}

func (o *Oracle) FieldDirective(t introspect.Type, f introspect.Field) (introspect.Directive, bool) {
	owner := f.Owner
	if owner == nil {
		owner = t
	}

	s := structOf(owner)
	if s == nil {
		return introspect.Directive{}, false
	}

	for i := range s.Fields {
		sf := &s.Fields[i]
		if sf.Name != f.Name {
			continue
		}

		if !sf.HasTag(introspect.TagMapping) {
			return introspect.Directive{}, false
		}

		return introspect.ParseDirective(sf.GetTag(introspect.TagMapping)), true
	}

	return introspect.Directive{}, false
}

// Lookup finds a named type by package path and name.
func (o *Oracle) Lookup(pkgPath, name string) (*TypeInfo, bool) {
	ti := o.graph.GetType(TypeID{PkgPath: pkgPath, Name: name})
	return ti, ti != nil
}
