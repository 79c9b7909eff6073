package mapping

import (
	"reflect"
	"slices"
	"strings"

	"structmapper/internal/analyze"
	"structmapper/internal/common"
	"structmapper/introspect"
)

// Resolver turns a type reference from a mapping file into a type the
// oracle understands.
type Resolver interface {
	ResolveType(ref string) (introspect.Type, bool)
}

// GraphResolver resolves references against a loaded type graph.
type GraphResolver struct {
	graph *analyze.TypeGraph
}

// NewGraphResolver creates a resolver over graph.
func NewGraphResolver(graph *analyze.TypeGraph) *GraphResolver {
	return &GraphResolver{graph: graph}
}

func (r *GraphResolver) ResolveType(ref string) (introspect.Type, bool) {
	t := ResolveTypeID(ref, r.graph)
	if t == nil {
		return nil, false
	}

	return t, true
}

// ResolveTypeID resolves a type ID string like:
// - "store.Order" (short)
// - "structmapper/store.Order" (full)
// - "Order" (name only).
//
// Short and name-only forms pick the first match in package path order.
func ResolveTypeID(typeIDStr string, graph *analyze.TypeGraph) *analyze.TypeInfo {
	if graph == nil || typeIDStr == "" {
		return nil
	}

	lastDot := strings.LastIndex(typeIDStr, ".")
	pkgStr, name := "", typeIDStr

	if lastDot >= 0 {
		pkgStr, name = typeIDStr[:lastDot], typeIDStr[lastDot+1:]
		if pkgStr == "" || name == "" {
			return nil
		}

		// exact match (for fully qualified import path)
		if t := graph.GetType(analyze.TypeID{PkgPath: pkgStr, Name: name}); t != nil {
			return t
		}
	}

	ids := make([]analyze.TypeID, 0, len(graph.Types))
	for id := range graph.Types {
		if id.Name == name {
			ids = append(ids, id)
		}
	}

	slices.SortFunc(ids, func(a, b analyze.TypeID) int {
		return strings.Compare(a.PkgPath, b.PkgPath)
	})

	for _, id := range ids {
		// suffix match (for short forms like "store.Order" vs "structmapper/store.Order")
		if pkgStr == "" || id.PkgPath == pkgStr || strings.HasSuffix(id.PkgPath, "/"+pkgStr) {
			return graph.Types[id]
		}
	}

	return nil
}

// ReflectResolver resolves references against registered Go types, by
// qualified name ("store.Order"), full path ("structmapper/store.Order")
// or bare name. The first registration of a bare name wins.
type ReflectResolver struct {
	types map[string]reflect.Type
}

// NewReflectResolver registers the types of samples. Pointers are
// dereferenced.
func NewReflectResolver(samples ...any) *ReflectResolver {
	r := &ReflectResolver{types: make(map[string]reflect.Type)}

	for _, s := range samples {
		r.Register(reflect.TypeOf(s))
	}

	return r
}

// Register adds rt under all of its names.
func (r *ReflectResolver) Register(rt reflect.Type) {
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	if rt == nil || rt.Name() == "" {
		return
	}

	r.types[rt.String()] = rt
	r.types[rt.PkgPath()+"."+rt.Name()] = rt

	// the directory name, when it differs from the package name
	for _, short := range []string{common.PkgAlias(rt.PkgPath()) + "." + rt.Name(), rt.Name()} {
		if _, ok := r.types[short]; !ok {
			r.types[short] = rt
		}
	}
}

func (r *ReflectResolver) ResolveType(ref string) (introspect.Type, bool) {
	rt, ok := r.types[ref]
	if !ok {
		return nil, false
	}

	return rt, true
}
