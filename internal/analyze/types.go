package analyze

import (
	"go/types"
	"reflect"

	"structmapper/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "structmapper/store"
	Name    string // e.g., "Customer"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindBasic             // int, string, bool, etc.
	TypeKindStruct            // struct type
	TypeKindPointer           // pointer to another type
	TypeKindSlice             // slice of another type
	TypeKindArray             // array of another type
	TypeKindMap               // map type
	TypeKindAlias             // type alias (named type wrapping another)
	TypeKindExternal          // external/opaque type (e.g., time.Time)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID       // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind     // Kind of type
	Underlying *TypeInfo    // For named types, the underlying type
	ElemType   *TypeInfo    // For pointers, slices, arrays and maps, the element type
	KeyType    *TypeInfo    // For maps, the key type
	Fields     []FieldInfo  // For structs, the list of fields, unexported included
	Methods    []MethodInfo // Exported methods of *T, promoted ones included
	Options    string       // Raw //mapping:options directive, if any
	GoType     types.Type   // The original go/types.Type
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// String returns the qualified name of a named type, or a readable
// rendering of an unnamed one.
func (t *TypeInfo) String() string {
	if t == nil {
		return "<nil>"
	}

	if t.IsNamed() {
		return t.ID.String()
	}

	return NewTypeStringer().TypeString(t)
}

// Resolved follows aliases and pointers down to the type that determines
// the shape.
func (t *TypeInfo) Resolved() *TypeInfo {
	seen := make(map[*TypeInfo]bool)

	for t != nil && !seen[t] {
		seen[t] = true

		switch {
		case t.Kind == TypeKindAlias && t.Underlying != nil:
			t = t.Underlying
		case t.Kind == TypeKindPointer && t.ElemType != nil:
			t = t.ElemType
		default:
			return t
		}
	}

	return t
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// MethodInfo describes an exported method.
type MethodInfo struct {
	Name         string
	Params       int
	Results      int
	ReturnsBool  bool   // single boolean result
	Directive    string // //mapping: directive text from the doc comment
	HasDirective bool
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
